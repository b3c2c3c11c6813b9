// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blogCollection = Collection{
	Entries:          "posts",
	Categories:       "categories",
	Tags:             "tags",
	CategoryTaxonomy: "category",
	TagTaxonomy:      "post_tag",
	CategoryParam:    "categories",
	TagParam:         "tags",
}

// pagedServer serves pages of slug rows. pages[i] is the slug list of page
// i+1; failPage, when non-zero, answers that page with a 500.
type pagedServer struct {
	pages    [][]string
	failPage int

	mu      sync.Mutex
	queries []url.Values
}

func (p *pagedServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p.mu.Lock()
	p.queries = append(p.queries, q)
	p.mu.Unlock()

	page, _ := strconv.Atoi(q.Get("page"))
	if page == p.failPage {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	total := 0
	for _, pg := range p.pages {
		total += len(pg)
	}
	w.Header().Set("X-WP-Total", strconv.Itoa(total))
	w.Header().Set("X-WP-TotalPages", strconv.Itoa(len(p.pages)))

	rows := []map[string]any{}
	if page >= 1 && page <= len(p.pages) {
		for i, s := range p.pages[page-1] {
			rows = append(rows, map[string]any{"id": page*100 + i, "slug": s})
		}
	}
	json.NewEncoder(w).Encode(rows)
}

func (p *pagedServer) requests() []url.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]url.Values(nil), p.queries...)
}

func newPagedClient(t *testing.T, p *pagedServer) *Client {
	t.Helper()
	srv := httptest.NewServer(p)
	t.Cleanup(srv.Close)
	return NewClient(testSource(srv.URL))
}

// =====================================================================
// FetchAll / Slugs
// =====================================================================

func TestFetchAll_WalksEveryPage(t *testing.T) {
	p := &pagedServer{pages: [][]string{{"a", "b"}, {"c", "d"}, {"e"}}}
	c := newPagedClient(t, p)

	terms, err := FetchAll[Term](context.Background(), c, "categories", nil)
	require.NoError(t, err)

	slugs := make([]string, len(terms))
	for i, term := range terms {
		slugs[i] = term.Slug
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, slugs)

	reqs := p.requests()
	require.Len(t, reqs, 3, "stops at X-WP-TotalPages")
	for i, q := range reqs {
		assert.Equal(t, strconv.Itoa(i+1), q.Get("page"))
		assert.Equal(t, "100", q.Get("per_page"))
	}
}

func TestFetchAll_EmptyCollection(t *testing.T) {
	p := &pagedServer{}
	c := newPagedClient(t, p)

	terms, err := FetchAll[Term](context.Background(), c, "tags", nil)
	require.NoError(t, err)
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
	assert.Len(t, p.requests(), 1)
}

func TestFetchAll_PartialOnFailure(t *testing.T) {
	p := &pagedServer{pages: [][]string{{"a", "b"}, {"c"}, {"d"}}, failPage: 2}
	c := newPagedClient(t, p)

	terms, err := FetchAll[Term](context.Background(), c, "categories", nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindStatus))
	require.Len(t, terms, 2)
	assert.Equal(t, "b", terms[1].Slug)
	assert.Len(t, p.requests(), 2, "no request after the failing page")
}

func TestFetchAll_DoesNotMutateQuery(t *testing.T) {
	p := &pagedServer{pages: [][]string{{"a"}, {"b"}}}
	c := newPagedClient(t, p)

	query := url.Values{"parent": {"0"}}
	_, err := FetchAll[Term](context.Background(), c, "doc_category", query)
	require.NoError(t, err)

	assert.Equal(t, url.Values{"parent": {"0"}}, query)
	for _, q := range p.requests() {
		assert.Equal(t, "0", q.Get("parent"))
	}
}

func TestSlugs(t *testing.T) {
	p := &pagedServer{pages: [][]string{{"first", ""}, {"second"}}}
	c := newPagedClient(t, p)

	slugs, err := Slugs(context.Background(), c, "posts", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, slugs, "empty slugs are skipped")

	for _, q := range p.requests() {
		assert.Equal(t, "slug", q.Get("_fields"))
		assert.Empty(t, q.Get("_embed"))
	}
}

func TestSlugs_PartialOnFailure(t *testing.T) {
	p := &pagedServer{pages: [][]string{{"one"}, {"two"}}, failPage: 2}
	c := newPagedClient(t, p)

	slugs, err := Slugs(context.Background(), c, "docs", nil)
	require.Error(t, err)
	assert.Equal(t, []string{"one"}, slugs)
}

// =====================================================================
// Adapter
// =====================================================================

func TestAdapterEntries_QueryParams(t *testing.T) {
	var got url.Values
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		gotPath = r.URL.Path
		w.Header().Set("X-WP-Total", "14")
		w.Header().Set("X-WP-TotalPages", "2")
		fmt.Fprint(w, `[{"id":1,"slug":"a"}]`)
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(testSource(srv.URL)), blogCollection)
	posts, page, err := a.Entries(context.Background(), ListQuery{Page: 2, PerPage: 9, Search: "kitchen", CategoryID: 5, TagID: 7})
	require.NoError(t, err)

	assert.Len(t, posts, 1)
	assert.Equal(t, Page{Total: 14, TotalPages: 2}, page)
	assert.Equal(t, "/posts", gotPath)
	assert.Equal(t, "true", got.Get("_embed"))
	assert.Equal(t, "2", got.Get("page"))
	assert.Equal(t, "9", got.Get("per_page"))
	assert.Equal(t, "kitchen", got.Get("search"))
	assert.Equal(t, "5", got.Get("categories"))
	assert.Equal(t, "7", got.Get("tags"))
}

func TestAdapterEntries_OmitsUnsetFilters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(testSource(srv.URL)), blogCollection)
	_, _, err := a.Entries(context.Background(), ListQuery{Page: 1, PerPage: 9})
	require.NoError(t, err)

	for _, key := range []string{"search", "categories", "tags"} {
		assert.False(t, got.Has(key), key)
	}
}

func TestAdapterEntryBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		var got url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Query()
			fmt.Fprint(w, `[{"id":3,"slug":"open-plan"}]`)
		}))
		defer srv.Close()

		a := NewAdapter(NewClient(testSource(srv.URL)), blogCollection)
		post, err := a.EntryBySlug(context.Background(), "open-plan")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, 3, post.ID)
		assert.Equal(t, "open-plan", got.Get("slug"))
		assert.Equal(t, "true", got.Get("_embed"))
	})

	t.Run("not found", func(t *testing.T) {
		srv := newTestServer(t, http.StatusOK, "0", "0", `[]`)
		a := NewAdapter(NewClient(testSource(srv.URL)), blogCollection)

		post, err := a.EntryBySlug(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, post)
	})

	t.Run("upstream error", func(t *testing.T) {
		srv := newTestServer(t, http.StatusBadGateway, "", "", ``)
		a := NewAdapter(NewClient(testSource(srv.URL)), blogCollection)

		post, err := a.EntryBySlug(context.Background(), "x")
		require.Error(t, err)
		assert.Nil(t, post)
	})
}

func TestAdapterCategoryBySlug(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `[{"id":4,"name":"Design","slug":"design","count":12,"taxonomy":"category"}]`)
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(testSource(srv.URL)), blogCollection)
	term, err := a.CategoryBySlug(context.Background(), "design")
	require.NoError(t, err)
	require.NotNil(t, term)
	assert.Equal(t, "/categories", gotPath)
	assert.Equal(t, 12, term.Count)
}

func TestAdapterTagSlugs(t *testing.T) {
	p := &pagedServer{pages: [][]string{{"3d", "ai"}}}
	a := NewAdapter(newPagedClient(t, p), blogCollection)

	slugs, err := a.TagSlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"3d", "ai"}, slugs)
}

func TestPaging(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{page: 1, perPage: 9, wantPage: 1, wantPerPage: 9},
		{page: 0, perPage: 0, wantPage: 1, wantPerPage: 12},
		{page: -3, perPage: -1, wantPage: 1, wantPerPage: 12},
		{page: 4, perPage: 500, wantPage: 4, wantPerPage: MaxPerPage},
		{page: 2, perPage: 100, wantPage: 2, wantPerPage: 100},
	}
	for _, tt := range tests {
		page, perPage := Paging(tt.page, tt.perPage, 12)
		assert.Equal(t, tt.wantPage, page, "page for (%d, %d)", tt.page, tt.perPage)
		assert.Equal(t, tt.wantPerPage, perPage, "perPage for (%d, %d)", tt.page, tt.perPage)
	}
}
