// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"zlendo/internal/metrics"
)

// MaxPerPage is the largest per_page WordPress accepts.
const MaxPerPage = 100

// Collection names the endpoints and taxonomies of one post type.
type Collection struct {
	Entries    string // post-type endpoint: "posts", "docs"
	Categories string // category taxonomy endpoint: "categories", "doc_category"
	Tags       string // tag taxonomy endpoint: "tags", "doc_tag"

	// Taxonomy names as they appear in embedded terms.
	CategoryTaxonomy string // "category", "doc_category"
	TagTaxonomy      string // "post_tag", "doc_tag"

	// Query parameters that filter entries by term id.
	CategoryParam string // "categories", "doc_category"
	TagParam      string // "tags", "doc_tag"
}

// ListQuery selects one page of entries.
type ListQuery struct {
	Page       int
	PerPage    int
	Search     string
	CategoryID int
	TagID      int
}

// Paging clamps a requested page and page size: page < 1 becomes 1,
// perPage < 1 becomes def, and perPage is capped at MaxPerPage.
func Paging(page, perPage, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = def
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// Adapter reads one post type and its taxonomies through a Client. It
// returns raw upstream values and errors; fallback policy belongs to callers.
type Adapter struct {
	client *Client
	coll   Collection
}

// NewAdapter creates an adapter for coll on client.
func NewAdapter(client *Client, coll Collection) *Adapter {
	return &Adapter{client: client, coll: coll}
}

// Client returns the underlying fetch client, for endpoints outside the
// collection (e.g. BetterDocs FAQs).
func (a *Adapter) Client() *Client {
	return a.client
}

// Fallback records that operation substituted its empty or null result.
// A nil err means the upstream answered but had nothing matching.
func (a *Adapter) Fallback(operation string, err error) {
	src := a.client.source.Name
	if err == nil {
		a.client.metrics.IncFallback(src, operation, metrics.ReasonNotFound)
		slog.Debug("content not found", "source", src, "operation", operation)
		return
	}
	a.client.metrics.IncFallback(src, operation, metrics.ReasonUpstream)
	slog.Warn("content fallback", "source", src, "operation", operation, "kind", KindOf(err), "error", err)
}

// Partial records that operation returned n items collected before err.
func (a *Adapter) Partial(operation string, n int, err error) {
	src := a.client.source.Name
	reason := metrics.ReasonPartial
	if n == 0 {
		reason = metrics.ReasonUpstream
	}
	a.client.metrics.IncFallback(src, operation, reason)
	slog.Warn("content listing incomplete", "source", src, "operation", operation, "collected", n, "kind", KindOf(err), "error", err)
}

// Entries fetches one page of embedded entries.
func (a *Adapter) Entries(ctx context.Context, q ListQuery) ([]Post, Page, error) {
	v := url.Values{}
	v.Set("_embed", "true")
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.CategoryID > 0 {
		v.Set(a.coll.CategoryParam, strconv.Itoa(q.CategoryID))
	}
	if q.TagID > 0 {
		v.Set(a.coll.TagParam, strconv.Itoa(q.TagID))
	}

	var posts []Post
	resp, err := a.client.Get(ctx, a.coll.Entries, v, &posts)
	if err != nil {
		return nil, Page{}, err
	}
	return posts, resp.Page, nil
}

// EntryBySlug returns the embedded entry with slug, or nil when there is none.
func (a *Adapter) EntryBySlug(ctx context.Context, slug string) (*Post, error) {
	v := url.Values{}
	v.Set("slug", slug)
	v.Set("_embed", "true")

	var posts []Post
	if _, err := a.client.Get(ctx, a.coll.Entries, v, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

// EntrySlugs lists every entry slug. On failure it returns the slugs
// collected before the failing page together with the error.
func (a *Adapter) EntrySlugs(ctx context.Context) ([]string, error) {
	return Slugs(ctx, a.client, a.coll.Entries, nil)
}

// CategoryBySlug resolves a category term, or nil when there is none.
func (a *Adapter) CategoryBySlug(ctx context.Context, slug string) (*Term, error) {
	return TermBySlug(ctx, a.client, a.coll.Categories, slug)
}

// TagBySlug resolves a tag term, or nil when there is none.
func (a *Adapter) TagBySlug(ctx context.Context, slug string) (*Term, error) {
	return TermBySlug(ctx, a.client, a.coll.Tags, slug)
}

// Categories lists every category term.
func (a *Adapter) Categories(ctx context.Context) ([]Term, error) {
	return FetchAll[Term](ctx, a.client, a.coll.Categories, nil)
}

// Tags lists every tag term.
func (a *Adapter) Tags(ctx context.Context) ([]Term, error) {
	return FetchAll[Term](ctx, a.client, a.coll.Tags, nil)
}

// CategorySlugs lists every category slug, partial on failure.
func (a *Adapter) CategorySlugs(ctx context.Context) ([]string, error) {
	return Slugs(ctx, a.client, a.coll.Categories, nil)
}

// TagSlugs lists every tag slug, partial on failure.
func (a *Adapter) TagSlugs(ctx context.Context) ([]string, error) {
	return Slugs(ctx, a.client, a.coll.Tags, nil)
}

// TermBySlug resolves a term on any taxonomy endpoint, or nil when there is none.
func TermBySlug(ctx context.Context, c *Client, endpoint, slug string) (*Term, error) {
	v := url.Values{}
	v.Set("slug", slug)

	var terms []Term
	if _, err := c.Get(ctx, endpoint, v, &terms); err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return &terms[0], nil
}

// FetchAll walks endpoint MaxPerPage items at a time, one page after the
// other, until the page number reaches X-WP-TotalPages. On failure it
// returns everything collected so far together with the error.
func FetchAll[T any](ctx context.Context, c *Client, endpoint string, query url.Values) ([]T, error) {
	items := []T{}
	for page := 1; ; page++ {
		v := url.Values{}
		for k, vals := range query {
			v[k] = append([]string(nil), vals...)
		}
		v.Set("per_page", strconv.Itoa(MaxPerPage))
		v.Set("page", strconv.Itoa(page))

		var batch []T
		resp, err := c.Get(ctx, endpoint, v, &batch)
		if err != nil {
			return items, err
		}
		items = append(items, batch...)
		if page >= resp.Page.TotalPages || len(batch) == 0 {
			return items, nil
		}
	}
}

// Slugs lists the slug of every item on endpoint, fetching only that field.
func Slugs(ctx context.Context, c *Client, endpoint string, query url.Values) ([]string, error) {
	v := url.Values{}
	for k, vals := range query {
		v[k] = append([]string(nil), vals...)
	}
	v.Set("_fields", "slug")

	rows, err := FetchAll[slugOnly](ctx, c, endpoint, v)
	slugs := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Slug != "" {
			slugs = append(slugs, r.Slug)
		}
	}
	return slugs, err
}
