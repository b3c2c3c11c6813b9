// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zlendo/internal/blog"
	"zlendo/internal/models"
	"zlendo/internal/seo"
)

// Blog serves the blog query functions under /api/blog.
type Blog struct {
	svc *blog.Service
	seo *seo.Generator
}

// NewBlog creates the blog handler group.
func NewBlog(svc *blog.Service, gen *seo.Generator) *Blog {
	return &Blog{svc: svc, seo: gen}
}

// postListing is a page of posts with the metadata of the page rendering it.
type postListing struct {
	models.PaginatedPosts
	Metadata seo.Metadata `json:"metadata"`
	JSONLD   seo.JSONLD   `json:"jsonLd,omitempty"`
}

// Routes registers the blog endpoints on r.
func (h *Blog) Routes(r chi.Router) {
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{slug}", h.Post)
	r.Get("/search", h.Search)
	r.Get("/categories", h.Categories)
	r.Get("/categories/{slug}", h.Category)
	r.Get("/tags", h.Tags)
	r.Get("/tags/{slug}", h.Tag)
	r.Get("/slugs/{kind}", h.Slugs)
}

// ListPosts handles GET /api/blog/posts?page=&per_page=.
func (h *Blog) ListPosts(w http.ResponseWriter, r *http.Request) {
	res := h.svc.GetPosts(r.Context(), intQuery(r, "page"), intQuery(r, "per_page"))
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, postListing{
		PaginatedPosts: res,
		Metadata:       h.seo.BlogListingMetadata(res.CurrentPage),
		JSONLD:         h.seo.BlogJSONLD(res.Posts),
	})
}

// Post handles GET /api/blog/posts/{slug}.
func (h *Blog) Post(w http.ResponseWriter, r *http.Request) {
	s, ok := slugParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "post not found")
		return
	}
	post := h.svc.GetPostBySlug(r.Context(), s)
	if post == nil {
		writeError(w, r, http.StatusNotFound, "post not found")
		return
	}
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"post":        post,
		"metadata":    h.seo.PostMetadata(*post),
		"jsonLd":      h.seo.BlogPostingJSONLD(*post),
		"breadcrumbs": h.seo.BreadcrumbJSONLD(h.seo.PostBreadcrumbs(*post)),
	})
}

// Search handles GET /api/blog/search?q=. A blank query matches nothing
// and is not sent upstream.
func (h *Blog) Search(w http.ResponseWriter, r *http.Request) {
	q, msg := validateSearch(r.URL.Query().Get("q"))
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}
	page := intQuery(r, "page")
	res := models.EmptyPosts(max(page, 1))
	if q != "" {
		res = h.svc.SearchPosts(r.Context(), q, page, intQuery(r, "per_page"))
	}
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"query":       q,
		"posts":       res.Posts,
		"totalPages":  res.TotalPages,
		"totalPosts":  res.TotalPosts,
		"currentPage": res.CurrentPage,
	})
}

// Categories handles GET /api/blog/categories.
func (h *Blog) Categories(w http.ResponseWriter, r *http.Request) {
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{"categories": h.svc.GetCategories(r.Context())})
}

// Category handles GET /api/blog/categories/{slug}?page=.
func (h *Blog) Category(w http.ResponseWriter, r *http.Request) {
	s, ok := slugParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "category not found")
		return
	}
	cat := h.svc.GetCategoryBySlug(r.Context(), s)
	if cat == nil {
		writeError(w, r, http.StatusNotFound, "category not found")
		return
	}
	res := h.svc.GetPostsByCategoryID(r.Context(), cat.ID, intQuery(r, "page"), intQuery(r, "per_page"))
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"category":    cat,
		"posts":       res.Posts,
		"totalPages":  res.TotalPages,
		"totalPosts":  res.TotalPosts,
		"currentPage": res.CurrentPage,
		"metadata":    h.seo.CategoryMetadata(*cat, res.CurrentPage),
	})
}

// Tags handles GET /api/blog/tags.
func (h *Blog) Tags(w http.ResponseWriter, r *http.Request) {
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{"tags": h.svc.GetTags(r.Context())})
}

// Tag handles GET /api/blog/tags/{slug}?page=.
func (h *Blog) Tag(w http.ResponseWriter, r *http.Request) {
	s, ok := slugParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "tag not found")
		return
	}
	tag := h.svc.GetTagBySlug(r.Context(), s)
	if tag == nil {
		writeError(w, r, http.StatusNotFound, "tag not found")
		return
	}
	res := h.svc.GetPostsByTagID(r.Context(), tag.ID, intQuery(r, "page"), intQuery(r, "per_page"))
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"tag":         tag,
		"posts":       res.Posts,
		"totalPages":  res.TotalPages,
		"totalPosts":  res.TotalPosts,
		"currentPage": res.CurrentPage,
		"metadata":    h.seo.TagMetadata(*tag, res.CurrentPage),
	})
}

// Slugs handles GET /api/blog/slugs/{kind} for static path generation.
func (h *Blog) Slugs(w http.ResponseWriter, r *http.Request) {
	var slugs []string
	switch chi.URLParam(r, "kind") {
	case "posts":
		slugs = h.svc.GetAllPostSlugs(r.Context())
	case "categories":
		slugs = h.svc.GetAllCategorySlugs(r.Context())
	case "tags":
		slugs = h.svc.GetAllTagSlugs(r.Context())
	default:
		writeError(w, r, http.StatusNotFound, "unknown slug kind")
		return
	}
	if slugs == nil {
		slugs = []string{}
	}
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{"slugs": slugs})
}
