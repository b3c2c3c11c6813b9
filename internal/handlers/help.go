// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"zlendo/internal/helpcenter"
	"zlendo/internal/models"
	"zlendo/internal/seo"
)

// Help serves the help-center query functions under /api/help.
type Help struct {
	svc *helpcenter.Service
	seo *seo.Generator
}

// NewHelp creates the help-center handler group.
func NewHelp(svc *helpcenter.Service, gen *seo.Generator) *Help {
	return &Help{svc: svc, seo: gen}
}

type docListing struct {
	models.PaginatedDocs
	Metadata seo.Metadata `json:"metadata"`
}

// Routes registers the help-center endpoints on r.
func (h *Help) Routes(r chi.Router) {
	r.Get("/docs", h.Docs)
	r.Get("/docs/{slug}", h.Doc)
	r.Get("/search", h.Search)
	r.Get("/categories", h.Categories)
	r.Get("/categories/{slug}", h.Category)
	r.Get("/faqs", h.Faqs)
	r.Get("/slugs/{kind}", h.Slugs)
}

// Docs handles GET /api/help/docs?page=&per_page=.
func (h *Help) Docs(w http.ResponseWriter, r *http.Request) {
	res := h.svc.GetDocs(r.Context(), intQuery(r, "page"), intQuery(r, "per_page"))
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, docListing{
		PaginatedDocs: res,
		Metadata:      h.seo.HelpCenterMetadata(res.CurrentPage),
	})
}

// Doc handles GET /api/help/docs/{slug}.
func (h *Help) Doc(w http.ResponseWriter, r *http.Request) {
	s, ok := slugParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "article not found")
		return
	}
	article := h.svc.GetDocBySlug(r.Context(), s)
	if article == nil {
		writeError(w, r, http.StatusNotFound, "article not found")
		return
	}
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"article":     article,
		"metadata":    h.seo.ArticleMetadata(*article),
		"jsonLd":      h.seo.TechArticleJSONLD(*article),
		"breadcrumbs": h.seo.BreadcrumbJSONLD(h.seo.ArticleBreadcrumbs(*article)),
	})
}

// Search handles GET /api/help/search?q=.
func (h *Help) Search(w http.ResponseWriter, r *http.Request) {
	q, msg := validateSearch(r.URL.Query().Get("q"))
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}
	page := intQuery(r, "page")
	res := models.EmptyDocs(max(page, 1))
	if q != "" {
		res = h.svc.SearchDocs(r.Context(), q, page, intQuery(r, "per_page"))
	}
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"query":       q,
		"articles":    res.Articles,
		"totalPages":  res.TotalPages,
		"totalDocs":   res.TotalDocs,
		"currentPage": res.CurrentPage,
	})
}

// Categories handles GET /api/help/categories and returns the category tree.
func (h *Help) Categories(w http.ResponseWriter, r *http.Request) {
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{"categories": h.svc.GetDocCategories(r.Context())})
}

// Category handles GET /api/help/categories/{slug}?page=.
func (h *Help) Category(w http.ResponseWriter, r *http.Request) {
	s, ok := slugParam(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "category not found")
		return
	}
	cat := h.svc.GetDocCategoryBySlug(r.Context(), s)
	if cat == nil {
		writeError(w, r, http.StatusNotFound, "category not found")
		return
	}
	res := h.svc.GetDocsByCategoryID(r.Context(), cat.ID, intQuery(r, "page"), intQuery(r, "per_page"))
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"category":    cat,
		"articles":    res.Articles,
		"totalPages":  res.TotalPages,
		"totalDocs":   res.TotalDocs,
		"currentPage": res.CurrentPage,
		"metadata":    h.seo.DocCategoryMetadata(*cat, res.CurrentPage),
	})
}

// Faqs handles GET /api/help/faqs.
func (h *Help) Faqs(w http.ResponseWriter, r *http.Request) {
	faqs := h.svc.GetFaqs(r.Context())
	cacheFor(w, h.svc.Revalidate())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"faqs":       faqs,
		"categories": h.svc.GetFaqCategories(r.Context()),
		"metadata":   h.seo.FAQMetadata(),
		"jsonLd":     h.seo.FAQPageJSONLD(faqs),
	})
}

// Slugs handles GET /api/help/slugs/{kind}.
func (h *Help) Slugs(w http.ResponseWriter, r *http.Request) {
	var slugs []string
	switch chi.URLParam(r, "kind") {
	case "docs":
		slugs = h.svc.GetAllDocSlugs(r.Context())
	case "categories":
		slugs = h.svc.GetAllDocCategorySlugs(r.Context())
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
