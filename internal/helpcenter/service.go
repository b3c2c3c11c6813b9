// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package helpcenter serves the BetterDocs help center: docs, their
// category hierarchy, and the FAQ collection.
//
// Query functions follow the same degrade-don't-fail rule as the blog:
// upstream failures become empty or nil results and are only visible in
// logs and metrics.
package helpcenter

import (
	"context"
	"net/url"
	"strconv"

	"zlendo/internal/models"
	"zlendo/internal/wordpress"
)

// DefaultPerPage is the listing page size when the caller passes none.
const DefaultPerPage = 12

// BetterDocs FAQ endpoints. FAQs are not part of the docs collection.
const (
	FaqEndpoint         = "betterdocs_faq"
	FaqCategoryEndpoint = "betterdocs_faq_category"
)

// Collection describes the BetterDocs docs endpoint and its taxonomies.
var Collection = wordpress.Collection{
	Entries:          "docs",
	Categories:       "doc_category",
	Tags:             "doc_tag",
	CategoryTaxonomy: "doc_category",
	TagTaxonomy:      "doc_tag",
	CategoryParam:    "doc_category",
	TagParam:         "doc_tag",
}

// Headers returns the request headers the help-center host requires. Its
// firewall rejects requests without a browser-like User-Agent and a Referer
// from the public site.
func Headers(userAgent, siteURL string) map[string]string {
	return map[string]string{
		"User-Agent": userAgent,
		"Referer":    siteURL + "/",
	}
}

// Service answers help-center queries. It holds no mutable state.
type Service struct {
	wp *wordpress.Adapter
}

// NewService creates a help-center service on top of client. The client's
// source should carry Headers.
func NewService(client *wordpress.Client) *Service {
	return &Service{wp: wordpress.NewAdapter(client, Collection)}
}

// Revalidate is how long help-center responses may be cached downstream.
func (s *Service) Revalidate() int {
	return int(s.wp.Client().Source().Revalidate.Seconds())
}

// GetDocs returns one page of docs.
func (s *Service) GetDocs(ctx context.Context, page, perPage int) models.PaginatedDocs {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "docs", wordpress.ListQuery{Page: page, PerPage: perPage})
}

// GetDocBySlug returns the doc with slug, or nil.
func (s *Service) GetDocBySlug(ctx context.Context, slug string) *models.HelpArticle {
	raw, err := s.wp.EntryBySlug(ctx, slug)
	if err != nil || raw == nil {
		s.wp.Fallback("doc_by_slug", err)
		return nil
	}
	doc := TransformDoc(*raw)
	return &doc
}

// GetAllDocSlugs returns every doc slug, keeping what was collected when a
// page fails.
func (s *Service) GetAllDocSlugs(ctx context.Context) []string {
	slugs, err := s.wp.EntrySlugs(ctx)
	if err != nil {
		s.wp.Partial("doc_slugs", len(slugs), err)
	}
	return slugs
}

// GetDocsByCategory resolves the category slug, then lists its docs.
func (s *Service) GetDocsByCategory(ctx context.Context, categorySlug string, page, perPage int) models.PaginatedDocs {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	cat, err := s.wp.CategoryBySlug(ctx, categorySlug)
	if err != nil || cat == nil {
		s.wp.Fallback("docs_by_category", err)
		return models.EmptyDocs(page)
	}
	return s.list(ctx, "docs_by_category", wordpress.ListQuery{Page: page, PerPage: perPage, CategoryID: cat.ID})
}

// GetDocsByCategoryID lists the docs of an already resolved category.
func (s *Service) GetDocsByCategoryID(ctx context.Context, categoryID, page, perPage int) models.PaginatedDocs {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "docs_by_category", wordpress.ListQuery{Page: page, PerPage: perPage, CategoryID: categoryID})
}

// SearchDocs runs a WordPress full-text search over docs.
func (s *Service) SearchDocs(ctx context.Context, query string, page, perPage int) models.PaginatedDocs {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "search_docs", wordpress.ListQuery{Page: page, PerPage: perPage, Search: query})
}

// GetDocCategories returns the two-level category tree.
func (s *Service) GetDocCategories(ctx context.Context) []models.HelpCategory {
	terms, err := s.wp.Categories(ctx)
	if err != nil {
		s.wp.Fallback("doc_categories", err)
		return []models.HelpCategory{}
	}
	return BuildCategoryTree(TransformDocCategories(terms))
}

// GetDocCategoryBySlug returns the category with slug and its direct
// children, or nil. If only the children cannot be listed, the category is
// returned without them.
func (s *Service) GetDocCategoryBySlug(ctx context.Context, slug string) *models.HelpCategory {
	t, err := s.wp.CategoryBySlug(ctx, slug)
	if err != nil || t == nil {
		s.wp.Fallback("doc_category_by_slug", err)
		return nil
	}
	cat := TransformDocCategory(*t)

	q := url.Values{}
	q.Set("parent", strconv.Itoa(cat.ID))
	children, err := wordpress.FetchAll[wordpress.Term](ctx, s.wp.Client(), Collection.Categories, q)
	if err != nil {
		s.wp.Fallback("doc_category_children", err)
		return &cat
	}
	cat.Subcategories = ChildrenOf(TransformDocCategories(children), cat.ID)
	return &cat
}

// GetAllDocCategorySlugs returns every doc category slug.
func (s *Service) GetAllDocCategorySlugs(ctx context.Context) []string {
	slugs, err := s.wp.CategorySlugs(ctx)
	if err != nil {
		s.wp.Partial("doc_category_slugs", len(slugs), err)
	}
	return slugs
}

// GetFaqs returns every FAQ, or an empty slice on failure.
func (s *Service) GetFaqs(ctx context.Context) []models.FaqItem {
	faqs, err := s.faqs(ctx)
	if err != nil {
		s.wp.Fallback("faqs", err)
		return []models.FaqItem{}
	}
	return faqs
}

// GetFaqCategories returns every FAQ category with its FAQs attached. It
// fetches the categories and the whole FAQ set on every call; either
// failing yields an empty slice.
func (s *Service) GetFaqCategories(ctx context.Context) []models.FaqCategory {
	terms, err := wordpress.FetchAll[wordpress.Term](ctx, s.wp.Client(), FaqCategoryEndpoint, nil)
	if err != nil {
		s.wp.Fallback("faq_categories", err)
		return []models.FaqCategory{}
	}
	faqs, err := s.faqs(ctx)
	if err != nil {
		s.wp.Fallback("faq_categories", err)
		return []models.FaqCategory{}
	}

	cats := make([]models.FaqCategory, 0, len(terms))
	for _, t := range terms {
		cats = append(cats, TransformFaqCategory(t))
	}
	return AttachFaqs(cats, faqs)
}

func (s *Service) faqs(ctx context.Context) ([]models.FaqItem, error) {
	raw, err := wordpress.FetchAll[wordpress.Post](ctx, s.wp.Client(), FaqEndpoint, nil)
	if err != nil {
		return nil, err
	}
	faqs := make([]models.FaqItem, 0, len(raw))
	for _, p := range raw {
		faqs = append(faqs, TransformFaq(p))
	}
	return faqs, nil
}

// list fetches one page of docs, falling back to the empty page.
func (s *Service) list(ctx context.Context, operation string, q wordpress.ListQuery) models.PaginatedDocs {
	raw, page, err := s.wp.Entries(ctx, q)
	if err != nil {
		s.wp.Fallback(operation, err)
		return models.EmptyDocs(q.Page)
	}
	return models.PaginatedDocs{
		Articles:    TransformDocs(raw),
		TotalPages:  page.TotalPages,
		TotalDocs:   page.Total,
		CurrentPage: q.Page,
	}
}
