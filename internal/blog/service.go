// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog serves the marketing blog from its WordPress installation.
//
// Every query function degrades instead of failing: an unreachable or
// misbehaving upstream yields the same empty list or nil a legitimately empty
// result would. The difference is visible only in logs and metrics.
package blog

import (
	"context"
	"slices"

	"zlendo/internal/models"
	"zlendo/internal/wordpress"
)

// DefaultPerPage is the listing page size when the caller passes none.
const DefaultPerPage = 9

// uncategorizedSlug is WordPress's default category, hidden from static paths.
const uncategorizedSlug = "uncategorized"

// Collection describes the core posts endpoint and its taxonomies.
var Collection = wordpress.Collection{
	Entries:          "posts",
	Categories:       "categories",
	Tags:             "tags",
	CategoryTaxonomy: "category",
	TagTaxonomy:      "post_tag",
	CategoryParam:    "categories",
	TagParam:         "tags",
}

// Service answers blog queries. It holds no mutable state.
type Service struct {
	wp *wordpress.Adapter
}

// NewService creates a blog service on top of client.
func NewService(client *wordpress.Client) *Service {
	return &Service{wp: wordpress.NewAdapter(client, Collection)}
}

// Revalidate is how long blog responses may be cached downstream.
func (s *Service) Revalidate() int {
	return int(s.wp.Client().Source().Revalidate.Seconds())
}

// GetPosts returns one page of posts, newest first.
func (s *Service) GetPosts(ctx context.Context, page, perPage int) models.PaginatedPosts {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "posts", wordpress.ListQuery{Page: page, PerPage: perPage})
}

// GetPostBySlug returns the post with slug, or nil.
func (s *Service) GetPostBySlug(ctx context.Context, slug string) *models.BlogPost {
	raw, err := s.wp.EntryBySlug(ctx, slug)
	if err != nil || raw == nil {
		s.wp.Fallback("post_by_slug", err)
		return nil
	}
	post := TransformPost(*raw)
	return &post
}

// GetAllPostSlugs returns every post slug. When a page fails, the slugs
// collected before it are returned.
func (s *Service) GetAllPostSlugs(ctx context.Context) []string {
	slugs, err := s.wp.EntrySlugs(ctx)
	if err != nil {
		s.wp.Partial("post_slugs", len(slugs), err)
	}
	return slugs
}

// GetPostsByCategory resolves the category slug, then lists its posts. An
// unknown category yields the empty page without listing anything.
func (s *Service) GetPostsByCategory(ctx context.Context, categorySlug string, page, perPage int) models.PaginatedPosts {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	cat, err := s.wp.CategoryBySlug(ctx, categorySlug)
	if err != nil || cat == nil {
		s.wp.Fallback("posts_by_category", err)
		return models.EmptyPosts(page)
	}
	return s.list(ctx, "posts_by_category", wordpress.ListQuery{Page: page, PerPage: perPage, CategoryID: cat.ID})
}

// GetPostsByCategoryID lists the posts of an already resolved category.
func (s *Service) GetPostsByCategoryID(ctx context.Context, categoryID, page, perPage int) models.PaginatedPosts {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "posts_by_category", wordpress.ListQuery{Page: page, PerPage: perPage, CategoryID: categoryID})
}

// GetPostsByTag resolves the tag slug, then lists its posts.
func (s *Service) GetPostsByTag(ctx context.Context, tagSlug string, page, perPage int) models.PaginatedPosts {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	tag, err := s.wp.TagBySlug(ctx, tagSlug)
	if err != nil || tag == nil {
		s.wp.Fallback("posts_by_tag", err)
		return models.EmptyPosts(page)
	}
	return s.list(ctx, "posts_by_tag", wordpress.ListQuery{Page: page, PerPage: perPage, TagID: tag.ID})
}

// GetPostsByTagID lists the posts of an already resolved tag.
func (s *Service) GetPostsByTagID(ctx context.Context, tagID, page, perPage int) models.PaginatedPosts {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "posts_by_tag", wordpress.ListQuery{Page: page, PerPage: perPage, TagID: tagID})
}

// SearchPosts runs a WordPress full-text search.
func (s *Service) SearchPosts(ctx context.Context, query string, page, perPage int) models.PaginatedPosts {
	page, perPage = wordpress.Paging(page, perPage, DefaultPerPage)
	return s.list(ctx, "search_posts", wordpress.ListQuery{Page: page, PerPage: perPage, Search: query})
}

// GetCategories returns every category, or an empty slice on failure.
func (s *Service) GetCategories(ctx context.Context) []models.Category {
	terms, err := s.wp.Categories(ctx)
	if err != nil {
		s.wp.Fallback("categories", err)
		return []models.Category{}
	}
	cats := make([]models.Category, 0, len(terms))
	for _, t := range terms {
		cats = append(cats, TransformCategory(t))
	}
	return cats
}

// GetCategoryBySlug returns the category with slug, or nil.
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) *models.Category {
	t, err := s.wp.CategoryBySlug(ctx, slug)
	if err != nil || t == nil {
		s.wp.Fallback("category_by_slug", err)
		return nil
	}
	cat := TransformCategory(*t)
	return &cat
}

// GetAllCategorySlugs returns every category slug except "uncategorized".
func (s *Service) GetAllCategorySlugs(ctx context.Context) []string {
	slugs, err := s.wp.CategorySlugs(ctx)
	if err != nil {
		s.wp.Partial("category_slugs", len(slugs), err)
	}
	return slices.DeleteFunc(slugs, func(slug string) bool {
		return slug == uncategorizedSlug
	})
}

// GetTags returns every tag, or an empty slice on failure.
func (s *Service) GetTags(ctx context.Context) []models.Tag {
	terms, err := s.wp.Tags(ctx)
	if err != nil {
		s.wp.Fallback("tags", err)
		return []models.Tag{}
	}
	tags := make([]models.Tag, 0, len(terms))
	for _, t := range terms {
		tags = append(tags, TransformTag(t))
	}
	return tags
}

// GetTagBySlug returns the tag with slug, or nil.
func (s *Service) GetTagBySlug(ctx context.Context, slug string) *models.Tag {
	t, err := s.wp.TagBySlug(ctx, slug)
	if err != nil || t == nil {
		s.wp.Fallback("tag_by_slug", err)
		return nil
	}
	tag := TransformTag(*t)
	return &tag
}

// GetAllTagSlugs returns every tag slug.
func (s *Service) GetAllTagSlugs(ctx context.Context) []string {
	slugs, err := s.wp.TagSlugs(ctx)
	if err != nil {
		s.wp.Partial("tag_slugs", len(slugs), err)
	}
	return slugs
}

// list fetches one page of posts, falling back to the empty page.
func (s *Service) list(ctx context.Context, operation string, q wordpress.ListQuery) models.PaginatedPosts {
	raw, page, err := s.wp.Entries(ctx, q)
	if err != nil {
		s.wp.Fallback(operation, err)
		return models.EmptyPosts(q.Page)
	}
	return models.PaginatedPosts{
		Posts:       TransformPosts(raw),
		TotalPages:  page.TotalPages,
		TotalPosts:  page.Total,
		CurrentPage: q.Page,
	}
}
