// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the view models returned by the content adapters.
// Every value here is built fresh from an upstream response and is null-safe:
// optional values are pointers that encode as null, and lists are never nil.
package models

// Author is the byline attached to a post or help article.
type Author struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// TermRef is the compact form of a category or tag attached to a post.
type TermRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FeaturedImage is the resolved featured media of a post. It is nil when the
// post has none, never an image with an empty URL.
type FeaturedImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// BlogPost is a blog entry ready for display. Title and Excerpt are plain
// text; Content is the upstream-rendered HTML, left as is.
type BlogPost struct {
	ID            int            `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	Date          string         `json:"date"`
	FormattedDate string         `json:"formattedDate"`
	Modified      string         `json:"modified"`
	Author        Author         `json:"author"`
	Categories    []TermRef      `json:"categories"`
	Tags          []TermRef      `json:"tags"`
	FeaturedImage *FeaturedImage `json:"featuredImage"`
	ReadingTime   int            `json:"readingTime"`
}

// Category is a blog category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Tag is a blog tag.
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// PaginatedPosts is one page of blog posts plus the upstream totals.
type PaginatedPosts struct {
	Posts       []BlogPost `json:"posts"`
	TotalPages  int        `json:"totalPages"`
	TotalPosts  int        `json:"totalPosts"`
	CurrentPage int        `json:"currentPage"`
}

// EmptyPosts is the result returned when a post listing cannot be served.
func EmptyPosts(page int) PaginatedPosts {
	return PaginatedPosts{Posts: []BlogPost{}, TotalPages: 0, TotalPosts: 0, CurrentPage: page}
}
