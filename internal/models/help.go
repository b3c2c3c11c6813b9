// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// HelpArticle is a help-center document ready for display.
type HelpArticle struct {
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
}

// HelpCategory is a help-center category. Parent 0 marks a top-level
// category; only top-level categories carry Subcategories, one level deep.
type HelpCategory struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Parent        int            `json:"parent"`
	Count         int            `json:"count"`
	Order         int            `json:"order"`
	Icon          *string        `json:"icon"`
	Subcategories []HelpCategory `json:"subcategories"`
}

// IsRoot reports whether the category sits at the top of the hierarchy.
func (c HelpCategory) IsRoot() bool {
	return c.Parent == 0
}

// FaqItem is a single question and answer. Question is plain text, Answer is
// HTML. Membership in categories is by id only.
type FaqItem struct {
	ID          int    `json:"id"`
	Slug        string `json:"slug"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	CategoryIDs []int  `json:"categoryIds"`
}

// InCategory reports whether the FAQ belongs to the category with id.
func (f FaqItem) InCategory(id int) bool {
	for _, c := range f.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}

// FaqCategory groups FAQs. Faqs is materialised from the full FAQ set.
type FaqCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Count       int       `json:"count"`
	Faqs        []FaqItem `json:"faqs"`
}

// PaginatedDocs is one page of help articles plus the upstream totals.
type PaginatedDocs struct {
	Articles    []HelpArticle `json:"articles"`
	TotalPages  int           `json:"totalPages"`
	TotalDocs   int           `json:"totalDocs"`
	CurrentPage int           `json:"currentPage"`
}

// EmptyDocs is the result returned when a doc listing cannot be served.
// Unlike posts, an empty doc listing reports one page.
func EmptyDocs(page int) PaginatedDocs {
	return PaginatedDocs{Articles: []HelpArticle{}, TotalPages: 1, TotalDocs: 0, CurrentPage: page}
}
