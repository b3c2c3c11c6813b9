// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"zlendo/internal/models"
	"zlendo/internal/wordpress"
)

// FallbackAuthor is shown when a post has no embeddable author.
const FallbackAuthor = "Zlendo Team"

// TransformPost maps a raw post onto the BlogPost view model. Content stays
// HTML; title and excerpt are plain text.
func TransformPost(p wordpress.Post) models.BlogPost {
	title := wordpress.StripHTML(p.Title.Rendered)
	return models.BlogPost{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         title,
		Excerpt:       wordpress.StripHTML(p.Excerpt.Rendered),
		Content:       p.Content.Rendered,
		Date:          p.Date,
		FormattedDate: wordpress.FormatDate(p.Date),
		Modified:      p.Modified,
		Author:        p.Embedded.ResolveAuthor(FallbackAuthor),
		Categories:    p.Embedded.TermsOf(Collection.CategoryTaxonomy),
		Tags:          p.Embedded.TermsOf(Collection.TagTaxonomy),
		FeaturedImage: p.Embedded.ResolveFeaturedImage(title),
		ReadingTime:   wordpress.ReadingTime(p.Content.Rendered),
	}
}

// TransformPosts maps a page of raw posts, never returning nil.
func TransformPosts(raw []wordpress.Post) []models.BlogPost {
	posts := make([]models.BlogPost, 0, len(raw))
	for _, p := range raw {
		posts = append(posts, TransformPost(p))
	}
	return posts
}

func TransformCategory(t wordpress.Term) models.Category {
	return models.Category{
		ID:          t.ID,
		Name:        wordpress.StripHTML(t.Name),
		Slug:        t.Slug,
		Description: wordpress.StripHTML(t.Description),
		Count:       t.Count,
	}
}

func TransformTag(t wordpress.Term) models.Tag {
	return models.Tag{
		ID:          t.ID,
		Name:        wordpress.StripHTML(t.Name),
		Slug:        t.Slug,
		Description: wordpress.StripHTML(t.Description),
		Count:       t.Count,
	}
}
