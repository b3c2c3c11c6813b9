// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"zlendo/internal/models"
	"zlendo/internal/wordpress"
)

// PostPath is the site path of a blog post.
func (g *Generator) PostPath(slug string) string {
	return g.BlogPath + "/" + slug
}

// CategoryPath is the site path of a blog category listing.
func (g *Generator) CategoryPath(slug string) string {
	return g.BlogPath + "/category/" + slug
}

// TagPath is the site path of a blog tag listing.
func (g *Generator) TagPath(slug string) string {
	return g.BlogPath + "/tag/" + slug
}

func (g *Generator) blogDescription() string {
	return "Home design ideas, floor plan guides and real estate insights from the " + g.SiteName + " team."
}

// BlogListingMetadata describes page n of the blog index.
func (g *Generator) BlogListingMetadata(page int) Metadata {
	return g.page(pagedTitle("Blog", page), g.blogDescription(), g.PagedURL(g.BlogPath, page), g.defaultImage())
}

// PostMetadata describes a single post as an Open Graph article.
func (g *Generator) PostMetadata(post models.BlogPost) Metadata {
	img := g.postImage(post.FeaturedImage, post.Title)
	m := g.page(post.Title, describe(post.Excerpt, wordpress.StripHTML(post.Content)), g.URL(g.PostPath(post.Slug)), img)

	m.OpenGraph.Type = "article"
	m.OpenGraph.PublishedTime = post.Date
	m.OpenGraph.ModifiedTime = post.Modified
	m.OpenGraph.Authors = []string{post.Author.Name}
	if len(post.Categories) > 0 {
		m.OpenGraph.Section = post.Categories[0].Name
	}
	for _, t := range post.Tags {
		m.OpenGraph.Tags = append(m.OpenGraph.Tags, t.Name)
	}
	return m
}

// CategoryMetadata describes page n of a category listing.
func (g *Generator) CategoryMetadata(cat models.Category, page int) Metadata {
	desc := describe(cat.Description, "Articles about "+cat.Name+" from the "+g.SiteName+" blog.")
	return g.page(pagedTitle(cat.Name, page), desc, g.PagedURL(g.CategoryPath(cat.Slug), page), g.defaultImage())
}

// TagMetadata describes page n of a tag listing.
func (g *Generator) TagMetadata(tag models.Tag, page int) Metadata {
	desc := describe(tag.Description, "Articles tagged "+tag.Name+" on the "+g.SiteName+" blog.")
	return g.page(pagedTitle("#"+tag.Name, page), desc, g.PagedURL(g.TagPath(tag.Slug), page), g.defaultImage())
}

// PostBreadcrumbs is Home > Blog > post.
func (g *Generator) PostBreadcrumbs(post models.BlogPost) []Crumb {
	return []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Blog", Path: g.BlogPath},
		{Name: post.Title, Path: g.PostPath(post.Slug)},
	}
}

// BlogPostingJSONLD is the schema.org BlogPosting for a post.
func (g *Generator) BlogPostingJSONLD(post models.BlogPost) JSONLD {
	url := g.URL(g.PostPath(post.Slug))
	ld := JSONLD{
		"@context":         schemaContext,
		"@type":            "BlogPosting",
		"headline":         post.Title,
		"description":      describe(post.Excerpt, wordpress.StripHTML(post.Content)),
		"url":              url,
		"mainEntityOfPage": JSONLD{"@type": "WebPage", "@id": url},
		"datePublished":    post.Date,
		"dateModified":     post.Modified,
		"author":           person(post.Author),
		"publisher":        g.organization(),
		"image":            g.postImage(post.FeaturedImage, post.Title).URL,
		"timeRequired":     readingDuration(post.ReadingTime),
	}
	if len(post.Categories) > 0 {
		ld["articleSection"] = post.Categories[0].Name
	}
	if len(post.Tags) > 0 {
		ld["keywords"] = termNames(post.Tags)
	}
	return ld
}

// BlogJSONLD is the schema.org Blog for a listing of posts.
func (g *Generator) BlogJSONLD(posts []models.BlogPost) JSONLD {
	items := make([]JSONLD, 0, len(posts))
	for _, p := range posts {
		items = append(items, JSONLD{
			"@type":         "BlogPosting",
			"headline":      p.Title,
			"url":           g.URL(g.PostPath(p.Slug)),
			"datePublished": p.Date,
			"author":        person(p.Author),
		})
	}
	return JSONLD{
		"@context":    schemaContext,
		"@type":       "Blog",
		"name":        g.SiteName + " Blog",
		"description": g.blogDescription(),
		"url":         g.URL(g.BlogPath),
		"publisher":   g.organization(),
		"blogPost":    items,
	}
}

func (g *Generator) postImage(img *models.FeaturedImage, title string) Image {
	if img == nil {
		return g.defaultImage()
	}
	alt := img.Alt
	if alt == "" {
		alt = title
	}
	return Image{URL: img.URL, Width: img.Width, Height: img.Height, Alt: alt}
}
