// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"zlendo/internal/models"
	"zlendo/internal/wordpress"
)

// ArticlePath is the site path of a help article.
func (g *Generator) ArticlePath(slug string) string {
	return g.HelpPath + "/" + slug
}

// DocCategoryPath is the site path of a help category.
func (g *Generator) DocCategoryPath(slug string) string {
	return g.HelpPath + "/category/" + slug
}

// FAQPath is the site path of the FAQ page.
func (g *Generator) FAQPath() string {
	return g.HelpPath + "/faq"
}

func (g *Generator) helpDescription() string {
	return "Guides, how-tos and answers for getting the most out of " + g.SiteName + "."
}

// HelpCenterMetadata describes page n of the help-center index.
func (g *Generator) HelpCenterMetadata(page int) Metadata {
	return g.page(pagedTitle("Help Center", page), g.helpDescription(), g.PagedURL(g.HelpPath, page), g.defaultImage())
}

// ArticleMetadata describes a single help article.
func (g *Generator) ArticleMetadata(a models.HelpArticle) Metadata {
	img := g.postImage(a.FeaturedImage, a.Title)
	m := g.page(a.Title, describe(a.Excerpt, wordpress.StripHTML(a.Content)), g.URL(g.ArticlePath(a.Slug)), img)

	m.OpenGraph.Type = "article"
	m.OpenGraph.PublishedTime = a.Date
	m.OpenGraph.ModifiedTime = a.Modified
	m.OpenGraph.Authors = []string{a.Author.Name}
	if len(a.Categories) > 0 {
		m.OpenGraph.Section = a.Categories[0].Name
	}
	return m
}

// DocCategoryMetadata describes page n of a help category.
func (g *Generator) DocCategoryMetadata(cat models.HelpCategory, page int) Metadata {
	desc := describe(cat.Description, "Help articles about "+cat.Name+".")
	return g.page(pagedTitle(cat.Name+" - Help Center", page), desc, g.PagedURL(g.DocCategoryPath(cat.Slug), page), g.defaultImage())
}

// FAQMetadata describes the FAQ page.
func (g *Generator) FAQMetadata() Metadata {
	return g.page("Frequently Asked Questions", "Answers to common questions about "+g.SiteName+".", g.URL(g.FAQPath()), g.defaultImage())
}

// ArticleBreadcrumbs is Home > Help Center > [category >] article.
func (g *Generator) ArticleBreadcrumbs(a models.HelpArticle) []Crumb {
	crumbs := []Crumb{
		{Name: "Home", Path: "/"},
		{Name: "Help Center", Path: g.HelpPath},
	}
	if len(a.Categories) > 0 {
		c := a.Categories[0]
		crumbs = append(crumbs, Crumb{Name: c.Name, Path: g.DocCategoryPath(c.Slug)})
	}
	return append(crumbs, Crumb{Name: a.Title, Path: g.ArticlePath(a.Slug)})
}

// TechArticleJSONLD is the schema.org TechArticle for a help article.
func (g *Generator) TechArticleJSONLD(a models.HelpArticle) JSONLD {
	url := g.URL(g.ArticlePath(a.Slug))
	ld := JSONLD{
		"@context":         schemaContext,
		"@type":            "TechArticle",
		"headline":         a.Title,
		"description":      describe(a.Excerpt, wordpress.StripHTML(a.Content)),
		"url":              url,
		"mainEntityOfPage": JSONLD{"@type": "WebPage", "@id": url},
		"datePublished":    a.Date,
		"dateModified":     a.Modified,
		"author":           person(a.Author),
		"publisher":        g.organization(),
		"image":            g.postImage(a.FeaturedImage, a.Title).URL,
	}
	if len(a.Categories) > 0 {
		ld["articleSection"] = a.Categories[0].Name
	}
	if len(a.Tags) > 0 {
		ld["keywords"] = termNames(a.Tags)
	}
	return ld
}

// FAQPageJSONLD is the schema.org FAQPage for faqs. Answers are reduced to
// plain text.
func (g *Generator) FAQPageJSONLD(faqs []models.FaqItem) JSONLD {
	entities := make([]JSONLD, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, JSONLD{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": JSONLD{
				"@type": "Answer",
				"text":  wordpress.StripHTML(f.Answer),
			},
		})
	}
	return JSONLD{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"url":        g.URL(g.FAQPath()),
		"mainEntity": entities,
	}
}
