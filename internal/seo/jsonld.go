// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seo

import (
	"fmt"
	"strings"

	"zlendo/internal/models"
)

const schemaContext = "https://schema.org"

// JSONLD is a schema.org node, rendered into <script type="application/ld+json">.
type JSONLD map[string]any

// Crumb is one breadcrumb step; Path is relative to the site.
type Crumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// BreadcrumbJSONLD is the schema.org BreadcrumbList for crumbs.
func (g *Generator) BreadcrumbJSONLD(crumbs []Crumb) JSONLD {
	items := make([]JSONLD, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, JSONLD{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     g.URL(c.Path),
		})
	}
	return JSONLD{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

func (g *Generator) organization() JSONLD {
	return JSONLD{
		"@type": "Organization",
		"name":  g.SiteName,
		"url":   g.SiteURL,
		"logo":  JSONLD{"@type": "ImageObject", "url": g.SiteURL + "/logo.png"},
	}
}

func person(a models.Author) JSONLD {
	p := JSONLD{"@type": "Person", "name": a.Name}
	if a.Avatar != nil {
		p["image"] = *a.Avatar
	}
	return p
}

func termNames(terms []models.TermRef) string {
	names := make([]string, 0, len(terms))
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

// readingDuration renders minutes as an ISO 8601 duration.
func readingDuration(minutes int) string {
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("PT%dM", minutes)
}
