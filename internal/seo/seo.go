// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seo builds page metadata (title, description, canonical URL,
// Open Graph, Twitter card) and schema.org JSON-LD for blog and help-center
// pages. It works on view models only and performs no I/O.
package seo

import (
	"fmt"
	"strings"
)

// MaxDescription is the longest meta description emitted, in characters.
const MaxDescription = 160

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Generator holds the site-wide values every page's metadata is built from.
type Generator struct {
	SiteURL       string // absolute, without trailing slash
	SiteName      string
	BlogPath      string // "/blog"
	HelpPath      string // "/help"
	DefaultImage  string // absolute URL used when a page has no image of its own
	TwitterHandle string // "@zlendo"; empty omits twitter:site
}

// NewGenerator returns a Generator with the default section paths and
// share image for siteURL.
func NewGenerator(siteURL, siteName string) *Generator {
	siteURL = strings.TrimRight(siteURL, "/")
	return &Generator{
		SiteURL:      siteURL,
		SiteName:     siteName,
		BlogPath:     "/blog",
		HelpPath:     "/help",
		DefaultImage: siteURL + "/og-image.png",
	}
}

// Metadata is everything a page renderer puts in <head>.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Canonical   string    `json:"canonical"`
	Robots      string    `json:"robots"`
	OpenGraph   OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// OpenGraph holds og:* properties. Article fields are only set for
// type "article".
type OpenGraph struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	SiteName      string   `json:"siteName"`
	Type          string   `json:"type"`
	Locale        string   `json:"locale"`
	Images        []Image  `json:"images"`
	PublishedTime string   `json:"publishedTime,omitempty"`
	ModifiedTime  string   `json:"modifiedTime,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Section       string   `json:"section,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt"`
}

// Twitter holds twitter:* properties.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Site        string   `json:"site,omitempty"`
}

// URL makes path absolute on the site.
func (g *Generator) URL(path string) string {
	if path == "" || path == "/" {
		return g.SiteURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.SiteURL + path
}

// PagedURL is URL(path) with ?page=N for pages after the first.
func (g *Generator) PagedURL(path string, page int) string {
	if page > 1 {
		return fmt.Sprintf("%s?page=%d", g.URL(path), page)
	}
	return g.URL(path)
}

// TruncateText collapses whitespace and shortens text to at most max
// characters, cutting at a word boundary and appending an ellipsis. A single
// word longer than max is cut inside the word.
func TruncateText(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max < 1 {
		return ""
	}

	cut := runes[:max-1]
	if runes[max-1] != ' ' {
		for i := len(cut) - 1; i > 0; i-- {
			if cut[i] == ' ' {
				cut = cut[:i]
				break
			}
		}
	}
	return strings.TrimRight(string(cut), " ,;:-–") + Ellipsis
}

// pagedTitle appends "- Page N" for pages after the first.
func pagedTitle(title string, page int) string {
	if page > 1 {
		return fmt.Sprintf("%s - Page %d", title, page)
	}
	return title
}

// fullTitle brands a page title with the site name.
func (g *Generator) fullTitle(title string) string {
	if title == "" {
		return g.SiteName
	}
	return title + " | " + g.SiteName
}

// describe truncates the first non-blank candidate.
func describe(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return TruncateText(c, MaxDescription)
		}
	}
	return ""
}

// page builds website-type metadata shared by listings.
func (g *Generator) page(title, description, canonical string, img Image) Metadata {
	full := g.fullTitle(title)
	return Metadata{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		Robots:      "index, follow",
		OpenGraph: OpenGraph{
			Title:       full,
			Description: description,
			URL:         canonical,
			SiteName:    g.SiteName,
			Type:        "website",
			Locale:      "en_US",
			Images:      []Image{img},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       full,
			Description: description,
			Images:      []string{img.URL},
			Site:        g.TwitterHandle,
		},
	}
}

func (g *Generator) defaultImage() Image {
	return Image{URL: g.DefaultImage, Width: 1200, Height: 630, Alt: g.SiteName}
}
