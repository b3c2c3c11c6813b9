// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"strings"

	"zlendo/internal/models"
)

// avatarSizes lists avatar_urls keys in order of preference.
var avatarSizes = []string{"96", "48", "24"}

// ResolveAuthor resolves the embedded author, falling back to fallbackName when the
// post was fetched without _embed or the user could not be embedded.
func (e *Embedded) ResolveAuthor(fallbackName string) models.Author {
	author := models.Author{Name: fallbackName}
	if e == nil || len(e.Author) == 0 {
		return author
	}
	a := e.Author[0]
	if name := strings.TrimSpace(a.Name); name != "" {
		author.Name = name
	}
	for _, size := range avatarSizes {
		if u := a.AvatarURLs[size]; u != "" {
			author.Avatar = &u
			break
		}
	}
	return author
}

// ResolveFeaturedImage resolves the embedded featured media. It returns nil unless
// the media has a source URL. fallbackAlt is used when the attachment has no
// alt text.
func (e *Embedded) ResolveFeaturedImage(fallbackAlt string) *models.FeaturedImage {
	if e == nil || len(e.FeaturedMedia) == 0 {
		return nil
	}
	m := e.FeaturedMedia[0]
	if strings.TrimSpace(m.SourceURL) == "" {
		return nil
	}
	alt := strings.TrimSpace(m.AltText)
	if alt == "" {
		alt = fallbackAlt
	}
	return &models.FeaturedImage{
		URL:    m.SourceURL,
		Alt:    alt,
		Width:  int(m.MediaDetails.Width),
		Height: int(m.MediaDetails.Height),
	}
}

// TermsOf returns the embedded terms of one taxonomy. wp:term groups follow
// the taxonomy registration order of the post type, but every term is
// matched on its own taxonomy field instead of trusting the position.
func (e *Embedded) TermsOf(taxonomy string) []models.TermRef {
	refs := []models.TermRef{}
	if e == nil {
		return refs
	}
	for _, group := range e.Terms {
		for _, t := range group {
			if t.Taxonomy != taxonomy || t.ID == 0 {
				continue
			}
			refs = append(refs, models.TermRef{ID: t.ID, Name: StripHTML(t.Name), Slug: t.Slug})
		}
	}
	return refs
}
