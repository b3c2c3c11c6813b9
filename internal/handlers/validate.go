// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"zlendo/internal/slug"
)

// maxSearchLen bounds the free-text search query forwarded upstream.
const maxSearchLen = 200

// validateSearch trims the search query and returns an error message when
// it cannot be forwarded.
func validateSearch(q string) (string, string) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > maxSearchLen {
		return "", "Search query is too long (max 200 characters)."
	}
	return q, ""
}

// slugParam reads and normalizes the {slug} route parameter. ok is false
// when it cannot be a WordPress slug.
func slugParam(r *http.Request) (string, bool) {
	s := slug.Normalize(chi.URLParam(r, "slug"))
	return s, slug.Valid(s)
}
