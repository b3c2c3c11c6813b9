// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug checks slugs taken from request paths before they are sent
// upstream. WordPress slugs are lowercase ASCII letters, digits, hyphens and
// underscores, with non-ASCII characters percent-encoded.
package slug

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxLen is the longest slug WordPress stores (post_name is varchar(200)).
const MaxLen = 200

var (
	// wpSlug matches a sanitized WordPress slug.
	wpSlug = regexp.MustCompile(`^[a-z0-9_%-]+$`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

const lowerHex = "0123456789abcdef"

// Normalize lowercases s, turns runs of whitespace into single hyphens and
// trims surrounding hyphens, the way WordPress links differ from stored
// slugs in practice ("Floor-Plans " vs "floor-plans"). Non-ASCII bytes are
// percent-encoded in lowercase, so "café", "caf%C3%A9" and "caf%c3%a9" all
// become the stored form "caf%c3%a9".
func Normalize(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = strings.Join(strings.Fields(result), "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return encodeNonASCII(strings.Trim(result, "-"))
}

func encodeNonASCII(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(lowerHex[c>>4])
		b.WriteByte(lowerHex[c&0x0f])
	}
	return b.String()
}

// Valid reports whether s could be a WordPress slug. Anything else cannot
// match upstream and is answered locally.
func Valid(s string) bool {
	return s != "" && len(s) <= MaxLen && wpSlug.MatchString(s)
}
