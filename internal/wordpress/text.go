// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// WordsPerMinute is the reading speed behind ReadingTime.
const WordsPerMinute = 200

// DisplayDateLayout renders dates as "January 2, 2006".
const DisplayDateLayout = "January 2, 2006"

var (
	// tagPattern matches any HTML tag, including comments and closing tags.
	tagPattern = regexp.MustCompile(`<[^>]*>`)

	// entityDecoder decodes the entities WordPress commonly emits in titles
	// and excerpts. It is a short list, not a full entity table: anything
	// else (e.g. &eacute;) passes through verbatim. One pass, so "&amp;lt;"
	// becomes "&lt;" and is not decoded twice.
	entityDecoder = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#039;", "'",
		"&#8216;", "‘",
		"&#8217;", "’",
		"&#8220;", "“",
		"&#8221;", "”",
		"&nbsp;", " ",
		"&#8211;", "–",
		"&#8230;", "…",
		"&hellip;", "…",
	)

	// wpDateLayouts are the formats WordPress uses for date/modified.
	wpDateLayouts = []string{"2006-01-02T15:04:05", time.RFC3339}
)

// StripHTML turns rendered HTML into plain text: tags are removed, the
// common entities are decoded, and surrounding whitespace is trimmed.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	s = tagPattern.ReplaceAllString(s, "")
	s = entityDecoder.Replace(s)
	return strings.TrimSpace(s)
}

// FormatDate renders a WordPress date as "January 2, 2006". A value that
// does not parse is returned unchanged.
func FormatDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(DisplayDateLayout)
}

// ParseDate parses a WordPress date (site-local, no offset) or an RFC 3339
// timestamp.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range wpDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// WordCount counts whitespace-separated words in the plain text of html.
func WordCount(html string) int {
	return len(strings.Fields(StripHTML(html)))
}

// ReadingTime estimates minutes to read html at WordsPerMinute, rounded up.
// Empty content reads in 0 minutes; any words at all take at least 1.
func ReadingTime(html string) int {
	words := WordCount(html)
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
