// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

// Rendered is WordPress's {"rendered": "..."} wrapper for HTML fields.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Post is a raw entry from a post-type endpoint (/posts, /docs,
// /betterdocs_faq). Every field is optional in practice; the transformers in
// the blog and helpcenter packages are the only readers.
type Post struct {
	ID            int       `json:"id"`
	Slug          string    `json:"slug"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	Link          string    `json:"link"`
	Title         Rendered  `json:"title"`
	Content       Rendered  `json:"content"`
	Excerpt       Rendered  `json:"excerpt"`
	Date          string    `json:"date"`
	DateGMT       string    `json:"date_gmt"`
	Modified      string    `json:"modified"`
	Author        int       `json:"author"`
	FeaturedMedia int       `json:"featured_media"`
	Categories    []int     `json:"categories"`
	Tags          []int     `json:"tags"`
	DocCategory   []int     `json:"doc_category"`
	DocTag        []int     `json:"doc_tag"`
	FaqCategory   []int     `json:"betterdocs_faq_category"`
	Embedded      *Embedded `json:"_embedded"`
}

// Embedded is the _embed bag. It is only present when the request asked for it.
type Embedded struct {
	Author        []EmbeddedAuthor `json:"author"`
	FeaturedMedia []Media          `json:"wp:featuredmedia"`
	Terms         [][]Term         `json:"wp:term"`
}

// EmbeddedAuthor is an inlined user. A restricted user embeds as an error
// object, which decodes to a zero value here.
type EmbeddedAuthor struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	AvatarURLs StringMap `json:"avatar_urls"`
}

// Media is an inlined attachment.
type Media struct {
	ID           int          `json:"id"`
	SourceURL    string       `json:"source_url"`
	AltText      string       `json:"alt_text"`
	MediaDetails MediaDetails `json:"media_details"`
}

// MediaDetails carries the original dimensions of an attachment. WordPress
// emits [] instead of {} for attachments without metadata.
type MediaDetails struct {
	Width  FlexInt `json:"width"`
	Height FlexInt `json:"height"`
}

// Term is a raw taxonomy term: category, tag, doc_category, doc_tag or
// betterdocs_faq_category. Parent, Order and Thumbnail are only set by the
// hierarchical BetterDocs taxonomies.
type Term struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Count       int        `json:"count"`
	Taxonomy    string     `json:"taxonomy"`
	Link        string     `json:"link"`
	Parent      int        `json:"parent"`
	Order       FlexInt    `json:"order"`
	Thumbnail   FlexString `json:"thumbnail"`
}

// slugOnly is the row shape of a `_fields=slug` listing.
type slugOnly struct {
	Slug string `json:"slug"`
}
