// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package helpcenter

import (
	"strings"

	"zlendo/internal/models"
	"zlendo/internal/wordpress"
)

// FallbackAuthor is shown when a doc has no embeddable author.
const FallbackAuthor = "Zlendo Realty"

// TransformDoc maps a raw BetterDocs doc onto the HelpArticle view model.
func TransformDoc(p wordpress.Post) models.HelpArticle {
	title := wordpress.StripHTML(p.Title.Rendered)
	return models.HelpArticle{
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
	}
}

// TransformDocs maps a page of raw docs, never returning nil.
func TransformDocs(raw []wordpress.Post) []models.HelpArticle {
	docs := make([]models.HelpArticle, 0, len(raw))
	for _, p := range raw {
		docs = append(docs, TransformDoc(p))
	}
	return docs
}

// TransformDocCategory maps a doc_category term. The BetterDocs thumbnail,
// when set, becomes the category icon.
func TransformDocCategory(t wordpress.Term) models.HelpCategory {
	var icon *string
	if u := strings.TrimSpace(string(t.Thumbnail)); u != "" {
		icon = &u
	}
	return models.HelpCategory{
		ID:            t.ID,
		Name:          wordpress.StripHTML(t.Name),
		Slug:          t.Slug,
		Description:   wordpress.StripHTML(t.Description),
		Parent:        t.Parent,
		Count:         t.Count,
		Order:         int(t.Order),
		Icon:          icon,
		Subcategories: []models.HelpCategory{},
	}
}

func TransformDocCategories(terms []wordpress.Term) []models.HelpCategory {
	cats := make([]models.HelpCategory, 0, len(terms))
	for _, t := range terms {
		cats = append(cats, TransformDocCategory(t))
	}
	return cats
}

// TransformFaq maps a betterdocs_faq entry. The answer stays HTML.
func TransformFaq(p wordpress.Post) models.FaqItem {
	ids := make([]int, 0, len(p.FaqCategory))
	ids = append(ids, p.FaqCategory...)
	return models.FaqItem{
		ID:          p.ID,
		Slug:        p.Slug,
		Question:    wordpress.StripHTML(p.Title.Rendered),
		Answer:      p.Content.Rendered,
		CategoryIDs: ids,
	}
}

func TransformFaqCategory(t wordpress.Term) models.FaqCategory {
	return models.FaqCategory{
		ID:          t.ID,
		Name:        wordpress.StripHTML(t.Name),
		Slug:        t.Slug,
		Description: wordpress.StripHTML(t.Description),
		Count:       t.Count,
		Faqs:        []models.FaqItem{},
	}
}

// AttachFaqs returns copies of categories, each holding the FAQs that list
// its id, in FAQ order. The inputs are not modified.
func AttachFaqs(categories []models.FaqCategory, faqs []models.FaqItem) []models.FaqCategory {
	out := make([]models.FaqCategory, 0, len(categories))
	for _, c := range categories {
		c.Faqs = []models.FaqItem{}
		for _, f := range faqs {
			if f.InCategory(c.ID) {
				c.Faqs = append(c.Faqs, f)
			}
		}
		out = append(out, c)
	}
	return out
}
