// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package helpcenter

import (
	"cmp"
	"slices"
	"strings"

	"zlendo/internal/models"
)

// maxDepth is the deepest level kept in the category tree: roots are 0,
// their direct children 1.
const maxDepth = 1

// BuildCategoryTree arranges a flat category list into roots with their
// direct children. Deeper descendants and categories whose parent is not a
// root are left out. Siblings are sorted by order, then name.
func BuildCategoryTree(flat []models.HelpCategory) []models.HelpCategory {
	return buildTree(flat, 0, 0)
}

// buildTree collects the children of parentID and recurses until maxDepth.
func buildTree(flat []models.HelpCategory, parentID, depth int) []models.HelpCategory {
	result := []models.HelpCategory{}
	for _, c := range flat {
		if c.Parent != parentID || (depth > 0 && c.ID == parentID) {
			continue
		}
		c.Subcategories = []models.HelpCategory{}
		if depth < maxDepth {
			c.Subcategories = buildTree(flat, c.ID, depth+1)
		}
		result = append(result, c)
	}
	sortCategories(result)
	return result
}

// ChildrenOf returns the direct children of parentID in display order.
func ChildrenOf(flat []models.HelpCategory, parentID int) []models.HelpCategory {
	return buildTree(flat, parentID, maxDepth)
}

func sortCategories(cats []models.HelpCategory) {
	slices.SortStableFunc(cats, func(a, b models.HelpCategory) int {
		return cmp.Or(
			cmp.Compare(a.Order, b.Order),
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
		)
	})
}
