// Package grocery groups shopping-list items and renders the printable
// grocery document.
package grocery

import "github.com/recipeai/backend/internal/model"

// fallbackCategory buckets items that arrive without a category.
const fallbackCategory = "Other"

// CategoryGroup is one category section of the grouped list.
type CategoryGroup struct {
	Category string
	Items    []model.GroceryItem
}

// GroupByCategory groups a flat item list for display. Categories appear in
// first-seen order and items keep their relative input order within each
// category. Unrecognised categories are kept under their literal value.
func GroupByCategory(items []model.GroceryItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)

	for _, item := range items {
		category := item.Category
		if category == "" {
			category = fallbackCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
