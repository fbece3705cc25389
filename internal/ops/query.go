package ops

import (
	"strings"

	"github.com/jacksmith/shoplist/internal/model"
)

// Match is an item together with its 1-based list position.
type Match struct {
	Position int
	Item     model.ShoppingItem
}

// Group is the set of items sharing a category.
type Group struct {
	Category model.Category
	Items    []Match
}

// Find returns items whose name contains query, case-insensitively.
func (ls *ListStore) Find(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []Match
	for i, item := range ls.items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matches = append(matches, Match{Position: i + 1, Item: item})
		}
	}
	return matches
}

// FilterCategory returns items in category c, ignoring case.
func (ls *ListStore) FilterCategory(c model.Category) []Match {
	var matches []Match
	for i, item := range ls.items {
		if strings.EqualFold(string(item.Category), string(c)) {
			matches = append(matches, Match{Position: i + 1, Item: item})
		}
	}
	return matches
}

// ByCategory groups items by category. Groups appear in the order their
// category is first seen in the list; items keep list order within a group.
func (ls *ListStore) ByCategory() []Group {
	var groups []Group
	index := make(map[model.Category]int)

	for i, item := range ls.items {
		g, ok := index[item.Category]
		if !ok {
			g = len(groups)
			index[item.Category] = g
			groups = append(groups, Group{Category: item.Category})
		}
		groups[g].Items = append(groups[g].Items, Match{Position: i + 1, Item: item})
	}
	return groups
}

// TotalQuantity returns the sum of all item quantities.
func (ls *ListStore) TotalQuantity() int {
	total := 0
	for _, item := range ls.items {
		total += item.Quantity
	}
	return total
}
