// Package model defines the core data structures for shoplist.
package model

import "strings"

// Category is the aisle or group an item belongs to.
type Category string

const (
	CategoryProduce   Category = "Produce"
	CategoryDairy     Category = "Dairy"
	CategoryBakery    Category = "Bakery"
	CategoryMeat      Category = "Meat"
	CategoryPantry    Category = "Pantry"
	CategoryFrozen    Category = "Frozen"
	CategoryBeverages Category = "Beverages"
	CategoryHousehold Category = "Household"
	CategoryOther     Category = "Other"
)

// DefaultCategories returns the built-in category set in display order.
func DefaultCategories() []Category {
	return []Category{
		CategoryProduce,
		CategoryDairy,
		CategoryBakery,
		CategoryMeat,
		CategoryPantry,
		CategoryFrozen,
		CategoryBeverages,
		CategoryHousehold,
		CategoryOther,
	}
}

// ShoppingItem is one entry on the shopping list.
// JSON keys match the persisted file format exactly.
type ShoppingItem struct {
	Name     string   `json:"Name"`
	Quantity int      `json:"Quantity"`
	Category Category `json:"Category"`
}

// DisplayName returns the name with surrounding whitespace removed.
func (i *ShoppingItem) DisplayName() string {
	return strings.TrimSpace(i.Name)
}

// ContainsCategory reports whether c is in set, ignoring case.
func ContainsCategory(set []Category, c Category) bool {
	for _, s := range set {
		if strings.EqualFold(string(s), string(c)) {
			return true
		}
	}
	return false
}
