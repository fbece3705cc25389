package ops

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/shoplist/internal/model"
)

// Validation messages shown to the user.
const (
	msgInvalidQuantity = "Please enter a valid quantity."
	msgMissingName     = "Please enter an item name."
	msgMissingCategory = "Please choose a category."
)

// ItemInput holds raw, unvalidated field values as collected from the user.
// Quantity is text so that non-numeric input can be rejected here.
type ItemInput struct {
	Name     string
	Quantity string
	Category string
}

// ParseQuantity converts quantity text to a positive integer.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, &ValidationError{Field: "quantity", Message: msgInvalidQuantity}
	}
	return n, nil
}

// ValidateName checks that an item name is not empty or whitespace-only.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: msgMissingName}
	}
	return nil
}

// ResolveCategory returns the member of categories matching c, ignoring case.
func ResolveCategory(c string, categories []model.Category) (model.Category, error) {
	c = strings.TrimSpace(c)
	if c == "" {
		return "", &ValidationError{Field: "category", Message: msgMissingCategory}
	}
	for _, known := range categories {
		if strings.EqualFold(string(known), c) {
			return known, nil
		}
	}
	return "", &ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", c)}
}

// ParseItem validates raw input and builds a ShoppingItem.
// Quantity is checked first, then name, then category.
func ParseItem(in ItemInput, categories []model.Category) (model.ShoppingItem, error) {
	qty, err := ParseQuantity(in.Quantity)
	if err != nil {
		return model.ShoppingItem{}, err
	}
	if err := ValidateName(in.Name); err != nil {
		return model.ShoppingItem{}, err
	}
	cat, err := ResolveCategory(in.Category, categories)
	if err != nil {
		return model.ShoppingItem{}, err
	}

	return model.ShoppingItem{
		Name:     strings.TrimSpace(in.Name),
		Quantity: qty,
		Category: cat,
	}, nil
}

// IssueType represents the kind of data integrity problem found in a list.
type IssueType string

const (
	IssueEmptyName       IssueType = "empty_name"
	IssueBadQuantity     IssueType = "bad_quantity"
	IssueEmptyCategory   IssueType = "empty_category"
	IssueUnknownCategory IssueType = "unknown_category"
)

// Issue is an item that violates the list invariants, typically because the
// file was edited by hand.
type Issue struct {
	Type     IssueType
	Position int // 1-based
	Message  string
}

// CheckItems reports every invariant violation in items.
// An item may produce more than one issue.
func CheckItems(items []model.ShoppingItem, categories []model.Category) []Issue {
	var issues []Issue
	for i, item := range items {
		pos := i + 1
		if strings.TrimSpace(item.Name) == "" {
			issues = append(issues, Issue{Type: IssueEmptyName, Position: pos, Message: "name is empty"})
		}
		if item.Quantity <= 0 {
			issues = append(issues, Issue{
				Type:     IssueBadQuantity,
				Position: pos,
				Message:  fmt.Sprintf("quantity %d is not positive", item.Quantity),
			})
		}
		switch {
		case strings.TrimSpace(string(item.Category)) == "":
			issues = append(issues, Issue{Type: IssueEmptyCategory, Position: pos, Message: "category is empty"})
		case !model.ContainsCategory(categories, item.Category):
			issues = append(issues, Issue{
				Type:     IssueUnknownCategory,
				Position: pos,
				Message:  fmt.Sprintf("category %q is not configured", item.Category),
			})
		}
	}
	return issues
}
