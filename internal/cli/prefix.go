// Package cli provides CLI infrastructure for shop.
package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/shoplist/internal/model"
	"github.com/jacksmith/shoplist/internal/ops"
)

// MatchCategory finds a unique category from a case-insensitive prefix.
// An exact match wins over prefix matches. An empty input is returned as-is
// so that the caller's validation reports the missing category.
func MatchCategory(prefix string, categories []model.Category) (model.Category, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", nil
	}
	lower := strings.ToLower(prefix)

	for _, c := range categories {
		if strings.ToLower(string(c)) == lower {
			return c, nil
		}
	}

	var matches []string
	var match model.Category
	for _, c := range categories {
		if strings.HasPrefix(strings.ToLower(string(c)), lower) {
			matches = append(matches, string(c))
			match = c
		}
	}

	switch len(matches) {
	case 0:
		return "", &ops.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("unknown category %q (choose from: %s)", prefix, joinCategories(categories)),
		}
	case 1:
		return match, nil
	default:
		return "", &ops.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("ambiguous category %q matches: %s", prefix, strings.Join(matches, ", ")),
		}
	}
}

func joinCategories(categories []model.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
