package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadList loads a shopping list file from the given path.
// Field values are not validated; a hand-edited file is accepted as-is.
func LoadList(path string) ([]ShoppingItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file %s: %w", path, err)
	}

	items, err := DecodeList(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list file %s: %w", path, err)
	}

	return items, nil
}

// SaveList overwrites the list file at path with the full list.
func SaveList(path string, items []ShoppingItem) error {
	data, err := EncodeList(items)
	if err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write list file %s: %w", path, err)
	}

	return nil
}

// EncodeList serializes items as a JSON array of {Name, Quantity, Category}.
// A nil or empty list is written as [] rather than null.
func EncodeList(items []ShoppingItem) ([]byte, error) {
	if items == nil {
		items = []ShoppingItem{}
	}
	return json.Marshal(items)
}

// DecodeList parses a JSON array produced by EncodeList.
// An empty or whitespace-only document is treated as an empty list.
func DecodeList(data []byte) ([]ShoppingItem, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []ShoppingItem{}, nil
	}

	var items []ShoppingItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		// literal "null"
		items = []ShoppingItem{}
	}
	return items, nil
}
