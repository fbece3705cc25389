// Package ops implements the shopping list operations shared by every
// front end.
package ops

import (
	"errors"
	"fmt"

	"github.com/jacksmith/shoplist/internal/model"
	"github.com/jacksmith/shoplist/internal/storage"
)

// NoSelection is the position passed when the user has not selected an item.
const NoSelection = 0

// Action names the operation that produced a Result.
type Action string

const (
	ActionLoad   Action = "load"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionRemove Action = "remove"
)

// Result describes a successful operation for the presentation layer.
type Result struct {
	Action   Action
	Item     model.ShoppingItem // the affected item (zero for load)
	Position int                // 1-based position of the affected item
	Count    int                // list length after the operation
	Message  string
}

// StoreOptions contains optional settings for a ListStore.
type StoreOptions struct {
	// Categories is the allowed category set. Empty means
	// model.DefaultCategories.
	Categories []model.Category

	// OnRefresh is called with the current items after a successful load
	// and after every mutation.
	OnRefresh func(items []model.ShoppingItem)
}

// ListStore holds the current shopping list and keeps the persisted file in
// sync with it. Every mutation is followed by a full save.
type ListStore struct {
	p          Persister
	items      []model.ShoppingItem
	categories []model.Category
	refresh    func([]model.ShoppingItem)
}

// NewListStore returns an empty ListStore backed by p.
// Call Load to populate it from disk.
func NewListStore(p Persister, opts StoreOptions) *ListStore {
	categories := opts.Categories
	if len(categories) == 0 {
		categories = model.DefaultCategories()
	}
	return &ListStore{
		p:          p,
		items:      []model.ShoppingItem{},
		categories: categories,
		refresh:    opts.OnRefresh,
	}
}

// Categories returns the allowed category set.
func (ls *ListStore) Categories() []model.Category {
	return append([]model.Category(nil), ls.categories...)
}

// Items returns a copy of the current list in display order.
func (ls *ListStore) Items() []model.ShoppingItem {
	return append([]model.ShoppingItem{}, ls.items...)
}

// Len returns the number of items in the list.
func (ls *ListStore) Len() int {
	return len(ls.items)
}

// Get returns the item at 1-based position pos.
func (ls *ListStore) Get(pos int) (model.ShoppingItem, error) {
	if err := ls.checkSelection("show", pos); err != nil {
		return model.ShoppingItem{}, err
	}
	return ls.items[pos-1], nil
}

// Load replaces the in-memory list with the persisted one.
// A missing file is not an error; the list is left as it was.
// On a read or parse failure the in-memory list also keeps its prior state.
func (ls *ListStore) Load() (*Result, error) {
	items, err := ls.p.LoadList()
	if err != nil {
		if errors.Is(err, storage.ErrNoData) {
			return &Result{Action: ActionLoad, Count: len(ls.items), Message: "No saved list found."}, nil
		}
		return nil, &PersistError{Op: "load", Err: err}
	}

	if items == nil {
		items = []model.ShoppingItem{}
	}
	ls.items = items
	ls.notify()

	return &Result{
		Action:  ActionLoad,
		Count:   len(ls.items),
		Message: fmt.Sprintf("Loaded %d item(s).", len(ls.items)),
	}, nil
}

// Save overwrites the persisted file with the whole list.
func (ls *ListStore) Save() error {
	if err := ls.p.SaveList(ls.items); err != nil {
		return &PersistError{Op: "save", Err: err}
	}
	return nil
}

// Add validates in and appends the new item to the end of the list.
// On validation failure the list is unchanged.
func (ls *ListStore) Add(in ItemInput) (*Result, error) {
	item, err := ParseItem(in, ls.categories)
	if err != nil {
		return nil, err
	}

	ls.items = append(ls.items, item)
	ls.notify()

	if err := ls.Save(); err != nil {
		return nil, err
	}

	return &Result{
		Action:   ActionAdd,
		Item:     item,
		Position: len(ls.items),
		Count:    len(ls.items),
		Message:  "Item added successfully.",
	}, nil
}

// Edit replaces the fields of the item at pos, keeping its position.
// Requires a selection; the new fields are validated as in Add.
func (ls *ListStore) Edit(pos int, in ItemInput) (*Result, error) {
	if err := ls.checkSelection("edit", pos); err != nil {
		return nil, err
	}

	item, err := ParseItem(in, ls.categories)
	if err != nil {
		return nil, err
	}

	ls.items[pos-1] = item
	ls.notify()

	if err := ls.Save(); err != nil {
		return nil, err
	}

	return &Result{
		Action:   ActionEdit,
		Item:     item,
		Position: pos,
		Count:    len(ls.items),
		Message:  "Item updated successfully.",
	}, nil
}

// Remove deletes the item at pos.
func (ls *ListStore) Remove(pos int) (*Result, error) {
	if err := ls.checkSelection("remove", pos); err != nil {
		return nil, err
	}

	item := ls.items[pos-1]
	ls.items = append(ls.items[:pos-1], ls.items[pos:]...)
	ls.notify()

	if err := ls.Save(); err != nil {
		return nil, err
	}

	return &Result{
		Action:   ActionRemove,
		Item:     item,
		Position: pos,
		Count:    len(ls.items),
		Message:  "Item removed successfully.",
	}, nil
}

// Check reports items that violate the list invariants.
func (ls *ListStore) Check() []Issue {
	return CheckItems(ls.items, ls.categories)
}

func (ls *ListStore) checkSelection(action string, pos int) error {
	if pos == NoSelection || pos < 0 || pos > len(ls.items) {
		return &SelectionError{Action: action, Position: pos, Len: len(ls.items)}
	}
	return nil
}

func (ls *ListStore) notify() {
	if ls.refresh != nil {
		ls.refresh(ls.Items())
	}
}
