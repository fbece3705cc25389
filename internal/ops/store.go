package ops

import (
	"github.com/jacksmith/shoplist/internal/model"
)

// Persister defines the persistence interface required by ListStore.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory, HTTP, etc.) for testing and GUI use.
//
// LoadList must return storage.ErrNoData when nothing has been saved yet.
type Persister interface {
	LoadList() ([]model.ShoppingItem, error)
	SaveList(items []model.ShoppingItem) error
}
