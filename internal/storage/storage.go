// Package storage provides file system access to the persisted shopping list.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/shoplist/internal/model"
)

// ErrNoData is returned by LoadList when the list file does not exist yet.
var ErrNoData = errors.New("no shopping list data")

// Storage provides access to a single shopping list file.
type Storage struct {
	root string // directory containing the config file
	path string // path to the list file
}

// New returns a Storage for an explicit list file path.
// The config file is looked up in the same directory as path.
func New(path string) *Storage {
	return &Storage{root: filepath.Dir(path), path: path}
}

// Open returns a Storage rooted at dir.
// The list file location comes from .shoplist.yaml in dir, falling back to
// DefaultDataFile. The list file itself need not exist.
func Open(dir string) (*Storage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return nil, err
	}

	return &Storage{root: dir, path: resolveDataPath(dir, cfg.DataFile)}, nil
}

// Init creates an empty list file in dir.
// Returns error if the list file already exists.
func Init(dir string) (*Storage, error) {
	s, err := Open(dir)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil, fmt.Errorf("%s already exists", s.path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for %s: %w", s.path, err)
	}

	if err := s.SaveList(nil); err != nil {
		return nil, err
	}

	return s, nil
}

// resolveDataPath joins a relative data file onto dir.
func resolveDataPath(dir, dataFile string) string {
	if filepath.IsAbs(dataFile) {
		return dataFile
	}
	return filepath.Join(dir, dataFile)
}

// Root returns the directory containing the config file.
func (s *Storage) Root() string {
	return s.root
}

// Path returns the path to the list file.
func (s *Storage) Path() string {
	return s.path
}

// Exists reports whether the list file is present.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// LoadList reads the whole list from disk.
// Returns ErrNoData if the file does not exist.
func (s *Storage) LoadList() ([]model.ShoppingItem, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to access list file: %w", err)
	}

	return model.LoadList(s.path)
}

// SaveList overwrites the list file with items.
func (s *Storage) SaveList(items []model.ShoppingItem) error {
	return model.SaveList(s.path, items)
}
