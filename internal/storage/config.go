package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/shoplist/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".shoplist.yaml"

	// Default configuration values
	DefaultDataFile        = "shopping_list_data.json"
	DefaultShowAfterChange = false
)

// Config represents user configuration from .shoplist.yaml.
// This file is user-managed and never written by shop.
type Config struct {
	// DataFile is the list file, relative to the config directory unless absolute.
	DataFile string `yaml:"data_file"`

	// Categories is the fixed set of categories items may use.
	Categories []model.Category `yaml:"categories"`

	// ShowAfterChange prints the list after every add, edit, or remove.
	ShowAfterChange bool `yaml:"show_after_change"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DataFile:        DefaultDataFile,
		Categories:      model.DefaultCategories(),
		ShowAfterChange: DefaultShowAfterChange,
	}
}

// LoadConfig loads .shoplist.yaml if it exists, otherwise returns defaults.
// Partial config files are merged with defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	return loadConfig(s.root)
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}

func loadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	// Explicitly empty values fall back to defaults
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = model.DefaultCategories()
	}

	return cfg, nil
}
