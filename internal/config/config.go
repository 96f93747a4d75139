// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"sync"

	"cloudforge/core/types"
	"cloudforge/internal/errors"
	"cloudforge/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains mapping table configuration
	Catalog CatalogConfig `json:"catalog"`

	// PolicyPath points to the organization policy YAML file
	PolicyPath string `json:"policy_path,omitempty"`

	// EnabledProviders limits which providers participate in cheapest
	// selection; empty means all registered providers
	EnabledProviders []types.Provider `json:"enabled_providers,omitempty"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains mapping table settings
type CatalogConfig struct {
	// Builtin includes the built-in provider tables
	Builtin bool `json:"builtin"`

	// Paths lists extra provider table files merged over the built-ins
	Paths []string `json:"paths,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (table, json)
	DefaultFormat string `json:"default_format"`
}

// Default returns sensible defaults
func Default() Config {
	return Config{
		Version: "1",
		Catalog: CatalogConfig{Builtin: true},
		Output:  OutputConfig{DefaultFormat: "table"},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a configuration file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Config("failed to read config file", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Config("failed to parse config file", err)
	}
	return cfg, nil
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the active configuration
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active configuration
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	current = cfg
}
