// Package catalog - YAML table loading
// Loading is the single external-I/O step; everything downstream reads
// the sealed snapshot only.
package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// File is the on-disk mapping table format for one provider
type File struct {
	Provider  types.Provider           `yaml:"provider"`
	Currency  types.Currency           `yaml:"currency,omitempty"`
	Flavors   map[string]FlavorEntry   `yaml:"flavors,omitempty"`
	Images    map[string]ImageEntry    `yaml:"images,omitempty"`
	Locations map[string]LocationEntry `yaml:"locations,omitempty"`
	GPUs      map[string]GPUEntry      `yaml:"gpus,omitempty"`
}

// LoadFiles reads provider table files into a builder and seals them.
// Later files extend or override earlier entries for the same provider.
func LoadFiles(paths ...string) (*Snapshot, error) {
	b := NewBuilder()
	for _, path := range paths {
		if err := loadInto(b, path); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// LoadInto merges one provider table file into an existing builder, so
// user-supplied files can extend the built-in catalogs.
func LoadInto(b *Builder, path string) error {
	return loadInto(b, path)
}

func loadInto(b *Builder, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Config("failed to read catalog file", err).WithContext("path", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return errors.Config("failed to parse catalog file", err).WithContext("path", path)
	}
	if !f.Provider.IsValid() {
		return errors.Input("catalog file has no valid provider").WithContext("path", path)
	}

	if f.Currency != "" {
		b.WithCurrency(f.Provider, f.Currency)
	}
	for name, entry := range f.Flavors {
		b.AddFlavor(f.Provider, name, entry)
	}
	for name, entry := range f.Images {
		b.AddImage(f.Provider, name, entry)
	}
	for name, entry := range f.Locations {
		b.AddLocation(f.Provider, name, entry)
	}
	for gpuType, entry := range f.GPUs {
		b.AddGPU(f.Provider, gpuType, entry)
	}
	return nil
}
