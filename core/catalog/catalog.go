// Package catalog provides the mapping store: immutable, loaded-once
// tables resolving generic resource names to provider-specific
// identifiers. Lookups are pure functions over a sealed snapshot; no
// side effects, no network calls.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"cloudforge/core/determinism"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// FlavorEntry maps a generic flavor to one provider instance type
type FlavorEntry struct {
	// InstanceType is the provider instance type identifier
	InstanceType string `yaml:"instance_type" json:"instance_type"`

	// VCPUs is the instance vCPU count
	VCPUs int `yaml:"vcpus" json:"vcpus"`

	// MemoryGB is the instance memory in GB
	MemoryGB float64 `yaml:"memory_gb" json:"memory_gb"`

	// HourlyCost is the base list price per hour
	HourlyCost decimal.Decimal `yaml:"hourly_cost" json:"hourly_cost"`
}

// ImageEntry maps a generic image name to a provider image identifier
type ImageEntry struct {
	ID string `yaml:"id" json:"id"`
}

// LocationEntry maps a generic location to a provider region identifier
type LocationEntry struct {
	ID string `yaml:"id" json:"id"`
}

// GPUEntry maps a generic GPU type to one provider GPU SKU
type GPUEntry struct {
	// SKU is the provider GPU SKU identifier
	SKU string `yaml:"sku" json:"sku"`

	// Count is the number of GPUs the SKU provides
	Count int `yaml:"count" json:"count"`

	// HourlyCost is the SKU price per hour
	HourlyCost decimal.Decimal `yaml:"hourly_cost" json:"hourly_cost"`
}

// providerTable holds one provider's mapping tables
type providerTable struct {
	flavors   map[string]FlavorEntry
	images    map[string]ImageEntry
	locations map[string]LocationEntry
	gpus      map[string]GPUEntry

	// flavorOrder caches flavor entries sorted for nearest-fit scans:
	// capacity ascending, then price, then instance type
	flavorOrder []FlavorEntry

	currency types.Currency
}

// Snapshot is the sealed mapping store. Immutable after Build; all
// lookups read the same tables with no locking.
type Snapshot struct {
	tables      map[types.Provider]*providerTable
	providers   []types.Provider
	contentHash determinism.ContentHash
	warnings    []string
}

// Providers returns the registered providers in lexical order
func (s *Snapshot) Providers() []types.Provider {
	out := make([]types.Provider, len(s.providers))
	copy(out, s.providers)
	return out
}

// HasProvider reports whether any tables exist for the provider
func (s *Snapshot) HasProvider(p types.Provider) bool {
	_, ok := s.tables[p]
	return ok
}

// ContentHash returns the snapshot integrity hash
func (s *Snapshot) ContentHash() determinism.ContentHash {
	return s.contentHash
}

// Warnings returns load-time completeness warnings
func (s *Snapshot) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Currency returns the price currency for a provider's tables
func (s *Snapshot) Currency(p types.Provider) types.Currency {
	if t, ok := s.tables[p]; ok && t.currency != "" {
		return t.currency
	}
	return types.CurrencyUSD
}

// ResolveFlavor resolves a generic flavor name for one provider
func (s *Snapshot) ResolveFlavor(flavor string, p types.Provider) (FlavorEntry, error) {
	t, ok := s.tables[p]
	if !ok {
		return FlavorEntry{}, errors.NotFound("provider", string(p), string(p))
	}
	entry, ok := t.flavors[flavor]
	if !ok {
		return FlavorEntry{}, errors.NotFound("flavor", flavor, string(p))
	}
	return entry, nil
}

// ResolveImage resolves a generic image name for one provider
func (s *Snapshot) ResolveImage(image string, p types.Provider) (ImageEntry, error) {
	t, ok := s.tables[p]
	if !ok {
		return ImageEntry{}, errors.NotFound("provider", string(p), string(p))
	}
	entry, ok := t.images[image]
	if !ok {
		return ImageEntry{}, errors.NotFound("image", image, string(p))
	}
	return entry, nil
}

// ResolveLocation resolves a generic location name for one provider
func (s *Snapshot) ResolveLocation(location string, p types.Provider) (LocationEntry, error) {
	t, ok := s.tables[p]
	if !ok {
		return LocationEntry{}, errors.NotFound("provider", string(p), string(p))
	}
	entry, ok := t.locations[location]
	if !ok {
		return LocationEntry{}, errors.NotFound("location", location, string(p))
	}
	return entry, nil
}

// ResolveGPU resolves a generic GPU type for one provider. The type
// "any" matches the provider's cheapest SKU satisfying the requested
// count; price ties break by SKU name lexical order.
func (s *Snapshot) ResolveGPU(gpuType string, count int, p types.Provider) (GPUEntry, error) {
	t, ok := s.tables[p]
	if !ok {
		return GPUEntry{}, errors.NotFound("provider", string(p), string(p))
	}

	if gpuType == types.GPUTypeAny {
		return t.cheapestGPU(count, p)
	}

	entry, ok := t.gpus[gpuType]
	if !ok {
		return GPUEntry{}, errors.NotFound("gpu type", gpuType, string(p))
	}
	if entry.Count < count {
		return GPUEntry{}, errors.NoGPU(string(p), gpuType, count)
	}
	return entry, nil
}

// cheapestGPU scans the GPU table deterministically for the cheapest
// SKU satisfying count
func (t *providerTable) cheapestGPU(count int, p types.Provider) (GPUEntry, error) {
	var best GPUEntry
	found := false
	for _, gpuType := range determinism.SortedKeys(t.gpus) {
		entry := t.gpus[gpuType]
		if entry.Count < count {
			continue
		}
		if !found {
			best, found = entry, true
			continue
		}
		switch entry.HourlyCost.Cmp(best.HourlyCost) {
		case -1:
			best = entry
		case 0:
			if entry.SKU < best.SKU {
				best = entry
			}
		}
	}
	if !found {
		return GPUEntry{}, errors.NoGPU(string(p), types.GPUTypeAny, count)
	}
	return best, nil
}

// NearestFit selects the smallest instance type whose vCPU and memory
// both meet or exceed the request, never under-provisioning. Among
// satisfying types the order is capacity ascending, then lower price,
// then instance type lexical order.
func (s *Snapshot) NearestFit(cores int, memoryGB float64, p types.Provider) (FlavorEntry, error) {
	t, ok := s.tables[p]
	if !ok {
		return FlavorEntry{}, errors.NotFound("provider", string(p), string(p))
	}
	for _, entry := range t.flavorOrder {
		if entry.VCPUs >= cores && entry.MemoryGB >= memoryGB {
			return entry, nil
		}
	}
	return FlavorEntry{}, errors.NoFit(string(p), cores, memoryGB)
}

// FindInstanceType reverse-searches a provider's flavor table for an
// explicit instance type override, so the override still carries a price.
func (s *Snapshot) FindInstanceType(instanceType string, p types.Provider) (FlavorEntry, error) {
	t, ok := s.tables[p]
	if !ok {
		return FlavorEntry{}, errors.NotFound("provider", string(p), string(p))
	}
	for _, entry := range t.flavorOrder {
		if entry.InstanceType == instanceType {
			return entry, nil
		}
	}
	return FlavorEntry{}, errors.NotFound("instance type", instanceType, string(p))
}

// Flavors returns a provider's flavor table keyed by generic name
func (s *Snapshot) Flavors(p types.Provider) map[string]FlavorEntry {
	t, ok := s.tables[p]
	if !ok {
		return nil
	}
	out := make(map[string]FlavorEntry, len(t.flavors))
	for k, v := range t.flavors {
		out[k] = v
	}
	return out
}

// sortFlavorOrder builds the nearest-fit scan order
func (t *providerTable) sortFlavorOrder() {
	t.flavorOrder = t.flavorOrder[:0]
	for _, name := range determinism.SortedKeys(t.flavors) {
		t.flavorOrder = append(t.flavorOrder, t.flavors[name])
	}
	sort.SliceStable(t.flavorOrder, func(i, j int) bool {
		a, b := t.flavorOrder[i], t.flavorOrder[j]
		if a.VCPUs != b.VCPUs {
			return a.VCPUs < b.VCPUs
		}
		if a.MemoryGB != b.MemoryGB {
			return a.MemoryGB < b.MemoryGB
		}
		if c := a.HourlyCost.Cmp(b.HourlyCost); c != 0 {
			return c < 0
		}
		return a.InstanceType < b.InstanceType
	})
}
