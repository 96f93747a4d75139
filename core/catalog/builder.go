// Package catalog - Snapshot builder
// The builder is the only writer; Build seals the tables, computes the
// content hash, and runs completeness validation.
package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"cloudforge/core/determinism"
	"cloudforge/core/types"
	"cloudforge/internal/logging"
)

// Builder accumulates mapping tables before sealing them into a Snapshot
type Builder struct {
	tables map[types.Provider]*providerTable
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		tables: make(map[types.Provider]*providerTable),
	}
}

func (b *Builder) table(p types.Provider) *providerTable {
	t, ok := b.tables[p]
	if !ok {
		t = &providerTable{
			flavors:   make(map[string]FlavorEntry),
			images:    make(map[string]ImageEntry),
			locations: make(map[string]LocationEntry),
			gpus:      make(map[string]GPUEntry),
			currency:  types.CurrencyUSD,
		}
		b.tables[p] = t
	}
	return t
}

// WithCurrency sets the price currency for a provider's tables
func (b *Builder) WithCurrency(p types.Provider, c types.Currency) *Builder {
	b.table(p).currency = c
	return b
}

// AddFlavor maps a generic flavor name for one provider
func (b *Builder) AddFlavor(p types.Provider, name string, entry FlavorEntry) *Builder {
	b.table(p).flavors[name] = entry
	return b
}

// AddImage maps a generic image name for one provider
func (b *Builder) AddImage(p types.Provider, name string, entry ImageEntry) *Builder {
	b.table(p).images[name] = entry
	return b
}

// AddLocation maps a generic location name for one provider
func (b *Builder) AddLocation(p types.Provider, name string, entry LocationEntry) *Builder {
	b.table(p).locations[name] = entry
	return b
}

// AddGPU maps a generic GPU type for one provider
func (b *Builder) AddGPU(p types.Provider, gpuType string, entry GPUEntry) *Builder {
	b.table(p).gpus[gpuType] = entry
	return b
}

// Build seals the tables into an immutable snapshot. Completeness is
// validated here, at load time, rather than at lookup time: a generic
// name mapped for one provider but missing for another produces a
// warning, never a failure.
func (b *Builder) Build() *Snapshot {
	snap := &Snapshot{
		tables: b.tables,
	}
	// the snapshot owns the tables; the builder starts over empty so a
	// late Add* call cannot reach into the sealed snapshot
	b.tables = make(map[types.Provider]*providerTable)

	for _, p := range determinism.SortedKeys(providerKeys(snap.tables)) {
		provider := types.Provider(p)
		snap.providers = append(snap.providers, provider)
		snap.tables[provider].sortFlavorOrder()
	}

	snap.warnings = validateCompleteness(snap)
	snap.contentHash = computeHash(snap)

	for _, w := range snap.warnings {
		logging.Warn("catalog completeness", zap.String("warning", w))
	}

	return snap
}

func providerKeys(tables map[types.Provider]*providerTable) map[string]struct{} {
	out := make(map[string]struct{}, len(tables))
	for p := range tables {
		out[string(p)] = struct{}{}
	}
	return out
}

// validateCompleteness cross-checks generic names across providers
func validateCompleteness(s *Snapshot) []string {
	var warnings []string

	union := func(pick func(*providerTable) map[string]struct{}) []string {
		all := make(map[string]struct{})
		for _, t := range s.tables {
			for name := range pick(t) {
				all[name] = struct{}{}
			}
		}
		return determinism.SortedKeys(all)
	}

	flavorNames := union(func(t *providerTable) map[string]struct{} { return keySet(t.flavors) })
	imageNames := union(func(t *providerTable) map[string]struct{} { return keySet(t.images) })
	locationNames := union(func(t *providerTable) map[string]struct{} { return keySet(t.locations) })

	for _, p := range s.providers {
		t := s.tables[p]
		for _, name := range flavorNames {
			if _, ok := t.flavors[name]; !ok {
				warnings = append(warnings, fmt.Sprintf("flavor %q has no mapping for %s", name, p))
			}
		}
		for _, name := range imageNames {
			if _, ok := t.images[name]; !ok {
				warnings = append(warnings, fmt.Sprintf("image %q has no mapping for %s", name, p))
			}
		}
		for _, name := range locationNames {
			if _, ok := t.locations[name]; !ok {
				warnings = append(warnings, fmt.Sprintf("location %q has no mapping for %s", name, p))
			}
		}
	}
	return warnings
}

func keySet[V any](m map[string]V) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// computeHash hashes every table entry in deterministic order
func computeHash(s *Snapshot) determinism.ContentHash {
	h := determinism.NewHasher()
	for _, p := range s.providers {
		t := s.tables[p]
		h.Write("provider", string(p), string(t.currency))
		for _, name := range determinism.SortedKeys(t.flavors) {
			e := t.flavors[name]
			h.Write("flavor", name, e.InstanceType, fmt.Sprintf("%d/%g", e.VCPUs, e.MemoryGB), e.HourlyCost.String())
		}
		for _, name := range determinism.SortedKeys(t.images) {
			h.Write("image", name, t.images[name].ID)
		}
		for _, name := range determinism.SortedKeys(t.locations) {
			h.Write("location", name, t.locations[name].ID)
		}
		for _, name := range determinism.SortedKeys(t.gpus) {
			e := t.gpus[name]
			h.Write("gpu", name, e.SKU, fmt.Sprintf("%d", e.Count), e.HourlyCost.String())
		}
	}
	return h.Sum()
}
