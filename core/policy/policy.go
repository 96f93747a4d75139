// Package policy models organization-level cost policy as an explicit
// immutable value passed into every resolver and selector call.
// No ambient or global state; identical inputs always evaluate identically.
package policy

import (
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// Policy is the organization cost policy snapshot.
// Read-only after load; callers must not mutate it.
type Policy struct {
	// ExcludeFromCheapest removes providers from cheapest selection entirely
	ExcludeFromCheapest []types.Provider `yaml:"exclude_from_cheapest" json:"exclude_from_cheapest,omitempty"`

	// PriorityOrder breaks price ties; an earlier entry wins
	PriorityOrder []types.Provider `yaml:"priority_order" json:"priority_order,omitempty"`

	// RegionalCostFactors multiplies base prices per resolved region.
	// Keys match resolved region identifiers exactly; no prefix matching.
	RegionalCostFactors map[string]decimal.Decimal `yaml:"regional_cost_factors" json:"regional_cost_factors,omitempty"`

	// ProviderDiscounts holds organization discounts in percent, keyed by provider
	ProviderDiscounts map[types.Provider]decimal.Decimal `yaml:"provider_discounts" json:"provider_discounts,omitempty"`
}

// Default returns an empty policy: nothing excluded, no priorities,
// no regional factors, no discounts.
func Default() Policy {
	return Policy{}
}

// Load reads a policy file in YAML format
func Load(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, errors.Config("failed to read policy file", err)
	}
	return Parse(data)
}

// Parse decodes a policy from YAML bytes
func Parse(data []byte) (Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Policy{}, errors.Config("failed to parse policy", err)
	}
	return p, nil
}

// Excludes reports whether the provider is in the policy exclusion set
func (p Policy) Excludes(provider types.Provider) bool {
	for _, e := range p.ExcludeFromCheapest {
		if e == provider {
			return true
		}
	}
	return false
}

// PriorityRank returns the tie-break rank of a provider. Providers absent
// from PriorityOrder rank after every listed one.
func (p Policy) PriorityRank(provider types.Provider) int {
	for i, e := range p.PriorityOrder {
		if e == provider {
			return i
		}
	}
	return len(p.PriorityOrder)
}

// RegionFactor returns the cost multiplier for a resolved region.
// Only an exact key match applies; everything else is 1.0.
func (p Policy) RegionFactor(region types.RegionID) decimal.Decimal {
	if f, ok := p.RegionalCostFactors[string(region)]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}

// OverrideSources carries environment-style discount overrides as a
// structured value so precedence logic never touches the process
// environment directly.
type OverrideSources struct {
	// EnvDiscounts holds raw override values keyed by provider.
	// Values are unparsed strings; malformed entries normalize to 0.
	EnvDiscounts map[types.Provider]string
}

// EnvDiscountPrefix is the environment variable prefix recognized by
// OverridesFromEnviron, e.g. CLOUDFORGE_DISCOUNT_AWS=15.
const EnvDiscountPrefix = "CLOUDFORGE_DISCOUNT_"

// OverridesFromEnviron builds override sources from an environment list
// in the os.Environ "KEY=value" form.
func OverridesFromEnviron(environ []string) OverrideSources {
	src := OverrideSources{EnvDiscounts: make(map[types.Provider]string)}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvDiscountPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, EnvDiscountPrefix))
		provider := types.Provider(strings.ReplaceAll(name, "_", "-"))
		src.EnvDiscounts[provider] = value
	}
	return src
}
