// Package types - Cost comparison types
package types

import "github.com/shopspring/decimal"

// DiscountSource identifies where an applied discount came from.
// Precedence is total-ordered: explicit > env > policy > none.
type DiscountSource string

const (
	// DiscountExplicit is a per-request override
	DiscountExplicit DiscountSource = "explicit"

	// DiscountEnv is an environment-style override keyed by provider
	DiscountEnv DiscountSource = "env"

	// DiscountPolicy is an organization-policy discount
	DiscountPolicy DiscountSource = "policy"

	// DiscountNone means no discount applied
	DiscountNone DiscountSource = "none"
)

// CostQuote is a computed, policy-adjusted hourly price for one provider.
// FinalHourly = BaseHourly * RegionFactor * (1 - DiscountPercent/100).
type CostQuote struct {
	// Provider is the quoted backend
	Provider Provider `json:"provider"`

	// InstanceType is the priced identifier (instance type, or GPU SKU in GPU-only mode)
	InstanceType string `json:"instance_type"`

	// BaseHourly is the undiscounted price per hour
	BaseHourly decimal.Decimal `json:"base_hourly"`

	// RegionFactor is the applied regional cost multiplier (1.0 when none matched)
	RegionFactor decimal.Decimal `json:"region_factor"`

	// DiscountPercent is the applied discount in [0,100]
	DiscountPercent decimal.Decimal `json:"discount_percent"`

	// DiscountSource identifies which override level supplied the discount
	DiscountSource DiscountSource `json:"discount_source"`

	// FinalHourly is the comparable final price per hour
	FinalHourly decimal.Decimal `json:"final_hourly"`

	// Currency is the price currency
	Currency Currency `json:"currency"`

	// GPUOnly marks a quote computed in GPU-SKU-only pricing mode
	GPUOnly bool `json:"gpu_only,omitempty"`

	// Warnings records non-fatal normalizations (e.g. malformed discount -> 0)
	Warnings []string `json:"warnings,omitempty"`
}

// ExclusionStage identifies where a candidate was dropped
type ExclusionStage string

const (
	// ExcludedByPolicy means the provider is in the policy exclusion set
	ExcludedByPolicy ExclusionStage = "policy"

	// ExcludedByRequest means the provider is in the request exclusion list
	ExcludedByRequest ExclusionStage = "request"

	// ExcludedByResolution means resolution failed for the provider
	ExcludedByResolution ExclusionStage = "resolution"
)

// Exclusion records why a provider does not appear in the ranked output.
// The presentation layer displays one of these per dropped candidate.
type Exclusion struct {
	Provider Provider       `json:"provider"`
	Stage    ExclusionStage `json:"stage"`
	Reason   string         `json:"reason"`
}

// SelectionResult is the outcome of a cheapest/cheapest-gpu selection.
// Ranked is ordered ascending by final price, ties broken by policy
// priority order then provider name. Immutable after creation.
type SelectionResult struct {
	// Selected is the winning provider (head of Ranked)
	Selected Provider `json:"selected"`

	// Descriptor is the full resolution for the selected provider
	Descriptor ResolvedDescriptor `json:"descriptor"`

	// Ranked is the complete ordered quote list, required output so the
	// boundary can display comparative reasoning
	Ranked []CostQuote `json:"ranked"`

	// Excluded lists every dropped candidate with its reason
	Excluded []Exclusion `json:"excluded,omitempty"`

	// Warnings aggregates non-fatal warnings from quoting
	Warnings []string `json:"warnings,omitempty"`
}
