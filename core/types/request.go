// Package types - Generic resource request types
package types

import "github.com/shopspring/decimal"

// GPURequirement describes a requested GPU attachment.
// Type may be a concrete generic GPU type (e.g. "t4", "a100") or "any",
// which resolves to the provider's cheapest SKU satisfying Count.
type GPURequirement struct {
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count" yaml:"count"`
}

// GPUTypeAny matches the cheapest available GPU SKU for the requested count
const GPUTypeAny = "any"

// Overrides carries explicit per-field overrides on a request.
// A set field bypasses the corresponding catalog lookup.
type Overrides struct {
	// InstanceType forces a provider instance type. It must still carry a
	// price in the provider's flavor table.
	InstanceType string `json:"instance_type,omitempty" yaml:"instance_type,omitempty"`

	// ImageID bypasses image name resolution.
	ImageID string `json:"image_id,omitempty" yaml:"image_id,omitempty"`

	// RegionID bypasses location resolution.
	RegionID string `json:"region_id,omitempty" yaml:"region_id,omitempty"`

	// DiscountPercent is the highest-precedence discount source.
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty" yaml:"discount_percent,omitempty"`
}

// ResourceRequest is a provider-agnostic description of desired compute.
// Invariant: Flavor XOR explicit {Cores, MemoryGB} must be set, never both.
type ResourceRequest struct {
	// Name identifies the resource in the manifest
	Name string `json:"name" yaml:"name"`

	// Flavor is a named size class (e.g. "medium")
	Flavor string `json:"flavor,omitempty" yaml:"flavor,omitempty"`

	// Cores is an explicit vCPU requirement (used with MemoryGB)
	Cores int `json:"cores,omitempty" yaml:"cores,omitempty"`

	// MemoryGB is an explicit memory requirement in GB
	MemoryGB float64 `json:"memory_gb,omitempty" yaml:"memory_gb,omitempty"`

	// Image is the generic image name (e.g. "ubuntu-22.04")
	Image string `json:"image" yaml:"image"`

	// Location is the generic location name (e.g. "eu-central")
	Location string `json:"location" yaml:"location"`

	// Provider is a concrete provider, "cheapest", or "cheapest-gpu"
	Provider Provider `json:"provider" yaml:"provider"`

	// GPU is an optional GPU requirement
	GPU *GPURequirement `json:"gpu,omitempty" yaml:"gpu,omitempty"`

	// ExcludeProviders removes candidates from cheapest selection
	ExcludeProviders []Provider `json:"exclude_providers,omitempty" yaml:"exclude_providers,omitempty"`

	// Overrides are explicit per-field overrides
	Overrides Overrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// HasExplicitSize reports whether the request uses explicit cores/memory
// instead of a named flavor
func (r ResourceRequest) HasExplicitSize() bool {
	return r.Cores > 0 || r.MemoryGB > 0
}

// WantsGPU reports whether the request carries a GPU requirement
func (r ResourceRequest) WantsGPU() bool {
	return r.GPU != nil && r.GPU.Count > 0
}

// ResolvedGPU is a provider-specific GPU resolution
type ResolvedGPU struct {
	// SKU is the provider GPU SKU identifier
	SKU string `json:"sku"`

	// Count is the number of GPUs the SKU provides
	Count int `json:"count"`

	// HourlyCost is the SKU price per hour
	HourlyCost decimal.Decimal `json:"hourly_cost"`
}

// ResolvedDescriptor is the output of resolving one (request, provider) pair.
// Every field is non-empty when resolution succeeded; a failed resolution
// produces no descriptor, only a typed failure reason.
type ResolvedDescriptor struct {
	// Provider is the backend this descriptor was resolved against
	Provider Provider `json:"provider"`

	// InstanceType is the provider instance type identifier
	InstanceType string `json:"instance_type"`

	// ImageID is the provider image identifier
	ImageID string `json:"image_id"`

	// RegionID is the provider region identifier
	RegionID RegionID `json:"region_id"`

	// GPU is the resolved GPU SKU, if the request required one
	GPU *ResolvedGPU `json:"gpu,omitempty"`

	// VCPUs is the instance type's vCPU count
	VCPUs int `json:"vcpus"`

	// MemoryGB is the instance type's memory in GB
	MemoryGB float64 `json:"memory_gb"`

	// HourlyCost is the instance type's base price per hour
	HourlyCost decimal.Decimal `json:"hourly_cost"`

	// Currency is the price currency
	Currency Currency `json:"currency"`
}
