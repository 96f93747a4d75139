// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Provider represents a cloud provider backend
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderAzure   Provider = "azure"
	ProviderGCP     Provider = "gcp"
	ProviderHetzner Provider = "hetzner"
	ProviderUnknown Provider = "unknown"
)

// Virtual providers select a concrete backend by estimated cost.
const (
	// ProviderCheapest selects the backend with the lowest final hourly price.
	ProviderCheapest Provider = "cheapest"

	// ProviderCheapestGPU selects by GPU SKU price only, ignoring CPU/memory cost.
	ProviderCheapestGPU Provider = "cheapest-gpu"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is a known concrete provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP, ProviderHetzner:
		return true
	default:
		return false
	}
}

// IsVirtual reports whether the provider is a cost-selection pseudo-provider
func (p Provider) IsVirtual() bool {
	return p == ProviderCheapest || p == ProviderCheapestGPU
}

// AllProviders returns every concrete provider in lexical order
func AllProviders() []Provider {
	return []Provider{ProviderAWS, ProviderAzure, ProviderGCP, ProviderHetzner}
}

// RegionID is a provider-specific region identifier (e.g. "us-east-1", "fsn1")
type RegionID string

// String returns the string representation
func (r RegionID) String() string {
	return string(r)
}

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}
