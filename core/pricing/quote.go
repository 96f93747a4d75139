// Package pricing implements the cost model: a comparable final hourly
// price for a resolved descriptor on one provider.
//
// Quote never fails. A provider with no applicable price is excluded
// upstream by the selector, never here.
package pricing

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudforge/core/policy"
	"cloudforge/core/types"
	"cloudforge/internal/logging"
)

// Mode selects which component of the descriptor is priced
type Mode int

const (
	// ModeFull prices the resolved instance type
	ModeFull Mode = iota

	// ModeGPUOnly prices the resolved GPU SKU alone, ignoring CPU/memory
	// cost. This is the defining behavior of cheapest-gpu.
	ModeGPUOnly
)

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// Quote computes the policy-adjusted final hourly price for one
// resolved descriptor:
//
//	final = base * regionFactor * (1 - discount/100)
//
// The regional multiplier applies only on an exact region match. The
// discount walks the override precedence in policy.ResolveDiscount;
// malformed overrides normalize to 0 with a recorded warning.
func Quote(desc types.ResolvedDescriptor, pol policy.Policy, src policy.OverrideSources, explicit *decimal.Decimal, mode Mode) types.CostQuote {
	base := desc.HourlyCost
	priced := desc.InstanceType
	if mode == ModeGPUOnly && desc.GPU != nil {
		base = desc.GPU.HourlyCost
		priced = desc.GPU.SKU
	}

	factor := pol.RegionFactor(desc.RegionID)
	discount := pol.ResolveDiscount(desc.Provider, explicit, src)

	final := base.Mul(factor).Mul(one.Sub(discount.Percent.Div(hundred)))
	if final.IsNegative() {
		final = decimal.Zero
	}

	for _, w := range discount.Warnings {
		logging.Warn("discount normalized", zap.String("provider", string(desc.Provider)), zap.String("detail", w))
	}

	return types.CostQuote{
		Provider:        desc.Provider,
		InstanceType:    priced,
		BaseHourly:      base,
		RegionFactor:    factor,
		DiscountPercent: discount.Percent,
		DiscountSource:  discount.Source,
		FinalHourly:     final,
		Currency:        desc.Currency,
		GPUOnly:         mode == ModeGPUOnly,
		Warnings:        discount.Warnings,
	}
}
