// Package policy - Ordered discount resolution
package policy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cloudforge/core/types"
)

var (
	hundred = decimal.NewFromInt(100)
)

// ResolvedDiscount is the outcome of the override-precedence walk
type ResolvedDiscount struct {
	// Percent is the effective discount, always in [0,100]
	Percent decimal.Decimal

	// Source identifies the override level that supplied the value
	Source types.DiscountSource

	// Warnings records malformed values that were normalized to zero
	Warnings []string
}

// ResolveDiscount walks the override precedence for one provider and
// returns the effective discount. Precedence, highest wins:
//
//  1. explicit per-request override
//  2. environment-style override keyed by provider
//  3. organization-policy discount
//  4. zero
//
// A value outside [0,100] or a non-numeric env override never fails the
// quote; it normalizes to 0 with a recorded warning.
func (p Policy) ResolveDiscount(provider types.Provider, explicit *decimal.Decimal, src OverrideSources) ResolvedDiscount {
	if explicit != nil {
		if pct, ok := clampPercent(*explicit); ok {
			return ResolvedDiscount{Percent: pct, Source: types.DiscountExplicit}
		}
		return ResolvedDiscount{
			Percent: decimal.Zero,
			Source:  types.DiscountNone,
			Warnings: []string{fmt.Sprintf(
				"explicit discount %s for %s outside [0,100], using 0", explicit.String(), provider)},
		}
	}

	if raw, ok := src.EnvDiscounts[provider]; ok {
		pct, err := decimal.NewFromString(raw)
		if err != nil {
			return ResolvedDiscount{
				Percent: decimal.Zero,
				Source:  types.DiscountNone,
				Warnings: []string{fmt.Sprintf(
					"env discount %q for %s is not numeric, using 0", raw, provider)},
			}
		}
		if pct, ok := clampPercent(pct); ok {
			return ResolvedDiscount{Percent: pct, Source: types.DiscountEnv}
		}
		return ResolvedDiscount{
			Percent: decimal.Zero,
			Source:  types.DiscountNone,
			Warnings: []string{fmt.Sprintf(
				"env discount %s for %s outside [0,100], using 0", pct.String(), provider)},
		}
	}

	if pct, ok := p.ProviderDiscounts[provider]; ok {
		if pct, ok := clampPercent(pct); ok {
			return ResolvedDiscount{Percent: pct, Source: types.DiscountPolicy}
		}
		return ResolvedDiscount{
			Percent: decimal.Zero,
			Source:  types.DiscountNone,
			Warnings: []string{fmt.Sprintf(
				"policy discount %s for %s outside [0,100], using 0", pct.String(), provider)},
		}
	}

	return ResolvedDiscount{Percent: decimal.Zero, Source: types.DiscountNone}
}

// clampPercent validates a discount lies in [0,100]
func clampPercent(pct decimal.Decimal) (decimal.Decimal, bool) {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero, false
	}
	return pct, true
}
