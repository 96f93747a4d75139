// Package selector implements the cheapest / cheapest-gpu decision:
// filter candidates by policy and request, resolve and quote each
// survivor, and fold the outcomes into a deterministically ranked
// selection.
//
// The selector holds no persistent state. Each call is a pure function
// of (request, enabled providers, policy snapshot); re-running with
// identical inputs is bit-for-bit reproducible.
package selector

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"cloudforge/core/policy"
	"cloudforge/core/pricing"
	"cloudforge/core/resolve"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// Selector ranks providers by final hourly price
type Selector struct {
	resolver *resolve.Resolver
}

// New creates a selector over a resolver
func New(resolver *resolve.Resolver) *Selector {
	return &Selector{resolver: resolver}
}

// evaluation is the per-provider variant outcome: either a descriptor
// with its quote, or a failure reason. Failures drive candidate
// exclusion, never abort the whole selection.
type evaluation struct {
	provider   types.Provider
	descriptor types.ResolvedDescriptor
	quote      types.CostQuote
	err        error
}

// Select runs the cheapest / cheapest-gpu algorithm for a request whose
// provider is one of the virtual providers. Candidates are evaluated
// concurrently; partial work is discarded when ctx is cancelled.
func (s *Selector) Select(ctx context.Context, req types.ResourceRequest, enabled []types.Provider, pol policy.Policy, src policy.OverrideSources) (*types.SelectionResult, error) {
	mode := pricing.ModeFull
	if req.Provider == types.ProviderCheapestGPU {
		mode = pricing.ModeGPUOnly
		if !req.WantsGPU() {
			// cheapest-gpu without an explicit requirement means any single GPU
			req.GPU = &types.GPURequirement{Type: types.GPUTypeAny, Count: 1}
		}
	}

	candidates, excluded := s.filter(req, enabled, pol)

	evals := make([]evaluation, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			evals[i] = s.evaluate(req, p, pol, src, mode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Internal("selection cancelled", err)
	}

	result := fold(evals, excluded, pol)
	if len(result.Ranked) == 0 {
		err := errors.NoEligibleProvider("no provider can satisfy the request")
		err = err.WithContext("exclusions", result.Excluded)
		return nil, err
	}
	return result, nil
}

// filter builds the candidate set: enabled minus policy exclusions minus
// request-level exclusions, keeping a reason for every drop
func (s *Selector) filter(req types.ResourceRequest, enabled []types.Provider, pol policy.Policy) ([]types.Provider, []types.Exclusion) {
	requestExcluded := make(map[types.Provider]bool, len(req.ExcludeProviders))
	for _, p := range req.ExcludeProviders {
		requestExcluded[p] = true
	}

	sorted := make([]types.Provider, len(enabled))
	copy(sorted, enabled)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var candidates []types.Provider
	var excluded []types.Exclusion
	for _, p := range sorted {
		switch {
		case pol.Excludes(p):
			excluded = append(excluded, types.Exclusion{
				Provider: p, Stage: types.ExcludedByPolicy,
				Reason: "listed in policy exclude_from_cheapest",
			})
		case requestExcluded[p]:
			excluded = append(excluded, types.Exclusion{
				Provider: p, Stage: types.ExcludedByRequest,
				Reason: "listed in request exclude_providers",
			})
		default:
			candidates = append(candidates, p)
		}
	}
	return candidates, excluded
}

// evaluate resolves and quotes one candidate; the outcome is local to
// the calling goroutine
func (s *Selector) evaluate(req types.ResourceRequest, p types.Provider, pol policy.Policy, src policy.OverrideSources, mode pricing.Mode) evaluation {
	desc, err := s.resolver.Resolve(req, p)
	if err != nil {
		return evaluation{provider: p, err: err}
	}
	quote := pricing.Quote(desc, pol, src, req.Overrides.DiscountPercent, mode)
	return evaluation{provider: p, descriptor: desc, quote: quote}
}

// fold turns per-provider outcomes into the ranked result. Sort order:
// final hourly price ascending, then policy priority order (earlier
// entry wins), then provider name lexical order.
func fold(evals []evaluation, excluded []types.Exclusion, pol policy.Policy) *types.SelectionResult {
	result := &types.SelectionResult{Excluded: excluded}

	descriptors := make(map[types.Provider]types.ResolvedDescriptor)
	for _, ev := range evals {
		if ev.err != nil {
			result.Excluded = append(result.Excluded, types.Exclusion{
				Provider: ev.provider,
				Stage:    types.ExcludedByResolution,
				Reason:   ev.err.Error(),
			})
			continue
		}
		descriptors[ev.provider] = ev.descriptor
		result.Ranked = append(result.Ranked, ev.quote)
		result.Warnings = append(result.Warnings, ev.quote.Warnings...)
	}

	sort.SliceStable(result.Ranked, func(i, j int) bool {
		a, b := result.Ranked[i], result.Ranked[j]
		if c := a.FinalHourly.Cmp(b.FinalHourly); c != 0 {
			return c < 0
		}
		ra, rb := pol.PriorityRank(a.Provider), pol.PriorityRank(b.Provider)
		if ra != rb {
			return ra < rb
		}
		return a.Provider < b.Provider
	})

	sort.Slice(result.Excluded, func(i, j int) bool {
		return result.Excluded[i].Provider < result.Excluded[j].Provider
	})

	if len(result.Ranked) > 0 {
		result.Selected = result.Ranked[0].Provider
		result.Descriptor = descriptors[result.Selected]
	}
	return result
}
