// Package engine orchestrates resolution, quoting, and selection for a
// whole manifest. The engine performs no cost logic of its own; it wires
// the resolver, cost model, and selector together and hands resolved
// plans to the emission boundary.
package engine

import (
	"context"

	"go.uber.org/zap"

	"cloudforge/core/catalog"
	"cloudforge/core/policy"
	"cloudforge/core/pricing"
	"cloudforge/core/resolve"
	"cloudforge/core/selector"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
	"cloudforge/internal/logging"
)

// Engine evaluates resource requests against one catalog snapshot and
// policy value
type Engine struct {
	resolver *resolve.Resolver
	selector *selector.Selector
	enabled  []types.Provider
	policy   policy.Policy
	src      policy.OverrideSources
}

// New creates an engine. enabled lists the providers available for
// cheapest selection; pol and src are read-only for the engine's lifetime.
func New(resolver *resolve.Resolver, enabled []types.Provider, pol policy.Policy, src policy.OverrideSources) *Engine {
	return &Engine{
		resolver: resolver,
		selector: selector.New(resolver),
		enabled:  enabled,
		policy:   pol,
		src:      src,
	}
}

// Snapshot returns the catalog snapshot the engine evaluates against
func (e *Engine) Snapshot() *catalog.Snapshot {
	return e.resolver.Snapshot()
}

// PlannedResource is one fully evaluated manifest resource
type PlannedResource struct {
	// Request is the originating generic request
	Request types.ResourceRequest `json:"request"`

	// Descriptor is the winning resolution
	Descriptor types.ResolvedDescriptor `json:"descriptor"`

	// Quote is the final price for the chosen provider
	Quote types.CostQuote `json:"quote"`

	// Selection is present for cheapest/cheapest-gpu requests only
	Selection *types.SelectionResult `json:"selection,omitempty"`
}

// Plan is the evaluated manifest, ready for emission
type Plan struct {
	// Name is the manifest name
	Name string `json:"name"`

	// Resources is one entry per manifest resource, in manifest order
	Resources []PlannedResource `json:"resources"`
}

// Plan evaluates every request. Virtual-provider requests run the
// selection algorithm; concrete-provider requests resolve directly and
// any failure propagates to the caller.
func (e *Engine) Plan(ctx context.Context, name string, requests []types.ResourceRequest) (*Plan, error) {
	plan := &Plan{Name: name}
	for _, req := range requests {
		planned, err := e.evaluate(ctx, req)
		if err != nil {
			return nil, err
		}
		plan.Resources = append(plan.Resources, planned)
	}
	return plan, nil
}

// Evaluate runs a single request
func (e *Engine) Evaluate(ctx context.Context, req types.ResourceRequest) (PlannedResource, error) {
	return e.evaluate(ctx, req)
}

func (e *Engine) evaluate(ctx context.Context, req types.ResourceRequest) (PlannedResource, error) {
	if req.Provider.IsVirtual() {
		result, err := e.selector.Select(ctx, req, e.enabled, e.policy, e.src)
		if err != nil {
			return PlannedResource{}, err
		}
		logging.Info("provider selected",
			zap.String("resource", req.Name),
			zap.String("provider", string(result.Selected)),
			zap.String("final_hourly", result.Ranked[0].FinalHourly.String()),
			zap.Int("candidates", len(result.Ranked)))
		return PlannedResource{
			Request:    req,
			Descriptor: result.Descriptor,
			Quote:      result.Ranked[0],
			Selection:  result,
		}, nil
	}

	if !req.Provider.IsValid() {
		return PlannedResource{}, errors.Input("unknown provider: " + string(req.Provider))
	}

	desc, err := e.resolver.Resolve(req, req.Provider)
	if err != nil {
		// single-provider failures propagate directly to the caller
		return PlannedResource{}, err
	}
	quote := pricing.Quote(desc, e.policy, e.src, req.Overrides.DiscountPercent, pricing.ModeFull)
	return PlannedResource{Request: req, Descriptor: desc, Quote: quote}, nil
}
