// Package resolve turns one (request, provider) pair into a fully
// resolved provider-specific descriptor, or a typed failure reason.
//
// Resolution for one provider never reads or writes state shared with
// another provider; calls are independent and safe to run in parallel.
package resolve

import (
	"cloudforge/core/catalog"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

// Resolver resolves generic requests against a sealed catalog snapshot
type Resolver struct {
	snapshot *catalog.Snapshot
}

// New creates a resolver over a catalog snapshot
func New(snapshot *catalog.Snapshot) *Resolver {
	return &Resolver{snapshot: snapshot}
}

// Snapshot returns the underlying catalog snapshot
func (r *Resolver) Snapshot() *catalog.Snapshot {
	return r.snapshot
}

// Resolve produces a ResolvedDescriptor for one candidate provider.
// Failures carry one of the resolution error types: NO_FIT, NO_GPU,
// UNMAPPED_IMAGE, UNMAPPED_LOCATION, or NOT_FOUND for an unknown
// flavor/provider. A request setting both a flavor and explicit
// cores/memory is rejected as INPUT_ERROR regardless of how it arrived.
func (r *Resolver) Resolve(req types.ResourceRequest, p types.Provider) (types.ResolvedDescriptor, error) {
	flavor, err := r.resolveSize(req, p)
	if err != nil {
		return types.ResolvedDescriptor{}, err
	}

	desc := types.ResolvedDescriptor{
		Provider:     p,
		InstanceType: flavor.InstanceType,
		VCPUs:        flavor.VCPUs,
		MemoryGB:     flavor.MemoryGB,
		HourlyCost:   flavor.HourlyCost,
		Currency:     r.snapshot.Currency(p),
	}

	if req.WantsGPU() {
		gpu, err := r.snapshot.ResolveGPU(req.GPU.Type, req.GPU.Count, p)
		if err != nil {
			if errors.IsType(err, errors.TypeNotFound) {
				// unknown GPU type is still a GPU failure for this provider
				err = errors.NoGPU(string(p), req.GPU.Type, req.GPU.Count)
			}
			return types.ResolvedDescriptor{}, err
		}
		desc.GPU = &types.ResolvedGPU{
			SKU:        gpu.SKU,
			Count:      gpu.Count,
			HourlyCost: gpu.HourlyCost,
		}
	}

	if req.Overrides.ImageID != "" {
		desc.ImageID = req.Overrides.ImageID
	} else {
		image, err := r.snapshot.ResolveImage(req.Image, p)
		if err != nil {
			return types.ResolvedDescriptor{}, errors.Newf(errors.TypeUnmappedImage,
				"image %q has no mapping for %s", req.Image, p).WithContext("provider", string(p))
		}
		desc.ImageID = image.ID
	}

	if req.Overrides.RegionID != "" {
		desc.RegionID = types.RegionID(req.Overrides.RegionID)
	} else {
		location, err := r.snapshot.ResolveLocation(req.Location, p)
		if err != nil {
			return types.ResolvedDescriptor{}, errors.Newf(errors.TypeUnmappedLocation,
				"location %q has no mapping for %s", req.Location, p).WithContext("provider", string(p))
		}
		desc.RegionID = types.RegionID(location.ID)
	}

	return desc, nil
}

// resolveSize picks the instance type: explicit override, named flavor,
// or nearest-fit over explicit cores/memory
func (r *Resolver) resolveSize(req types.ResourceRequest, p types.Provider) (catalog.FlavorEntry, error) {
	if req.Flavor != "" && req.HasExplicitSize() {
		return catalog.FlavorEntry{}, errors.Input("request sets both flavor and explicit cores/memory")
	}
	if req.Overrides.InstanceType != "" {
		return r.snapshot.FindInstanceType(req.Overrides.InstanceType, p)
	}
	if req.Flavor != "" {
		return r.snapshot.ResolveFlavor(req.Flavor, p)
	}
	if req.HasExplicitSize() {
		return r.snapshot.NearestFit(req.Cores, req.MemoryGB, p)
	}
	return catalog.FlavorEntry{}, errors.Input("request has neither flavor nor explicit cores/memory")
}
