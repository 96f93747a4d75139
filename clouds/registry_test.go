package clouds

import (
	"testing"

	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

func TestBuiltinSnapshotCoversAllProviders(t *testing.T) {
	snap := BuiltinSnapshot()

	for _, p := range types.AllProviders() {
		if !snap.HasProvider(p) {
			t.Errorf("builtin snapshot missing %s", p)
		}
	}
}

func TestBuiltinFlavorsResolveEverywhere(t *testing.T) {
	snap := BuiltinSnapshot()

	flavors := []string{"nano", "micro", "small", "medium", "large", "xlarge", "2xlarge"}
	for _, p := range types.AllProviders() {
		for _, flavor := range flavors {
			entry, err := snap.ResolveFlavor(flavor, p)
			if err != nil {
				t.Errorf("%s/%s: %v", p, flavor, err)
				continue
			}
			if entry.InstanceType == "" || entry.VCPUs <= 0 || entry.MemoryGB <= 0 {
				t.Errorf("%s/%s has incomplete entry: %+v", p, flavor, entry)
			}
			if !entry.HourlyCost.IsPositive() {
				t.Errorf("%s/%s has no price", p, flavor)
			}
		}
	}
}

func TestBuiltinImagesAndLocationsResolveEverywhere(t *testing.T) {
	snap := BuiltinSnapshot()

	for _, p := range types.AllProviders() {
		for _, image := range []string{"ubuntu-22.04", "ubuntu-24.04", "debian-12"} {
			if _, err := snap.ResolveImage(image, p); err != nil {
				t.Errorf("%s/%s: %v", p, image, err)
			}
		}
		for _, loc := range []string{"us-east", "us-west", "eu-central", "eu-west", "ap-southeast"} {
			if _, err := snap.ResolveLocation(loc, p); err != nil {
				t.Errorf("%s/%s: %v", p, loc, err)
			}
		}
	}
}

func TestHetznerHasNoGPUs(t *testing.T) {
	snap := BuiltinSnapshot()

	_, err := snap.ResolveGPU(types.GPUTypeAny, 1, types.ProviderHetzner)
	if !errors.IsType(err, errors.TypeNoGPU) {
		t.Errorf("expected NO_GPU for hetzner, got %v", err)
	}
}

func TestGPUProvidersOfferT4(t *testing.T) {
	snap := BuiltinSnapshot()

	for _, p := range []types.Provider{types.ProviderAWS, types.ProviderAzure, types.ProviderGCP} {
		entry, err := snap.ResolveGPU("t4", 1, p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if entry.SKU == "" || !entry.HourlyCost.IsPositive() {
			t.Errorf("%s t4 entry incomplete: %+v", p, entry)
		}
	}
}
