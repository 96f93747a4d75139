package resolve

import (
	"testing"

	"github.com/shopspring/decimal"

	"cloudforge/core/catalog"
	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testResolver() *Resolver {
	b := catalog.NewBuilder()
	b.AddFlavor(types.ProviderAWS, "medium", catalog.FlavorEntry{InstanceType: "t3.medium", VCPUs: 2, MemoryGB: 4, HourlyCost: dec("0.0416")})
	b.AddFlavor(types.ProviderAWS, "large", catalog.FlavorEntry{InstanceType: "m5.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.096")})
	b.AddImage(types.ProviderAWS, "ubuntu-22.04", catalog.ImageEntry{ID: "ami-123"})
	b.AddLocation(types.ProviderAWS, "us-east", catalog.LocationEntry{ID: "us-east-1"})
	b.AddGPU(types.ProviderAWS, "t4", catalog.GPUEntry{SKU: "g4dn.xlarge", Count: 1, HourlyCost: dec("0.526")})
	b.AddFlavor(types.ProviderHetzner, "medium", catalog.FlavorEntry{InstanceType: "cpx31", VCPUs: 4, MemoryGB: 8, HourlyCost: dec("0.0252")})
	b.AddImage(types.ProviderHetzner, "ubuntu-22.04", catalog.ImageEntry{ID: "ubuntu-22.04"})
	b.AddLocation(types.ProviderHetzner, "us-east", catalog.LocationEntry{ID: "ash"})
	return New(b.Build())
}

func baseRequest() types.ResourceRequest {
	return types.ResourceRequest{
		Name:     "web",
		Flavor:   "medium",
		Image:    "ubuntu-22.04",
		Location: "us-east",
		Provider: types.ProviderAWS,
	}
}

func TestResolveFlavorRequest(t *testing.T) {
	r := testResolver()

	desc, err := r.Resolve(baseRequest(), types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if desc.Provider != types.ProviderAWS {
		t.Errorf("provider = %s", desc.Provider)
	}
	if desc.InstanceType != "t3.medium" {
		t.Errorf("instance type = %s, want t3.medium", desc.InstanceType)
	}
	if desc.ImageID != "ami-123" {
		t.Errorf("image = %s, want ami-123", desc.ImageID)
	}
	if desc.RegionID != "us-east-1" {
		t.Errorf("region = %s, want us-east-1", desc.RegionID)
	}
	if !desc.HourlyCost.Equal(dec("0.0416")) {
		t.Errorf("hourly cost = %s, want 0.0416", desc.HourlyCost)
	}
	if desc.GPU != nil {
		t.Error("no GPU was requested")
	}
}

func TestResolveExplicitSize(t *testing.T) {
	r := testResolver()

	req := baseRequest()
	req.Flavor = ""
	req.Cores = 2
	req.MemoryGB = 6

	desc, err := r.Resolve(req, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2/6 does not fit t3.medium (2/4); nearest fit is m5.large (2/8)
	if desc.InstanceType != "m5.large" {
		t.Errorf("instance type = %s, want m5.large", desc.InstanceType)
	}
}

func TestResolveNoSizeGiven(t *testing.T) {
	r := testResolver()

	req := baseRequest()
	req.Flavor = ""

	_, err := r.Resolve(req, types.ProviderAWS)
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT error, got %v", err)
	}
}

func TestResolveGPURequest(t *testing.T) {
	r := testResolver()

	req := baseRequest()
	req.GPU = &types.GPURequirement{Type: "t4", Count: 1}

	desc, err := r.Resolve(req, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.GPU == nil || desc.GPU.SKU != "g4dn.xlarge" {
		t.Errorf("gpu = %+v, want g4dn.xlarge", desc.GPU)
	}
}

func TestResolveFailureKinds(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name     string
		mutate   func(*types.ResourceRequest)
		provider types.Provider
		wantType errors.Type
	}{
		{
			"unknown flavor",
			func(req *types.ResourceRequest) { req.Flavor = "mega" },
			types.ProviderAWS,
			errors.TypeNotFound,
		},
		{
			"flavor with explicit size",
			func(req *types.ResourceRequest) { req.Cores = 64; req.MemoryGB = 512 },
			types.ProviderAWS,
			errors.TypeInput,
		},
		{
			"capacity exceeds every flavor",
			func(req *types.ResourceRequest) { req.Flavor = ""; req.Cores = 64; req.MemoryGB = 512 },
			types.ProviderAWS,
			errors.TypeNoFit,
		},
		{
			"provider without gpus",
			func(req *types.ResourceRequest) { req.GPU = &types.GPURequirement{Type: types.GPUTypeAny, Count: 1} },
			types.ProviderHetzner,
			errors.TypeNoGPU,
		},
		{
			"unknown gpu type maps to gpu failure",
			func(req *types.ResourceRequest) { req.GPU = &types.GPURequirement{Type: "h100", Count: 1} },
			types.ProviderAWS,
			errors.TypeNoGPU,
		},
		{
			"unmapped image",
			func(req *types.ResourceRequest) { req.Image = "windows-11" },
			types.ProviderAWS,
			errors.TypeUnmappedImage,
		},
		{
			"unmapped location",
			func(req *types.ResourceRequest) { req.Location = "moon-base" },
			types.ProviderAWS,
			errors.TypeUnmappedLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)
			_, err := r.Resolve(req, tt.provider)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("error type = %s, want %s", errors.TypeOf(err), tt.wantType)
			}
		})
	}
}

func TestResolveOverrides(t *testing.T) {
	r := testResolver()

	req := baseRequest()
	req.Image = "windows-11"   // unmapped, but overridden below
	req.Location = "moon-base" // unmapped, but overridden below
	req.Overrides = types.Overrides{
		InstanceType: "m5.large",
		ImageID:      "ami-custom",
		RegionID:     "us-west-2",
	}

	desc, err := r.Resolve(req, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.InstanceType != "m5.large" {
		t.Errorf("instance type = %s, want overridden m5.large", desc.InstanceType)
	}
	// the override must still carry the table price
	if !desc.HourlyCost.Equal(dec("0.096")) {
		t.Errorf("hourly cost = %s, want 0.096", desc.HourlyCost)
	}
	if desc.ImageID != "ami-custom" {
		t.Errorf("image = %s, want ami-custom", desc.ImageID)
	}
	if desc.RegionID != "us-west-2" {
		t.Errorf("region = %s, want us-west-2", desc.RegionID)
	}
}

func TestResolveInstanceTypeOverrideUnknown(t *testing.T) {
	r := testResolver()

	req := baseRequest()
	req.Overrides.InstanceType = "x1e.32xlarge"

	_, err := r.Resolve(req, types.ProviderAWS)
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for unpriced override, got %v", err)
	}
}
