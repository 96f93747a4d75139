package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"cloudforge/core/types"
	"cloudforge/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testSnapshot() *Snapshot {
	b := NewBuilder()
	b.AddFlavor(types.ProviderAWS, "medium", FlavorEntry{InstanceType: "t3.medium", VCPUs: 2, MemoryGB: 4, HourlyCost: dec("0.0416")})
	b.AddFlavor(types.ProviderAWS, "large", FlavorEntry{InstanceType: "m5.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.096")})
	b.AddFlavor(types.ProviderAWS, "xlarge", FlavorEntry{InstanceType: "m5.xlarge", VCPUs: 4, MemoryGB: 16, HourlyCost: dec("0.192")})
	b.AddImage(types.ProviderAWS, "ubuntu-22.04", ImageEntry{ID: "ami-123"})
	b.AddLocation(types.ProviderAWS, "us-east", LocationEntry{ID: "us-east-1"})
	b.AddGPU(types.ProviderAWS, "t4", GPUEntry{SKU: "g4dn.xlarge", Count: 1, HourlyCost: dec("0.526")})
	b.AddGPU(types.ProviderAWS, "a100", GPUEntry{SKU: "p4d.24xlarge", Count: 8, HourlyCost: dec("32.77")})
	return b.Build()
}

func TestResolveFlavor(t *testing.T) {
	snap := testSnapshot()

	entry, err := snap.ResolveFlavor("medium", types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.InstanceType != "t3.medium" {
		t.Errorf("expected t3.medium, got %s", entry.InstanceType)
	}
}

func TestResolveFlavorNotFound(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name     string
		flavor   string
		provider types.Provider
	}{
		{"unknown flavor", "mega", types.ProviderAWS},
		{"unknown provider", "medium", types.ProviderGCP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snap.ResolveFlavor(tt.flavor, tt.provider)
			if err == nil {
				t.Fatal("expected NotFound error, got nil")
			}
			if !errors.IsType(err, errors.TypeNotFound) {
				t.Errorf("expected NOT_FOUND, got %v", err)
			}
		})
	}
}

func TestResolveImageAndLocation(t *testing.T) {
	snap := testSnapshot()

	img, err := snap.ResolveImage("ubuntu-22.04", types.ProviderAWS)
	if err != nil || img.ID != "ami-123" {
		t.Errorf("image resolution failed: %v %v", img, err)
	}
	if _, err := snap.ResolveImage("windows-11", types.ProviderAWS); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for unknown image, got %v", err)
	}

	loc, err := snap.ResolveLocation("us-east", types.ProviderAWS)
	if err != nil || loc.ID != "us-east-1" {
		t.Errorf("location resolution failed: %v %v", loc, err)
	}
	if _, err := snap.ResolveLocation("moon-base", types.ProviderAWS); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND for unknown location, got %v", err)
	}
}

func TestNearestFitNeverUnderProvisions(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name     string
		cores    int
		memoryGB float64
		want     string
	}{
		{"exact match", 2, 4, "t3.medium"},
		{"memory forces larger", 2, 6, "m5.large"},
		{"cores force larger", 3, 4, "m5.xlarge"},
		{"both at upper bound", 4, 16, "m5.xlarge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := snap.NearestFit(tt.cores, tt.memoryGB, types.ProviderAWS)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.InstanceType != tt.want {
				t.Errorf("expected %s, got %s", tt.want, entry.InstanceType)
			}
			if entry.VCPUs < tt.cores || entry.MemoryGB < tt.memoryGB {
				t.Errorf("under-provisioned: requested %d/%g got %d/%g",
					tt.cores, tt.memoryGB, entry.VCPUs, entry.MemoryGB)
			}
		})
	}
}

func TestNearestFitNoFit(t *testing.T) {
	snap := testSnapshot()

	_, err := snap.NearestFit(64, 512, types.ProviderAWS)
	if !errors.IsType(err, errors.TypeNoFit) {
		t.Errorf("expected NO_FIT, got %v", err)
	}
}

func TestNearestFitPrefersCheaperOnEqualCapacity(t *testing.T) {
	b := NewBuilder()
	b.AddFlavor(types.ProviderAWS, "a", FlavorEntry{InstanceType: "zzz.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.08")})
	b.AddFlavor(types.ProviderAWS, "b", FlavorEntry{InstanceType: "aaa.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.09")})
	snap := b.Build()

	entry, err := snap.NearestFit(2, 8, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.InstanceType != "zzz.large" {
		t.Errorf("expected cheaper zzz.large, got %s", entry.InstanceType)
	}
}

func TestNearestFitLexicalTieBreakOnEqualPrice(t *testing.T) {
	b := NewBuilder()
	b.AddFlavor(types.ProviderAWS, "a", FlavorEntry{InstanceType: "m5.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.08")})
	b.AddFlavor(types.ProviderAWS, "b", FlavorEntry{InstanceType: "c5.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.08")})
	snap := b.Build()

	entry, err := snap.NearestFit(2, 8, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.InstanceType != "c5.large" {
		t.Errorf("expected lexically first c5.large, got %s", entry.InstanceType)
	}
}

func TestResolveGPUConcreteType(t *testing.T) {
	snap := testSnapshot()

	entry, err := snap.ResolveGPU("t4", 1, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SKU != "g4dn.xlarge" {
		t.Errorf("expected g4dn.xlarge, got %s", entry.SKU)
	}

	// count above capacity for the concrete type
	if _, err := snap.ResolveGPU("t4", 4, types.ProviderAWS); !errors.IsType(err, errors.TypeNoGPU) {
		t.Errorf("expected NO_GPU for count 4 on t4, got %v", err)
	}
}

func TestResolveGPUAnyPicksCheapest(t *testing.T) {
	snap := testSnapshot()

	entry, err := snap.ResolveGPU(types.GPUTypeAny, 1, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SKU != "g4dn.xlarge" {
		t.Errorf("any should pick the cheapest SKU, got %s", entry.SKU)
	}

	// count 8 only satisfiable by the a100 SKU
	entry, err = snap.ResolveGPU(types.GPUTypeAny, 8, types.ProviderAWS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SKU != "p4d.24xlarge" {
		t.Errorf("expected p4d.24xlarge for count 8, got %s", entry.SKU)
	}
}

func TestResolveGPUAnyLexicalTieBreak(t *testing.T) {
	b := NewBuilder()
	b.AddGPU(types.ProviderGCP, "x", GPUEntry{SKU: "nvidia-z", Count: 1, HourlyCost: dec("0.35")})
	b.AddGPU(types.ProviderGCP, "y", GPUEntry{SKU: "nvidia-a", Count: 1, HourlyCost: dec("0.35")})
	snap := b.Build()

	entry, err := snap.ResolveGPU(types.GPUTypeAny, 1, types.ProviderGCP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.SKU != "nvidia-a" {
		t.Errorf("price tie must break by SKU name, got %s", entry.SKU)
	}
}

func TestResolveGPUNoneAvailable(t *testing.T) {
	b := NewBuilder()
	b.AddFlavor(types.ProviderHetzner, "medium", FlavorEntry{InstanceType: "cpx31", VCPUs: 4, MemoryGB: 8, HourlyCost: dec("0.0252")})
	snap := b.Build()

	_, err := snap.ResolveGPU(types.GPUTypeAny, 1, types.ProviderHetzner)
	if !errors.IsType(err, errors.TypeNoGPU) {
		t.Errorf("expected NO_GPU for provider without GPU SKUs, got %v", err)
	}
}

func TestCompletenessWarnings(t *testing.T) {
	b := NewBuilder()
	b.AddFlavor(types.ProviderAWS, "medium", FlavorEntry{InstanceType: "t3.medium", VCPUs: 2, MemoryGB: 4, HourlyCost: dec("0.0416")})
	b.AddFlavor(types.ProviderGCP, "medium", FlavorEntry{InstanceType: "e2-medium", VCPUs: 1, MemoryGB: 4, HourlyCost: dec("0.0335")})
	b.AddImage(types.ProviderAWS, "ubuntu-22.04", ImageEntry{ID: "ami-123"})
	// gcp has no image mapping for ubuntu-22.04 -> warning, not failure
	snap := b.Build()

	if len(snap.Warnings()) == 0 {
		t.Fatal("expected completeness warnings for missing gcp image mapping")
	}
	if _, err := snap.ResolveFlavor("medium", types.ProviderGCP); err != nil {
		t.Errorf("warnings must not block valid lookups: %v", err)
	}
}

func TestBuildSealsSnapshot(t *testing.T) {
	b := NewBuilder()
	b.AddFlavor(types.ProviderAWS, "medium", FlavorEntry{InstanceType: "t3.medium", VCPUs: 2, MemoryGB: 4, HourlyCost: dec("0.0416")})
	snap := b.Build()

	// adds after Build must not reach the sealed snapshot
	b.AddFlavor(types.ProviderAWS, "large", FlavorEntry{InstanceType: "m5.large", VCPUs: 2, MemoryGB: 8, HourlyCost: dec("0.096")})

	if _, err := snap.ResolveFlavor("large", types.ProviderAWS); err == nil {
		t.Error("sealed snapshot must not see entries added after Build")
	}
	if _, err := snap.ResolveFlavor("medium", types.ProviderAWS); err != nil {
		t.Errorf("sealed snapshot lost its entries: %v", err)
	}
}

func TestContentHashDeterministic(t *testing.T) {
	a := testSnapshot()
	b := testSnapshot()
	if a.ContentHash() != b.ContentHash() {
		t.Error("identical tables must produce identical content hashes")
	}
}

func TestContentHashChangesWithPrices(t *testing.T) {
	a := testSnapshot()

	b := NewBuilder()
	b.AddFlavor(types.ProviderAWS, "medium", FlavorEntry{InstanceType: "t3.medium", VCPUs: 2, MemoryGB: 4, HourlyCost: dec("0.05")})
	other := b.Build()

	if a.ContentHash() == other.ContentHash() {
		t.Error("different tables must produce different content hashes")
	}
}
