// Package gcp provides the built-in GCP mapping tables.
package gcp

import (
	"github.com/shopspring/decimal"

	"cloudforge/core/catalog"
	"cloudforge/core/types"
)

// Register adds the GCP default tables to a catalog builder.
// Prices are on-demand us-central1 list prices.
func Register(b *catalog.Builder) {
	p := types.ProviderGCP

	b.AddFlavor(p, "nano", flavor("e2-micro", 2, 1, "0.008376"))
	b.AddFlavor(p, "micro", flavor("e2-small", 2, 2, "0.016751"))
	b.AddFlavor(p, "small", flavor("e2-small", 2, 2, "0.016751"))
	b.AddFlavor(p, "medium", flavor("e2-medium", 1, 4, "0.0335"))
	b.AddFlavor(p, "large", flavor("n2-standard-2", 2, 8, "0.097118"))
	b.AddFlavor(p, "xlarge", flavor("n2-standard-4", 4, 16, "0.194236"))
	b.AddFlavor(p, "2xlarge", flavor("n2-standard-8", 8, 32, "0.388472"))

	b.AddImage(p, "ubuntu-22.04", catalog.ImageEntry{ID: "projects/ubuntu-os-cloud/global/images/family/ubuntu-2204-lts"})
	b.AddImage(p, "ubuntu-24.04", catalog.ImageEntry{ID: "projects/ubuntu-os-cloud/global/images/family/ubuntu-2404-lts-amd64"})
	b.AddImage(p, "debian-12", catalog.ImageEntry{ID: "projects/debian-cloud/global/images/family/debian-12"})

	b.AddLocation(p, "us-east", catalog.LocationEntry{ID: "us-east1"})
	b.AddLocation(p, "us-west", catalog.LocationEntry{ID: "us-west1"})
	b.AddLocation(p, "eu-central", catalog.LocationEntry{ID: "europe-west3"})
	b.AddLocation(p, "eu-west", catalog.LocationEntry{ID: "europe-west1"})
	b.AddLocation(p, "ap-southeast", catalog.LocationEntry{ID: "asia-southeast1"})

	b.AddGPU(p, "t4", gpu("nvidia-tesla-t4", 1, "0.35"))
	b.AddGPU(p, "l4", gpu("nvidia-l4", 1, "0.5672"))
	b.AddGPU(p, "v100", gpu("nvidia-tesla-v100", 1, "2.48"))
	b.AddGPU(p, "a100", gpu("nvidia-tesla-a100", 1, "2.933908"))
}

func flavor(instanceType string, vcpus int, memoryGB float64, hourly string) catalog.FlavorEntry {
	return catalog.FlavorEntry{
		InstanceType: instanceType,
		VCPUs:        vcpus,
		MemoryGB:     memoryGB,
		HourlyCost:   decimal.RequireFromString(hourly),
	}
}

func gpu(sku string, count int, hourly string) catalog.GPUEntry {
	return catalog.GPUEntry{
		SKU:        sku,
		Count:      count,
		HourlyCost: decimal.RequireFromString(hourly),
	}
}
