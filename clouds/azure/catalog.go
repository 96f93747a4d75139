// Package azure provides the built-in Azure mapping tables.
package azure

import (
	"github.com/shopspring/decimal"

	"cloudforge/core/catalog"
	"cloudforge/core/types"
)

// Register adds the Azure default tables to a catalog builder.
// Prices are pay-as-you-go East US list prices.
func Register(b *catalog.Builder) {
	p := types.ProviderAzure

	b.AddFlavor(p, "nano", flavor("Standard_B1ls", 1, 0.5, "0.0052"))
	b.AddFlavor(p, "micro", flavor("Standard_B1s", 1, 1, "0.0104"))
	b.AddFlavor(p, "small", flavor("Standard_B1ms", 1, 2, "0.0207"))
	b.AddFlavor(p, "medium", flavor("Standard_B4ms", 4, 16, "0.0752"))
	b.AddFlavor(p, "large", flavor("Standard_D2s_v3", 2, 8, "0.096"))
	b.AddFlavor(p, "xlarge", flavor("Standard_D4s_v3", 4, 16, "0.192"))
	b.AddFlavor(p, "2xlarge", flavor("Standard_D8s_v3", 8, 32, "0.384"))

	b.AddImage(p, "ubuntu-22.04", catalog.ImageEntry{ID: "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest"})
	b.AddImage(p, "ubuntu-24.04", catalog.ImageEntry{ID: "Canonical:ubuntu-24_04-lts:server:latest"})
	b.AddImage(p, "debian-12", catalog.ImageEntry{ID: "Debian:debian-12:12-gen2:latest"})

	b.AddLocation(p, "us-east", catalog.LocationEntry{ID: "eastus"})
	b.AddLocation(p, "us-west", catalog.LocationEntry{ID: "westus2"})
	b.AddLocation(p, "eu-central", catalog.LocationEntry{ID: "germanywestcentral"})
	b.AddLocation(p, "eu-west", catalog.LocationEntry{ID: "westeurope"})
	b.AddLocation(p, "ap-southeast", catalog.LocationEntry{ID: "southeastasia"})

	b.AddGPU(p, "t4", gpu("Standard_NC4as_T4_v3", 1, "0.526"))
	b.AddGPU(p, "v100", gpu("Standard_NC6s_v3", 1, "3.06"))
	b.AddGPU(p, "a100", gpu("Standard_NC24ads_A100_v4", 1, "3.6730"))
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
