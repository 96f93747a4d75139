// Package aws provides the built-in AWS mapping tables.
package aws

import (
	"github.com/shopspring/decimal"

	"cloudforge/core/catalog"
	"cloudforge/core/types"
)

// Register adds the AWS default tables to a catalog builder.
// Prices are on-demand Linux us-east-1 list prices.
func Register(b *catalog.Builder) {
	p := types.ProviderAWS

	b.AddFlavor(p, "nano", flavor("t3.nano", 2, 0.5, "0.0052"))
	b.AddFlavor(p, "micro", flavor("t3.micro", 2, 1, "0.0104"))
	b.AddFlavor(p, "small", flavor("t3.small", 2, 2, "0.0208"))
	b.AddFlavor(p, "medium", flavor("t3.medium", 2, 4, "0.0416"))
	b.AddFlavor(p, "large", flavor("m5.large", 2, 8, "0.096"))
	b.AddFlavor(p, "xlarge", flavor("m5.xlarge", 4, 16, "0.192"))
	b.AddFlavor(p, "2xlarge", flavor("m5.2xlarge", 8, 32, "0.384"))

	b.AddImage(p, "ubuntu-22.04", catalog.ImageEntry{ID: "ami-0a0e5d9c7acc336f1"})
	b.AddImage(p, "ubuntu-24.04", catalog.ImageEntry{ID: "ami-04b70fa74e45c3917"})
	b.AddImage(p, "debian-12", catalog.ImageEntry{ID: "ami-058bd2d568351da34"})

	b.AddLocation(p, "us-east", catalog.LocationEntry{ID: "us-east-1"})
	b.AddLocation(p, "us-west", catalog.LocationEntry{ID: "us-west-2"})
	b.AddLocation(p, "eu-central", catalog.LocationEntry{ID: "eu-central-1"})
	b.AddLocation(p, "eu-west", catalog.LocationEntry{ID: "eu-west-1"})
	b.AddLocation(p, "ap-southeast", catalog.LocationEntry{ID: "ap-southeast-1"})

	b.AddGPU(p, "t4", gpu("g4dn.xlarge", 1, "0.526"))
	b.AddGPU(p, "l4", gpu("g6.xlarge", 1, "0.8048"))
	b.AddGPU(p, "v100", gpu("p3.2xlarge", 1, "3.06"))
	b.AddGPU(p, "a100", gpu("p4d.24xlarge", 8, "32.7726"))
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
