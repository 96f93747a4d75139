// Package hetzner provides the built-in Hetzner Cloud mapping tables.
// Hetzner offers no GPU instance types; GPU requests against it fail
// resolution and the provider drops out of cheapest-gpu comparisons.
package hetzner

import (
	"github.com/shopspring/decimal"

	"cloudforge/core/catalog"
	"cloudforge/core/types"
)

// Register adds the Hetzner default tables to a catalog builder.
// Prices are shared-vCPU (CPX) hourly list prices converted to USD.
func Register(b *catalog.Builder) {
	p := types.ProviderHetzner

	b.AddFlavor(p, "nano", flavor("cpx11", 2, 2, "0.0074"))
	b.AddFlavor(p, "micro", flavor("cpx11", 2, 2, "0.0074"))
	b.AddFlavor(p, "small", flavor("cpx21", 3, 4, "0.0127"))
	b.AddFlavor(p, "medium", flavor("cpx31", 4, 8, "0.0252"))
	b.AddFlavor(p, "large", flavor("cpx41", 8, 16, "0.0474"))
	b.AddFlavor(p, "xlarge", flavor("cpx51", 16, 32, "0.1036"))
	b.AddFlavor(p, "2xlarge", flavor("ccx33", 8, 32, "0.1923"))

	b.AddImage(p, "ubuntu-22.04", catalog.ImageEntry{ID: "ubuntu-22.04"})
	b.AddImage(p, "ubuntu-24.04", catalog.ImageEntry{ID: "ubuntu-24.04"})
	b.AddImage(p, "debian-12", catalog.ImageEntry{ID: "debian-12"})

	b.AddLocation(p, "us-east", catalog.LocationEntry{ID: "ash"})
	b.AddLocation(p, "us-west", catalog.LocationEntry{ID: "hil"})
	b.AddLocation(p, "eu-central", catalog.LocationEntry{ID: "fsn1"})
	b.AddLocation(p, "eu-west", catalog.LocationEntry{ID: "nbg1"})
	b.AddLocation(p, "ap-southeast", catalog.LocationEntry{ID: "sin"})
}

func flavor(instanceType string, vcpus int, memoryGB float64, hourly string) catalog.FlavorEntry {
	return catalog.FlavorEntry{
		InstanceType: instanceType,
		VCPUs:        vcpus,
		MemoryGB:     memoryGB,
		HourlyCost:   decimal.RequireFromString(hourly),
	}
}
