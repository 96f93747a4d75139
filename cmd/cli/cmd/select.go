// Package cmd - select command
package cmd

import (
	"github.com/spf13/cobra"

	"cloudforge/core/engine"
	"cloudforge/core/output"
	"cloudforge/core/types"
	"cloudforge/internal/config"
)

var (
	selFlavor   string
	selCores    int
	selMemory   float64
	selImage    string
	selLocation string
	selGPUType  string
	selGPUCount int
	selGPUOnly  bool
	selExclude  []string
	selFormat   string
)

// selectCmd runs a one-off cheapest selection from flags
var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the cheapest provider for a single resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := types.ResourceRequest{
			Name:             "adhoc",
			Flavor:           selFlavor,
			Cores:            selCores,
			MemoryGB:         selMemory,
			Image:            selImage,
			Location:         selLocation,
			Provider:         types.ProviderCheapest,
			ExcludeProviders: parseProviders(selExclude),
		}
		if selGPUOnly {
			req.Provider = types.ProviderCheapestGPU
		}
		if selGPUType != "" || selGPUCount > 0 {
			count := selGPUCount
			if count == 0 {
				count = 1
			}
			gpuType := selGPUType
			if gpuType == "" {
				gpuType = types.GPUTypeAny
			}
			req.GPU = &types.GPURequirement{Type: gpuType, Count: count}
		}

		eng, err := buildEngine()
		if err != nil {
			return err
		}

		planned, err := eng.Evaluate(cmd.Context(), req)
		if err != nil {
			return err
		}

		format := selFormat
		if format == "" {
			format = config.Get().Output.DefaultFormat
		}
		formatter, err := output.New(output.Format(format))
		if err != nil {
			return err
		}
		return formatter.Render(cmd.OutOrStdout(), &engine.Plan{
			Name:      "adhoc",
			Resources: []engine.PlannedResource{planned},
		})
	},
}

func init() {
	selectCmd.Flags().StringVar(&selFlavor, "flavor", "", "named size class (e.g. medium)")
	selectCmd.Flags().IntVar(&selCores, "cores", 0, "explicit vCPU requirement")
	selectCmd.Flags().Float64Var(&selMemory, "memory", 0, "explicit memory requirement in GB")
	selectCmd.Flags().StringVar(&selImage, "image", "ubuntu-22.04", "generic image name")
	selectCmd.Flags().StringVar(&selLocation, "location", "us-east", "generic location name")
	selectCmd.Flags().StringVar(&selGPUType, "gpu", "", "generic GPU type (e.g. t4, a100, any)")
	selectCmd.Flags().IntVar(&selGPUCount, "gpu-count", 0, "required GPU count")
	selectCmd.Flags().BoolVar(&selGPUOnly, "gpu-only", false, "compare GPU SKU price only (cheapest-gpu)")
	selectCmd.Flags().StringSliceVar(&selExclude, "exclude", nil, "providers to exclude")
	selectCmd.Flags().StringVar(&selFormat, "format", "", "output format (table, json)")
}
