// Package cmd - resolve command
package cmd

import (
	"github.com/spf13/cobra"

	"cloudforge/core/engine"
	"cloudforge/core/output"
	"cloudforge/core/types"
	"cloudforge/internal/config"
)

var (
	resProvider string
	resFlavor   string
	resCores    int
	resMemory   float64
	resImage    string
	resLocation string
	resGPUType  string
	resGPUCount int
	resFormat   string
)

// resolveCmd resolves a single resource against one concrete provider
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a resource against a specific provider and quote it",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := types.ResourceRequest{
			Name:     "adhoc",
			Flavor:   resFlavor,
			Cores:    resCores,
			MemoryGB: resMemory,
			Image:    resImage,
			Location: resLocation,
			Provider: types.Provider(resProvider),
		}
		if resGPUType != "" {
			count := resGPUCount
			if count == 0 {
				count = 1
			}
			req.GPU = &types.GPURequirement{Type: resGPUType, Count: count}
		}

		eng, err := buildEngine()
		if err != nil {
			return err
		}

		planned, err := eng.Evaluate(cmd.Context(), req)
		if err != nil {
			return err
		}

		format := resFormat
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
	resolveCmd.Flags().StringVar(&resProvider, "provider", "aws", "concrete provider to resolve against")
	resolveCmd.Flags().StringVar(&resFlavor, "flavor", "", "named size class (e.g. medium)")
	resolveCmd.Flags().IntVar(&resCores, "cores", 0, "explicit vCPU requirement")
	resolveCmd.Flags().Float64Var(&resMemory, "memory", 0, "explicit memory requirement in GB")
	resolveCmd.Flags().StringVar(&resImage, "image", "ubuntu-22.04", "generic image name")
	resolveCmd.Flags().StringVar(&resLocation, "location", "us-east", "generic location name")
	resolveCmd.Flags().StringVar(&resGPUType, "gpu", "", "generic GPU type (e.g. t4, a100, any)")
	resolveCmd.Flags().IntVar(&resGPUCount, "gpu-count", 0, "required GPU count")
	resolveCmd.Flags().StringVar(&resFormat, "format", "", "output format (table, json)")
}
