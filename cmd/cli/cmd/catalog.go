// Package cmd - catalog command
package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"cloudforge/core/determinism"
	"cloudforge/core/types"
)

var catalogProvider string

// catalogCmd lists the loaded mapping tables
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List flavor mappings in the loaded catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := buildEngine()
		if err != nil {
			return err
		}
		snapshot := eng.Snapshot()

		providers := snapshot.Providers()
		if catalogProvider != "" {
			providers = []types.Provider{types.Provider(catalogProvider)}
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Append([]string{"Provider", "Flavor", "Instance Type", "vCPU", "Memory GB", "Hourly"})
		for _, p := range providers {
			flavors := snapshot.Flavors(p)
			for _, name := range determinism.SortedKeys(flavors) {
				e := flavors[name]
				table.Append([]string{
					string(p),
					name,
					e.InstanceType,
					fmt.Sprintf("%d", e.VCPUs),
					fmt.Sprintf("%g", e.MemoryGB),
					e.HourlyCost.StringFixed(4),
				})
			}
		}
		table.Render()

		fmt.Printf("\ncatalog hash: %s\n", snapshot.ContentHash())
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogProvider, "provider", "", "limit output to one provider")
}
