// Package cmd - plan command
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cloudforge/core/output"
	"cloudforge/emit/terraform"
	"cloudforge/internal/config"
	"cloudforge/manifest"
)

var (
	planFormat string
	planEmit   string
)

// planCmd evaluates a manifest and optionally emits infrastructure code
var planCmd = &cobra.Command{
	Use:   "plan <manifest>",
	Short: "Evaluate a manifest and emit provider-specific infrastructure code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return err
		}

		eng, err := buildEngine()
		if err != nil {
			return err
		}

		plan, err := eng.Plan(cmd.Context(), m.Name, m.Resources)
		if err != nil {
			return err
		}

		format := planFormat
		if format == "" {
			format = config.Get().Output.DefaultFormat
		}
		formatter, err := output.New(output.Format(format))
		if err != nil {
			return err
		}
		if err := formatter.Render(cmd.OutOrStdout(), plan); err != nil {
			return err
		}

		if planEmit != "" {
			if err := os.MkdirAll(planEmit, 0755); err != nil {
				return err
			}
			path := filepath.Join(planEmit, "main.tf")
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := terraform.New().Emit(f, plan); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nwrote %s\n", path)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().StringVar(&planFormat, "format", "", "output format (table, json)")
	planCmd.Flags().StringVar(&planEmit, "emit", "", "directory to write generated infrastructure code")
}
