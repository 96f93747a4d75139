// Package cmd provides the CLI commands for cloudforge.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cloudforge/internal/config"
	"cloudforge/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudforge",
	Short: "Generate provider-specific infrastructure code from a generic description",
	Long: `cloudforge converts a cloud-agnostic infrastructure description into
provider-specific infrastructure-as-code, choosing among cloud backends
by estimated hourly cost.

Examples:
  cloudforge plan infra.yaml
  cloudforge plan infra.yaml --emit ./out
  cloudforge select --flavor medium --image ubuntu-22.04 --location eu-central
  cloudforge catalog --provider aws`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cloudforge.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cloudforge version 0.1.0")
	},
}
