package main

import (
	"fmt"

	"github.com/nedrex/nedrexdb/internal/ioconfig"
	"github.com/nedrex/nedrexdb/pkg/config"
	"github.com/nedrex/nedrexdb/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nedrexdb",
		Short: "nedrexdb ingests ClinVar data into the NeDRex graph store",
		Long: `nedrexdb normalizes ClinVar data products into knowledge-graph entities
and relationships: genomic variants, variant-gene edges and
variant-disorder edges.

The tool provides two phases:
  - create: create or migrate the staging-store schema
  - parse: stream the ClinVar variant file and assertion document into
    the store

Configuration precedence (highest to lowest):
  1. CLI flags (--variant-file, --batch-size, etc.)
  2. Environment variables (NEDREX_*)
  3. Config file (nedrex.yaml)
  4. Built-in defaults`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}
				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - defaults still work.
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config
			logger.Init(&cfg.Log)

			switch result.Source {
			case "file":
				fmt.Printf("Using config from: %s\n", result.SourcePath)
			case "defaults+env":
				fmt.Println("Using built-in defaults with environment variable overrides")
			case "defaults":
				fmt.Println("Using built-in defaults (no config file)")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./nedrex.yaml or ~/.config/nedrex/nedrex.yaml)")

	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getParseCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands).
func getConfig() *config.Config {
	return cfg
}
