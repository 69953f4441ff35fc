package main

import (
	"context"
	"fmt"

	"github.com/nedrex/nedrexdb/internal/iodb"
	"github.com/nedrex/nedrexdb/internal/ioparse"
	"github.com/nedrex/nedrexdb/internal/iostore"
	"github.com/nedrex/nedrexdb/pkg/config"
	"github.com/spf13/cobra"
)

func getParseCmd() *cobra.Command {
	var (
		variantFile   string
		assertionFile string
		batchSize     int
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Ingests ClinVar data into the staging store",
		Long: `Ingests the ClinVar variant file and clinical-assertion document.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Builds the identifier index from known disorders, variants and genes
  3. Streams the variant file into genomic_variants
  4. Streams the variant file again into variant_affects_gene, keeping
     only edges to known genes
  5. Streams the assertion XML into variant_associated_with_disorder

Examples:
  nedrexdb parse
  nedrexdb parse --variant-file clinvar.vcf.gz \
    --assertion-file ClinVarFullRelease.xml.gz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			applyFlags(cfg, variantFile, assertionFile, batchSize)
			ctx := context.Background()

			op := iodb.NewPgxOperator()
			if err := op.Connect(ctx, &cfg.Database); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer op.Close()

			parser := ioparse.New(
				cfg,
				iostore.NewReader(op),
				iostore.NewSink(op),
			)
			if err := parser.Parse(ctx); err != nil {
				return fmt.Errorf("ingestion failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&variantFile, "variant-file", "",
		"path to the gzip-compressed ClinVar variant file")
	cmd.Flags().StringVar(&assertionFile, "assertion-file", "",
		"path to the gzip-compressed ClinVar full-release XML")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0,
		"records per upsert batch")

	return cmd
}

func applyFlags(
	cfg *config.Config,
	variantFile, assertionFile string,
	batchSize int,
) {
	var opts []config.Option
	if variantFile != "" {
		opts = append(opts, config.OptClinVarVariantFile(variantFile))
	}
	if assertionFile != "" {
		opts = append(opts, config.OptClinVarAssertionFile(assertionFile))
	}
	if batchSize > 0 {
		opts = append(opts, config.OptDatabaseBatchSize(batchSize))
	}
	for _, opt := range opts {
		opt(cfg)
	}
}
