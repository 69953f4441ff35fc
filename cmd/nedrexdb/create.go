package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nedrex/nedrexdb/internal/iodb"
	"github.com/nedrex/nedrexdb/internal/ioschema"
	"github.com/spf13/cobra"
)

func getCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates or migrates the staging-store schema",
		Long: `Creates the staging-store tables for nodes and relationships, or brings
an existing schema up to date. Safe to run multiple times.

Examples:
  nedrexdb create
  nedrexdb create --config custom.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			ctx := context.Background()

			op := iodb.NewPgxOperator()
			if err := op.Connect(ctx, &cfg.Database); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer op.Close()

			mgr := ioschema.NewManager(op)
			if err := mgr.Create(ctx); err != nil {
				return fmt.Errorf("schema creation failed: %w", err)
			}

			slog.Info("Schema is up to date")
			return nil
		},
	}
	return cmd
}
