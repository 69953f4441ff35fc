// Package lifecycle defines the high-level phases of the ingestion
// lifecycle. Implementations live in internal/io* packages.
package lifecycle

import (
	"context"
)

// SchemaManager handles database schema creation and migration.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates or updates the database schema using GORM
	// AutoMigrate.
	Create(ctx context.Context) error
}

// Parser runs the full ClinVar ingestion: builds the identifier index,
// then streams variants, variant-gene edges and variant-disorder edges
// into the store sink as three sequential passes.
type Parser interface {
	Parse(ctx context.Context) error
}
