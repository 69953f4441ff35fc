package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nedrex/nedrexdb/pkg/config"
)

// Operator defines the interface for database connection management.
// It provides pool lifecycle and exposes the pgxpool.Pool for higher-level
// components (SchemaManager, store Reader/Sink) to execute their
// specialized SQL internally.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool. Components use it for
	// bulk upserts and index scans.
	Pool() *pgxpool.Pool
}
