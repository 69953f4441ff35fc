// Package store defines the contracts between the ingestion core and the
// backing graph store. The core only reads identifier catalogs through
// Reader and hands candidate records to Sink; durability, retries and
// transactionality stay on the store side.
package store

import (
	"context"

	"github.com/nedrex/nedrexdb/pkg/model"
)

// DisorderRef is the identifier view of a disorder node: its canonical id
// and every external domain id it is known by.
type DisorderRef struct {
	PrimaryDomainID string
	DomainIDs       []string
}

// Reader provides one-shot scans of the identifier catalogs already known
// to the graph. Implementations must tolerate empty collections and return
// empty results, not errors.
type Reader interface {
	// ListDisorders returns every disorder with its domain ids.
	ListDisorders(ctx context.Context) ([]DisorderRef, error)

	// ListVariantIDs returns every known canonical variant id.
	ListVariantIDs(ctx context.Context) ([]string, error)

	// ListGeneIDs returns every known canonical gene id.
	ListGeneIDs(ctx context.Context) ([]string, error)
}

// Sink receives batches of candidate records for idempotent upsert keyed by
// primary identifier. The core may call each method any number of times;
// batch boundaries carry no meaning beyond memory control.
type Sink interface {
	UpsertVariants(ctx context.Context, recs []model.GenomicVariant) error
	UpsertGeneEdges(ctx context.Context, recs []model.VariantAffectsGene) error
	UpsertDisorderEdges(ctx context.Context, recs []model.VariantAssociatedWithDisorder) error
}
