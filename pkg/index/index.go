// Package index builds the run-scoped identifier index: the inverted
// disorder domain-id map and the known variant and gene id sets. The index
// is built before streaming begins; the variant set is re-scanned once
// between the tabular and assertion passes, and the index is otherwise
// read-only.
package index

import (
	"context"

	"github.com/nedrex/nedrexdb/pkg/store"
)

// Index holds identifier lookup tables for one ingestion run.
type Index struct {
	disorders map[string][]string
	variants  map[string]struct{}
	genes     map[string]struct{}
}

// Build scans the store once and constructs the index. Empty backing
// collections yield an empty (but usable) index.
func Build(ctx context.Context, r store.Reader) (*Index, error) {
	ix := &Index{
		disorders: make(map[string][]string),
		variants:  make(map[string]struct{}),
		genes:     make(map[string]struct{}),
	}

	disorders, err := r.ListDisorders(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range disorders {
		for _, domainID := range d.DomainIDs {
			ix.disorders[domainID] = append(
				ix.disorders[domainID], d.PrimaryDomainID,
			)
		}
	}

	variantIDs, err := r.ListVariantIDs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range variantIDs {
		ix.variants[id] = struct{}{}
	}

	geneIDs, err := r.ListGeneIDs(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range geneIDs {
		ix.genes[id] = struct{}{}
	}

	return ix, nil
}

// ReloadVariants replaces the known-variant set with a fresh scan of the
// store. The assertion pass filters against variants present in the store
// at the time it starts, including those written earlier in the same run,
// so its snapshot is taken after the tabular passes.
func (ix *Index) ReloadVariants(ctx context.Context, r store.Reader) error {
	variantIDs, err := r.ListVariantIDs(ctx)
	if err != nil {
		return err
	}
	ix.variants = make(map[string]struct{}, len(variantIDs))
	for _, id := range variantIDs {
		ix.variants[id] = struct{}{}
	}
	return nil
}

// ResolveDisorder returns the canonical disorder ids a domain id maps to.
// A domain id claimed by several disorders returns all of them.
func (ix *Index) ResolveDisorder(domainID string) []string {
	return ix.disorders[domainID]
}

// HasVariant reports whether id is a known canonical variant id.
func (ix *Index) HasVariant(id string) bool {
	_, ok := ix.variants[id]
	return ok
}

// HasGene reports whether id is a known canonical gene id.
func (ix *Index) HasGene(id string) bool {
	_, ok := ix.genes[id]
	return ok
}

// VariantCount returns the number of known variant ids.
func (ix *Index) VariantCount() int { return len(ix.variants) }

// GeneCount returns the number of known gene ids.
func (ix *Index) GeneCount() int { return len(ix.genes) }

// DisorderDomainIDCount returns the number of indexed domain ids.
func (ix *Index) DisorderDomainIDCount() int { return len(ix.disorders) }
