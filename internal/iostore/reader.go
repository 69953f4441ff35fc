// Package iostore implements the store.Reader and store.Sink contracts on
// PostgreSQL using pgx. This is an impure I/O package: Reader scans the
// identifier catalogs, Sink performs idempotent batched upserts keyed by
// primary identifier.
package iostore

import (
	"context"

	"github.com/nedrex/nedrexdb/pkg/db"
	"github.com/nedrex/nedrexdb/pkg/store"
)

// pgxReader implements store.Reader on a pgx connection pool.
type pgxReader struct {
	operator db.Operator
}

// NewReader creates a store.Reader backed by PostgreSQL.
func NewReader(op db.Operator) store.Reader {
	return &pgxReader{operator: op}
}

// ListDisorders returns every disorder with its domain ids.
func (r *pgxReader) ListDisorders(
	ctx context.Context,
) ([]store.DisorderRef, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := pool.Query(ctx,
		"SELECT primary_domain_id, domain_ids FROM disorders")
	if err != nil {
		return nil, QueryError("disorders", err)
	}
	defer rows.Close()

	var refs []store.DisorderRef
	for rows.Next() {
		var ref store.DisorderRef
		if err := rows.Scan(&ref.PrimaryDomainID, &ref.DomainIDs); err != nil {
			return nil, QueryError("disorders", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("disorders", err)
	}
	return refs, nil
}

// ListVariantIDs returns every known canonical variant id.
func (r *pgxReader) ListVariantIDs(ctx context.Context) ([]string, error) {
	return r.listIDs(ctx, "genomic_variants")
}

// ListGeneIDs returns every known canonical gene id.
func (r *pgxReader) ListGeneIDs(ctx context.Context) ([]string, error) {
	return r.listIDs(ctx, "genes")
}

func (r *pgxReader) listIDs(
	ctx context.Context,
	table string,
) ([]string, error) {
	pool := r.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	rows, err := pool.Query(ctx,
		"SELECT primary_domain_id FROM "+table)
	if err != nil {
		return nil, QueryError(table, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, QueryError(table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError(table, err)
	}
	return ids, nil
}
