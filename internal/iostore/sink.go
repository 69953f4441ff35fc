package iostore

import (
	"context"
	"fmt"
	"strings"

	"github.com/nedrex/nedrexdb/pkg/db"
	"github.com/nedrex/nedrexdb/pkg/model"
	"github.com/nedrex/nedrexdb/pkg/store"
)

// pgxSink implements store.Sink with parameterized multi-row INSERT
// statements and ON CONFLICT upserts. Re-running a pass with unchanged
// inputs leaves the tables unchanged.
type pgxSink struct {
	operator db.Operator
}

// NewSink creates a store.Sink backed by PostgreSQL.
func NewSink(op db.Operator) store.Sink {
	return &pgxSink{operator: op}
}

// UpsertVariants writes one batch of variant nodes.
func (s *pgxSink) UpsertVariants(
	ctx context.Context,
	recs []model.GenomicVariant,
) error {
	if len(recs) == 0 {
		return nil
	}
	pool := s.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	var valueStrings []string
	var valueArgs []any
	argIdx := 1

	for _, rec := range recs {
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argIdx, argIdx+1, argIdx+2, argIdx+3,
			argIdx+4, argIdx+5, argIdx+6, argIdx+7,
		))
		valueArgs = append(valueArgs,
			rec.PrimaryDomainID,
			rec.DomainIDs,
			rec.Chromosome,
			rec.Position,
			rec.ReferenceSequence,
			rec.AlternativeSequence,
			rec.VariantType,
			rec.DataSources,
		)
		argIdx += 8
	}

	query := `
		INSERT INTO genomic_variants
			(primary_domain_id, domain_ids, chromosome, position,
			 reference_sequence, alternative_sequence, variant_type,
			 data_sources)
		VALUES ` + strings.Join(valueStrings, ", ") + `
		ON CONFLICT (primary_domain_id) DO UPDATE SET
			domain_ids = EXCLUDED.domain_ids,
			chromosome = EXCLUDED.chromosome,
			position = EXCLUDED.position,
			reference_sequence = EXCLUDED.reference_sequence,
			alternative_sequence = EXCLUDED.alternative_sequence,
			variant_type = EXCLUDED.variant_type,
			data_sources = EXCLUDED.data_sources`

	if _, err := pool.Exec(ctx, query, valueArgs...); err != nil {
		return UpsertError("genomic_variants", len(recs), err)
	}
	return nil
}

// UpsertGeneEdges writes one batch of variant-gene relationships.
func (s *pgxSink) UpsertGeneEdges(
	ctx context.Context,
	recs []model.VariantAffectsGene,
) error {
	if len(recs) == 0 {
		return nil
	}
	pool := s.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	var valueStrings []string
	var valueArgs []any
	argIdx := 1

	for _, rec := range recs {
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d)", argIdx, argIdx+1, argIdx+2,
		))
		valueArgs = append(valueArgs,
			rec.SourceDomainID,
			rec.TargetDomainID,
			rec.DataSources,
		)
		argIdx += 3
	}

	query := `
		INSERT INTO variant_affects_gene
			(source_domain_id, target_domain_id, data_sources)
		VALUES ` + strings.Join(valueStrings, ", ") + `
		ON CONFLICT (source_domain_id, target_domain_id) DO UPDATE SET
			data_sources = EXCLUDED.data_sources`

	if _, err := pool.Exec(ctx, query, valueArgs...); err != nil {
		return UpsertError("variant_affects_gene", len(recs), err)
	}
	return nil
}

// UpsertDisorderEdges writes one batch of variant-disorder relationships.
// Duplicate (source, target) pairs inside one batch collapse to the last
// occurrence before hitting the unique key, matching upsert semantics.
func (s *pgxSink) UpsertDisorderEdges(
	ctx context.Context,
	recs []model.VariantAssociatedWithDisorder,
) error {
	if len(recs) == 0 {
		return nil
	}
	pool := s.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	// ON CONFLICT cannot touch the same row twice in one statement, so
	// in-batch duplicates are collapsed first.
	deduped := make([]model.VariantAssociatedWithDisorder, 0, len(recs))
	seen := make(map[[2]string]int, len(recs))
	for _, rec := range recs {
		key := [2]string{rec.SourceDomainID, rec.TargetDomainID}
		if i, ok := seen[key]; ok {
			deduped[i] = rec
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, rec)
	}

	var valueStrings []string
	var valueArgs []any
	argIdx := 1

	for _, rec := range deduped {
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d)",
			argIdx, argIdx+1, argIdx+2, argIdx+3, argIdx+4, argIdx+5,
		))
		valueArgs = append(valueArgs,
			rec.SourceDomainID,
			rec.TargetDomainID,
			rec.Accession,
			rec.Effects,
			rec.ReviewStatus,
			rec.DataSources,
		)
		argIdx += 6
	}

	query := `
		INSERT INTO variant_associated_with_disorder
			(source_domain_id, target_domain_id, accession, effects,
			 review_status, data_sources)
		VALUES ` + strings.Join(valueStrings, ", ") + `
		ON CONFLICT (source_domain_id, target_domain_id) DO UPDATE SET
			accession = EXCLUDED.accession,
			effects = EXCLUDED.effects,
			review_status = EXCLUDED.review_status,
			data_sources = EXCLUDED.data_sources`

	if _, err := pool.Exec(ctx, query, valueArgs...); err != nil {
		return UpsertError(
			"variant_associated_with_disorder", len(deduped), err,
		)
	}
	return nil
}
