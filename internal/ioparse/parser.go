// Package ioparse implements the Parser interface: it orchestrates the
// three sequential ClinVar ingestion passes (variant nodes, variant-gene
// edges, variant-disorder edges) over the configured source files,
// chunking records into batches for the store sink. This is an impure I/O
// package; all streaming parsers live in internal/ioclinvar.
package ioparse

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/nedrex/nedrexdb/internal/ioclinvar"
	"github.com/nedrex/nedrexdb/pkg/config"
	"github.com/nedrex/nedrexdb/pkg/index"
	"github.com/nedrex/nedrexdb/pkg/lifecycle"
	"github.com/nedrex/nedrexdb/pkg/model"
	"github.com/nedrex/nedrexdb/pkg/store"
)

// parser implements the lifecycle.Parser interface.
type parser struct {
	cfg    *config.Config
	reader store.Reader
	sink   store.Sink
}

// New creates a new Parser. The reader supplies identifier catalogs for
// the index; the sink receives candidate records. Neither is retried here:
// durability is the store's concern.
func New(cfg *config.Config, r store.Reader, s store.Sink) lifecycle.Parser {
	return &parser{cfg: cfg, reader: r, sink: s}
}

// Parse runs the full ingestion: index build, then three passes. Passes
// run strictly in sequence on a single goroutine; a fatal error aborts the
// run with no partial-progress checkpoint.
func (p *parser) Parse(ctx context.Context) error {
	runID := uuid.New().String()
	startTime := time.Now()
	slog.Info("Starting ClinVar ingestion", "run_id", runID)

	ix, err := index.Build(ctx, p.reader)
	if err != nil {
		return err
	}
	slog.Info("Identifier index built",
		"disorder_domain_ids", ix.DisorderDomainIDCount(),
		"known_variants", ix.VariantCount(),
		"known_genes", ix.GeneCount(),
	)

	rowCount, variantCount, err := p.parseVariants(ctx)
	if err != nil {
		return err
	}

	geneEdgeCount, err := p.parseGeneEdges(ctx, ix, rowCount)
	if err != nil {
		return err
	}

	// The known-variant snapshot for the assertion pass includes the
	// variants pass 1 just wrote.
	if err := ix.ReloadVariants(ctx, p.reader); err != nil {
		return err
	}
	slog.Info("Known-variant set refreshed",
		"known_variants", ix.VariantCount())

	disorderEdgeCount, diag, err := p.parseDisorderEdges(ctx, ix)
	if err != nil {
		return err
	}

	for tag, n := range diag.UnmappedTags() {
		slog.Warn("Unmapped database tag in assertions",
			"db", tag, "occurrences", n)
	}

	duration := time.Since(startTime)
	slog.Info("ClinVar ingestion finished",
		"run_id", runID,
		"variants", variantCount,
		"gene_edges", geneEdgeCount,
		"disorder_edges", disorderEdgeCount,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Imported %s variants, %s gene edges, %s disorder edges in %s",
		humanize.Comma(int64(variantCount)),
		humanize.Comma(int64(geneEdgeCount)),
		humanize.Comma(int64(disorderEdgeCount)),
		gnfmt.TimeString(duration.Seconds()),
	)
	return nil
}

// parseVariants is pass 1: every VCF row becomes a GenomicVariant.
// Returns the number of rows read (reused as the progress total in pass 2)
// and the number of variants handed to the sink.
func (p *parser) parseVariants(ctx context.Context) (int, int, error) {
	slog.Info("Pass 1/3: genomic variants",
		"file", p.cfg.ClinVar.VariantFile)

	r, err := ioclinvar.NewVCFReader(p.cfg.ClinVar.VariantFile)
	if err != nil {
		return 0, 0, err
	}
	defer r.Close()

	batchSize := p.cfg.Database.BatchSize
	batch := make([]model.GenomicVariant, 0, batchSize)
	var rows, count int
	timeStart := time.Now().UnixNano()

	for r.Next() {
		rows++
		row := ioclinvar.NewRow(r.Row())
		variant, err := row.Variant()
		if err != nil {
			return rows, count, err
		}
		batch = append(batch, variant)
		count++

		if len(batch) == batchSize {
			if err := p.sink.UpsertVariants(ctx, batch); err != nil {
				return rows, count, err
			}
			batch = batch[:0]
		}

		if rows%100_000 == 0 {
			logProgress("variants", rows, timeStart)
		}
	}
	if err := r.Err(); err != nil {
		return rows, count, err
	}
	if err := p.sink.UpsertVariants(ctx, batch); err != nil {
		return rows, count, err
	}

	clearProgress()
	slog.Info("Variants imported", "count", humanize.Comma(int64(count)))
	return rows, count, nil
}

// parseGeneEdges is pass 2: the variant file is streamed again and each
// row's gene candidates are filtered by the known-gene set taken from the
// index snapshot. Genes added to the store after the snapshot are not
// retroactively included.
func (p *parser) parseGeneEdges(
	ctx context.Context,
	ix *index.Index,
	rowCount int,
) (int, error) {
	slog.Info("Pass 2/3: variant-gene edges",
		"file", p.cfg.ClinVar.VariantFile)

	r, err := ioclinvar.NewVCFReader(p.cfg.ClinVar.VariantFile)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	bar := pb.Full.Start(rowCount)
	bar.Set("prefix", "Gene edges: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	batchSize := p.cfg.Database.BatchSize
	batch := make([]model.VariantAffectsGene, 0, batchSize)
	var count int

	for r.Next() {
		bar.Increment()
		row := ioclinvar.NewRow(r.Row())
		for _, edge := range row.GeneEdges() {
			if !ix.HasGene(edge.TargetDomainID) {
				continue
			}
			batch = append(batch, edge)
			count++

			if len(batch) == batchSize {
				if err := p.sink.UpsertGeneEdges(ctx, batch); err != nil {
					return count, err
				}
				batch = batch[:0]
			}
		}
	}
	if err := r.Err(); err != nil {
		return count, err
	}
	if err := p.sink.UpsertGeneEdges(ctx, batch); err != nil {
		return count, err
	}

	slog.Info("Gene edges imported", "count", humanize.Comma(int64(count)))
	return count, nil
}

// parseDisorderEdges is pass 3: the assertion document is streamed once
// and resolved edges are batched to the sink.
func (p *parser) parseDisorderEdges(
	ctx context.Context,
	ix *index.Index,
) (int, *ioclinvar.Diagnostics, error) {
	slog.Info("Pass 3/3: variant-disorder edges",
		"file", p.cfg.ClinVar.AssertionFile)

	diag := ioclinvar.NewDiagnostics()
	r, err := ioclinvar.NewAssertionReader(
		p.cfg.ClinVar.AssertionFile, ix, diag,
	)
	if err != nil {
		return 0, diag, err
	}
	defer r.Close()

	batchSize := p.cfg.Database.BatchSize
	batch := make([]model.VariantAssociatedWithDisorder, 0, batchSize)
	var count int
	lastLogged := 0
	timeStart := time.Now().UnixNano()

	for r.Next() {
		for _, edge := range r.Edges() {
			batch = append(batch, edge)
			count++

			if len(batch) == batchSize {
				if err := p.sink.UpsertDisorderEdges(ctx, batch); err != nil {
					return count, diag, err
				}
				batch = batch[:0]
			}
		}

		if assertions := r.Assertions(); assertions-lastLogged >= 100_000 {
			lastLogged = assertions
			logProgress("assertions", assertions, timeStart)
		}
	}
	if err := r.Err(); err != nil {
		return count, diag, err
	}
	if err := p.sink.UpsertDisorderEdges(ctx, batch); err != nil {
		return count, diag, err
	}

	clearProgress()
	slog.Info("Disorder edges imported",
		"count", humanize.Comma(int64(count)),
		"assertions", humanize.Comma(int64(r.Assertions())),
	)
	return count, diag, nil
}

// logProgress writes a transient progress line for unbounded streams,
// where a progress bar has no total to work with.
func logProgress(entity string, count int, timeStart int64) {
	timeSpent := float64(time.Now().UnixNano()-timeStart) / 1_000_000_000
	speed := int64(float64(count) / timeSpent)
	fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 47))
	fmt.Fprintf(os.Stderr, "\rProcessed %s %s, %s/sec",
		humanize.Comma(int64(count)), entity, humanize.Comma(speed))
}

func clearProgress() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 47))
}
