package ioclinvar

import (
	"compress/gzip"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/nedrex/nedrexdb/pkg/index"
	"github.com/nedrex/nedrexdb/pkg/model"
)

// XML shapes for one ClinVarSet element. Only the fields the ingestion
// touches are declared; everything else in the subtree is discarded by the
// decoder.
type clinVarSet struct {
	Reference referenceAssertion `xml:"ReferenceClinVarAssertion"`
}

type referenceAssertion struct {
	MeasureSet   *measureSet          `xml:"MeasureSet"`
	TraitSets    []traitSet           `xml:"TraitSet"`
	Significance clinicalSignificance `xml:"ClinicalSignificance"`
	Accession    clinVarAccession     `xml:"ClinVarAccession"`
}

type traitSet struct {
	Traits []trait `xml:"Trait"`
}

type measureSet struct {
	ID string `xml:"ID,attr"`
}

type trait struct {
	Type  string `xml:"Type,attr"`
	XRefs []xref `xml:"XRef"`
}

type xref struct {
	ID string `xml:"ID,attr"`
	DB string `xml:"DB,attr"`
}

type clinicalSignificance struct {
	Description  string `xml:"Description"`
	ReviewStatus string `xml:"ReviewStatus"`
}

type clinVarAccession struct {
	Acc string `xml:"Acc,attr"`
}

// AssertionReader streams variant-disorder edge candidates from the
// gzip-compressed clinical-assertion XML document. Assertions are decoded
// one ClinVarSet element at a time; the decoded subtree is the reader's
// only per-assertion allocation and is released before the next element is
// read, so memory stays bounded regardless of document size.
type AssertionReader struct {
	file  *os.File
	gz    *gzip.Reader
	dec   *xml.Decoder
	idx   *index.Index
	diag  *Diagnostics
	edges []model.VariantAssociatedWithDisorder
	count int
	err   error
}

// NewAssertionReader opens the assertion document. An absent or corrupt
// file fails here.
func NewAssertionReader(
	path string,
	ix *index.Index,
	diag *Diagnostics,
) (*AssertionReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, FileOpenError(path, err)
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, FileOpenError(path, err)
	}

	return &AssertionReader{
		file: file,
		gz:   gz,
		dec:  xml.NewDecoder(gz),
		idx:  ix,
		diag: diag,
	}, nil
}

// Next advances to the next assertion that produces at least one edge.
// Assertions without a MeasureSet, with an unknown variant id, or with no
// resolvable disorder are skipped. Returns false at end of document or on
// error; check Err afterwards.
func (r *AssertionReader) Next() bool {
	if r.err != nil {
		return false
	}
	for {
		tok, err := r.dec.Token()
		if errors.Is(err, io.EOF) {
			return false
		}
		if err != nil {
			r.err = XMLError(err)
			return false
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "ClinVarSet" {
			continue
		}

		var set clinVarSet
		if err := r.dec.DecodeElement(&set, &se); err != nil {
			r.err = XMLError(err)
			return false
		}
		r.count++

		if edges := r.process(&set); len(edges) > 0 {
			r.edges = edges
			return true
		}
	}
}

// Edges returns the edges produced by the last successful Next call.
func (r *AssertionReader) Edges() []model.VariantAssociatedWithDisorder {
	return r.edges
}

// Assertions returns the number of assertions decoded so far.
func (r *AssertionReader) Assertions() int {
	return r.count
}

// Err returns the first error encountered while streaming.
func (r *AssertionReader) Err() error {
	return r.err
}

// Close releases the underlying file.
func (r *AssertionReader) Close() error {
	gzErr := r.gz.Close()
	fileErr := r.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}

// process turns one decoded assertion into edge candidates. The known
// variant check runs first: it is the filter that keeps irrelevant
// assertions from any further work.
func (r *AssertionReader) process(
	set *clinVarSet,
) []model.VariantAssociatedWithDisorder {
	ms := set.Reference.MeasureSet
	if ms == nil {
		return nil
	}

	variantID := variantPrefix + ms.ID
	if !r.idx.HasVariant(variantID) {
		return nil
	}

	// Only the first TraitSet of the reference assertion is read. Each
	// Disease trait in it contributes its cross-references; the set
	// deduplicates disorders resolved through several domain ids.
	var traits []trait
	if len(set.Reference.TraitSets) > 0 {
		traits = set.Reference.TraitSets[0].Traits
	}
	resolved := make(map[string]struct{})
	for _, t := range traits {
		if t.Type != "Disease" {
			continue
		}
		for _, x := range t.XRefs {
			domainID, ok := mapDisorderXRef(x.ID, x.DB, r.diag)
			if !ok {
				continue
			}
			for _, primaryID := range r.idx.ResolveDisorder(domainID) {
				resolved[primaryID] = struct{}{}
			}
		}
	}
	if len(resolved) == 0 {
		return nil
	}

	effects := splitEffects(set.Reference.Significance.Description)
	reviewStatus := set.Reference.Significance.ReviewStatus
	accession := set.Reference.Accession.Acc

	edges := make([]model.VariantAssociatedWithDisorder, 0, len(resolved))
	for disorderID := range resolved {
		edges = append(edges, model.VariantAssociatedWithDisorder{
			SourceDomainID: variantID,
			TargetDomainID: disorderID,
			Accession:      accession,
			Effects:        effects,
			ReviewStatus:   reviewStatus,
			DataSources:    []string{model.DataSourceClinVar},
		})
	}
	return edges
}

// splitEffects turns the clinical-significance description into a list of
// trimmed labels.
func splitEffects(description string) []string {
	if description == "" {
		return nil
	}
	parts := strings.Split(description, ",")
	effects := make([]string, len(parts))
	for i, p := range parts {
		effects[i] = strings.TrimSpace(p)
	}
	return effects
}
