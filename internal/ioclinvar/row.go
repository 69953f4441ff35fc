package ioclinvar

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/nedrex/nedrexdb/pkg/model"
)

// Identifier namespace prefixes used by the graph.
const (
	variantPrefix = "clinvar."
	dbSNPPrefix   = "dbsnp."
	entrezPrefix  = "entrez."
)

// Row derives graph records from one decoded VCF row.
type Row struct {
	vcf *VCFRow
}

// NewRow wraps a decoded VCF row.
func NewRow(vcf *VCFRow) Row {
	return Row{vcf: vcf}
}

// Identifier returns the canonical variant id for the row.
func (r Row) Identifier() string {
	return variantPrefix + r.vcf.ID
}

// CrossReferenceIDs returns dbSNP ids from the RS sub-field, if any.
func (r Row) CrossReferenceIDs() []string {
	rs := r.vcf.Info["RS"]
	if rs == "" {
		return nil
	}
	parts := strings.Split(rs, "|")
	ids := make([]string, len(parts))
	for i, p := range parts {
		ids[i] = dbSNPPrefix + p
	}
	return ids
}

// VariantType returns the normalized variant class from the CLNVC
// sub-field. CLNVC is required: its absence aborts the tabular pass.
func (r Row) VariantType() (string, error) {
	vt, ok := r.vcf.Info["CLNVC"]
	if !ok {
		return "", MissingFieldError("CLNVC", r.Identifier())
	}
	return titleCase(strings.ReplaceAll(vt, "_", " ")), nil
}

// AssociatedGenes returns Entrez gene ids from the GENEINFO sub-field.
// GENEINFO holds pipe-delimited symbol:entrezId pairs.
func (r Row) AssociatedGenes() []string {
	geneInfo := r.vcf.Info["GENEINFO"]
	if geneInfo == "" {
		return nil
	}
	var ids []string
	for _, pair := range strings.Split(geneInfo, "|") {
		_, id, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		ids = append(ids, entrezPrefix+id)
	}
	return ids
}

// Variant builds the GenomicVariant record for the row.
func (r Row) Variant() (model.GenomicVariant, error) {
	var v model.GenomicVariant

	variantType, err := r.VariantType()
	if err != nil {
		return v, err
	}

	pos, err := strconv.Atoi(r.vcf.Pos)
	if err != nil {
		return v, BadPositionError(r.Identifier(), r.vcf.Pos)
	}

	id := r.Identifier()
	v = model.GenomicVariant{
		PrimaryDomainID:     id,
		DomainIDs:           append([]string{id}, r.CrossReferenceIDs()...),
		Chromosome:          r.vcf.Chrom,
		Position:            pos,
		ReferenceSequence:   r.vcf.Ref,
		AlternativeSequence: r.vcf.Alt,
		VariantType:         variantType,
		DataSources:         []string{model.DataSourceClinVar},
	}
	return v, nil
}

// GeneEdges builds one VariantAffectsGene candidate per associated gene.
// Candidates are unfiltered; membership in the known-gene set is checked
// by the orchestrator.
func (r Row) GeneEdges() []model.VariantAffectsGene {
	genes := r.AssociatedGenes()
	if len(genes) == 0 {
		return nil
	}
	edges := make([]model.VariantAffectsGene, len(genes))
	for i, gene := range genes {
		edges[i] = model.VariantAffectsGene{
			SourceDomainID: r.Identifier(),
			TargetDomainID: gene,
			DataSources:    []string{model.DataSourceClinVar},
		}
	}
	return edges
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest, e.g. "single nucleotide variant" becomes
// "Single Nucleotide Variant".
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
