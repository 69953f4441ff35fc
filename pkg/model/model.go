// Package model provides the entity and relationship records produced by
// ClinVar ingestion. Records are transient: each run builds them fresh and
// hands them to a store sink for upsert by primary identifier.
package model

// DataSourceClinVar marks records derived from ClinVar files.
const DataSourceClinVar = "clinvar"

// GenomicVariant is a variant node derived from one ClinVar VCF row.
type GenomicVariant struct {
	// PrimaryDomainID is the canonical identifier, e.g. "clinvar.12345".
	PrimaryDomainID string

	// DomainIDs lists all identifiers the variant is known by.
	// Always contains PrimaryDomainID; may add dbSNP rs-numbers.
	DomainIDs []string

	Chromosome string

	// Position is the 1-based coordinate on the chromosome.
	Position int

	ReferenceSequence   string
	AlternativeSequence string

	// VariantType is a human-readable category, e.g. "Single Nucleotide
	// Variant".
	VariantType string

	DataSources []string
}

// VariantAffectsGene links a variant to a gene it is annotated against.
type VariantAffectsGene struct {
	SourceDomainID string
	TargetDomainID string
	DataSources    []string
}

// VariantAssociatedWithDisorder links a variant to a disorder through a
// clinical assertion.
type VariantAssociatedWithDisorder struct {
	SourceDomainID string
	TargetDomainID string

	// Accession is the ClinVar accession of the reference assertion.
	Accession string

	// Effects holds clinical-significance labels in document order.
	Effects []string

	ReviewStatus string
	DataSources  []string
}
