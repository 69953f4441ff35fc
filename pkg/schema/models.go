// Package schema provides database schema models for the NeDRex staging
// store. Column types are declared explicitly so that list-valued fields
// map to PostgreSQL text[] columns; all reads and writes go through pgx,
// GORM is used for migration only.
package schema

// Disorder stores a disorder node with its external domain identifiers.
// Disorders are loaded by other parsers; ClinVar ingestion only reads them.
type Disorder struct {
	// PrimaryDomainID is the canonical identifier, e.g. "mondo.0005044".
	PrimaryDomainID string `gorm:"column:primary_domain_id;primaryKey;type:varchar(64)"`

	// DomainIDs lists all identifiers the disorder is known by.
	DomainIDs []string `gorm:"column:domain_ids;type:text[]"`

	DataSources []string `gorm:"column:data_sources;type:text[]"`
}

func (Disorder) TableName() string { return "disorders" }

// Gene stores a gene node. Only the primary identifier is consumed here.
type Gene struct {
	// PrimaryDomainID is the canonical identifier, e.g. "entrez.672".
	PrimaryDomainID string `gorm:"column:primary_domain_id;primaryKey;type:varchar(64)"`

	DomainIDs   []string `gorm:"column:domain_ids;type:text[]"`
	DataSources []string `gorm:"column:data_sources;type:text[]"`
}

func (Gene) TableName() string { return "genes" }

// GenomicVariant stores a variant node derived from ClinVar.
type GenomicVariant struct {
	PrimaryDomainID string `gorm:"column:primary_domain_id;primaryKey;type:varchar(64)"`

	DomainIDs []string `gorm:"column:domain_ids;type:text[]"`

	Chromosome string `gorm:"column:chromosome;type:varchar(8)"`

	// Position is the 1-based coordinate on the chromosome.
	Position int64 `gorm:"column:position;type:bigint"`

	ReferenceSequence   string `gorm:"column:reference_sequence;type:text"`
	AlternativeSequence string `gorm:"column:alternative_sequence;type:text"`

	VariantType string `gorm:"column:variant_type;type:varchar(64)"`

	DataSources []string `gorm:"column:data_sources;type:text[]"`
}

func (GenomicVariant) TableName() string { return "genomic_variants" }

// VariantAffectsGene stores a variant-gene relationship.
type VariantAffectsGene struct {
	SourceDomainID string `gorm:"column:source_domain_id;primaryKey;type:varchar(64)"`
	TargetDomainID string `gorm:"column:target_domain_id;primaryKey;type:varchar(64)"`

	DataSources []string `gorm:"column:data_sources;type:text[]"`
}

func (VariantAffectsGene) TableName() string { return "variant_affects_gene" }

// VariantAssociatedWithDisorder stores a variant-disorder relationship
// carried by a clinical assertion.
type VariantAssociatedWithDisorder struct {
	SourceDomainID string `gorm:"column:source_domain_id;primaryKey;type:varchar(64)"`
	TargetDomainID string `gorm:"column:target_domain_id;primaryKey;type:varchar(64)"`

	Accession string `gorm:"column:accession;type:varchar(32)"`

	// Effects holds clinical-significance labels in document order.
	Effects []string `gorm:"column:effects;type:text[]"`

	ReviewStatus string `gorm:"column:review_status;type:varchar(128)"`

	DataSources []string `gorm:"column:data_sources;type:text[]"`
}

func (VariantAssociatedWithDisorder) TableName() string {
	return "variant_associated_with_disorder"
}
