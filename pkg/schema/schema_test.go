package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nedrex/nedrexdb/pkg/schema"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 5)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "disorders", schema.Disorder{}.TableName())
	assert.Equal(t, "genes", schema.Gene{}.TableName())
	assert.Equal(t, "genomic_variants", schema.GenomicVariant{}.TableName())
	assert.Equal(t, "variant_affects_gene",
		schema.VariantAffectsGene{}.TableName())
	assert.Equal(t, "variant_associated_with_disorder",
		schema.VariantAssociatedWithDisorder{}.TableName())
}
