package ioclinvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(info map[string]string) Row {
	return NewRow(&VCFRow{
		Chrom: "17",
		Pos:   "43045703",
		ID:    "55407",
		Ref:   "G",
		Alt:   "A",
		Info:  info,
	})
}

func TestRowIdentifier(t *testing.T) {
	row := testRow(nil)
	assert.Equal(t, "clinvar.55407", row.Identifier())
}

func TestRowCrossReferenceIDs(t *testing.T) {
	tests := []struct {
		name string
		info map[string]string
		want []string
	}{
		{
			name: "two rs numbers",
			info: map[string]string{"RS": "80358981|80358982"},
			want: []string{"dbsnp.80358981", "dbsnp.80358982"},
		},
		{
			name: "single rs number",
			info: map[string]string{"RS": "80358981"},
			want: []string{"dbsnp.80358981"},
		},
		{
			name: "absent",
			info: map[string]string{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testRow(tt.info).CrossReferenceIDs())
		})
	}
}

func TestRowVariantType(t *testing.T) {
	tests := []struct {
		name    string
		info    map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "underscores and casing normalized",
			info: map[string]string{"CLNVC": "single_nucleotide_variant"},
			want: "Single Nucleotide Variant",
		},
		{
			name: "single word",
			info: map[string]string{"CLNVC": "Deletion"},
			want: "Deletion",
		},
		{
			name:    "missing CLNVC is fatal",
			info:    map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := testRow(tt.info).VariantType()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRowAssociatedGenes(t *testing.T) {
	tests := []struct {
		name string
		info map[string]string
		want []string
	}{
		{
			name: "two genes",
			info: map[string]string{"GENEINFO": "BRCA1:672|TP53:7157"},
			want: []string{"entrez.672", "entrez.7157"},
		},
		{
			name: "absent",
			info: map[string]string{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testRow(tt.info).AssociatedGenes())
		})
	}
}

func TestRowVariant(t *testing.T) {
	row := testRow(map[string]string{
		"CLNVC":    "single_nucleotide_variant",
		"RS":       "80358981|80358982",
		"GENEINFO": "BRCA1:672",
	})

	v, err := row.Variant()
	require.NoError(t, err)

	assert.Equal(t, "clinvar.55407", v.PrimaryDomainID)
	assert.Equal(t,
		[]string{"clinvar.55407", "dbsnp.80358981", "dbsnp.80358982"},
		v.DomainIDs,
	)
	assert.Contains(t, v.DomainIDs, v.PrimaryDomainID)
	assert.Equal(t, "17", v.Chromosome)
	assert.Equal(t, 43045703, v.Position)
	assert.Equal(t, "G", v.ReferenceSequence)
	assert.Equal(t, "A", v.AlternativeSequence)
	assert.Equal(t, "Single Nucleotide Variant", v.VariantType)
	assert.Equal(t, []string{"clinvar"}, v.DataSources)
}

func TestRowVariantErrors(t *testing.T) {
	// Missing CLNVC.
	_, err := testRow(nil).Variant()
	assert.Error(t, err)

	// Non-integer position.
	row := NewRow(&VCFRow{
		Pos: "not-a-number",
		ID:  "1",
		Info: map[string]string{
			"CLNVC": "deletion",
		},
	})
	_, err = row.Variant()
	assert.Error(t, err)
}

func TestRowGeneEdges(t *testing.T) {
	row := testRow(map[string]string{"GENEINFO": "BRCA1:672|TP53:7157"})
	edges := row.GeneEdges()

	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.Equal(t, "clinvar.55407", e.SourceDomainID)
		assert.Equal(t, []string{"clinvar"}, e.DataSources)
	}
	assert.Equal(t, "entrez.672", edges[0].TargetDomainID)
	assert.Equal(t, "entrez.7157", edges[1].TargetDomainID)

	assert.Empty(t, testRow(nil).GeneEdges())
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"single nucleotide variant", "Single Nucleotide Variant"},
		{"DELETION", "Deletion"},
		{"copy number gain", "Copy Number Gain"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in))
	}
}
