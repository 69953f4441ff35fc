package ioclinvar

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGzip writes content as a gzip file and returns its path.
func writeGzip(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

func TestVCFReader(t *testing.T) {
	content := "##fileformat=VCFv4.1\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"1\t1014042\t475283\tG\tA\t.\t.\t" +
		"RS=1553119057;CLNVC=single_nucleotide_variant;GENEINFO=ISG15:9636\n" +
		"\n" +
		"2\t31349647\t929885\tC\tT\t.\t.\tCLNVC=single_nucleotide_variant;DBVARID\n"

	path := writeGzip(t, "clinvar.vcf.gz", content)
	r, err := NewVCFReader(path)
	require.NoError(t, err)
	defer r.Close()

	require.True(t, r.Next())
	row := r.Row()
	assert.Equal(t, "1", row.Chrom)
	assert.Equal(t, "1014042", row.Pos)
	assert.Equal(t, "475283", row.ID)
	assert.Equal(t, "G", row.Ref)
	assert.Equal(t, "A", row.Alt)
	assert.Equal(t, "single_nucleotide_variant", row.Info["CLNVC"])
	assert.Equal(t, "ISG15:9636", row.Info["GENEINFO"])

	require.True(t, r.Next())
	row = r.Row()
	assert.Equal(t, "929885", row.ID)

	// DBVARID has no value: decoded as a flag with empty value.
	flag, ok := row.Info["DBVARID"]
	assert.True(t, ok)
	assert.Empty(t, flag)

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())
}

func TestVCFReaderMalformedRow(t *testing.T) {
	content := "1\t100\t42\tG\n"
	path := writeGzip(t, "bad.vcf.gz", content)

	r, err := NewVCFReader(path)
	require.NoError(t, err)
	defer r.Close()

	assert.False(t, r.Next())
	assert.Error(t, r.Err())
}

func TestVCFReaderOpenErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "absent file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.vcf.gz")
			},
		},
		{
			name: "not gzip",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "plain.vcf.gz")
				require.NoError(t,
					os.WriteFile(path, []byte("plain text"), 0644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVCFReader(tt.setup(t))
			assert.Error(t, err)
		})
	}
}

func TestDecodeInfo(t *testing.T) {
	tests := []struct {
		name string
		info string
		want map[string]string
	}{
		{
			name: "key value pairs",
			info: "RS=123;CLNVC=deletion",
			want: map[string]string{"RS": "123", "CLNVC": "deletion"},
		},
		{
			name: "flag key without value",
			info: "DBVARID;RS=123",
			want: map[string]string{"DBVARID": "", "RS": "123"},
		},
		{
			name: "value containing equals sign",
			info: "CLNDISDB=MONDO:MONDO:0014502",
			want: map[string]string{"CLNDISDB": "MONDO:MONDO:0014502"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeInfo(tt.info))
		})
	}
}
