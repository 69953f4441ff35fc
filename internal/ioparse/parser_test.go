package ioparse

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nedrex/nedrexdb/pkg/config"
	"github.com/nedrex/nedrexdb/pkg/model"
	"github.com/nedrex/nedrexdb/pkg/store"
)

type fakeReader struct {
	disorders []store.DisorderRef
	variants  []string
	genes     []string
}

func (f *fakeReader) ListDisorders(context.Context) ([]store.DisorderRef, error) {
	return f.disorders, nil
}

func (f *fakeReader) ListVariantIDs(context.Context) ([]string, error) {
	return f.variants, nil
}

func (f *fakeReader) ListGeneIDs(context.Context) ([]string, error) {
	return f.genes, nil
}

// fakeSink records everything handed to it, across batches.
type fakeSink struct {
	variants      []model.GenomicVariant
	geneEdges     []model.VariantAffectsGene
	disorderEdges []model.VariantAssociatedWithDisorder
	batches       int
}

func (f *fakeSink) UpsertVariants(
	_ context.Context, recs []model.GenomicVariant,
) error {
	f.variants = append(f.variants, recs...)
	f.batches++
	return nil
}

func (f *fakeSink) UpsertGeneEdges(
	_ context.Context, recs []model.VariantAffectsGene,
) error {
	f.geneEdges = append(f.geneEdges, recs...)
	f.batches++
	return nil
}

func (f *fakeSink) UpsertDisorderEdges(
	_ context.Context, recs []model.VariantAssociatedWithDisorder,
) error {
	f.disorderEdges = append(f.disorderEdges, recs...)
	f.batches++
	return nil
}

// fakeStore is a reader/sink pair whose reads see earlier writes, like
// the real database: variant ids upserted by pass 1 show up in later
// ListVariantIDs scans.
type fakeStore struct {
	fakeReader
	fakeSink
}

func (f *fakeStore) UpsertVariants(
	ctx context.Context, recs []model.GenomicVariant,
) error {
	for _, rec := range recs {
		f.fakeReader.variants = append(
			f.fakeReader.variants, rec.PrimaryDomainID,
		)
	}
	return f.fakeSink.UpsertVariants(ctx, recs)
}

func writeGzip(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

const variantFixture = "##fileformat=VCFv4.1\n" +
	"1\t1014042\t475283\tG\tA\t.\t.\t" +
	"RS=1553119057;CLNVC=single_nucleotide_variant;GENEINFO=ISG15:9636\n" +
	"17\t43045703\t55407\tG\tA\t.\t.\t" +
	"CLNVC=deletion;GENEINFO=BRCA1:672|TP53:7157\n"

const assertionFixture = `<ReleaseSet>
  <ClinVarSet>
    <ReferenceClinVarAssertion>
      <ClinVarAccession Acc="RCV000019244"/>
      <ClinicalSignificance>
        <ReviewStatus>reviewed by expert panel</ReviewStatus>
        <Description>Pathogenic</Description>
      </ClinicalSignificance>
      <MeasureSet ID="55407"/>
      <TraitSet Type="Disease">
        <Trait Type="Disease">
          <XRef ID="MONDO:0005044" DB="MONDO"/>
        </Trait>
      </TraitSet>
    </ReferenceClinVarAssertion>
  </ClinVarSet>
</ReleaseSet>`

func testConfig(t *testing.T, batchSize int) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New(
		config.OptClinVarVariantFile(
			writeGzip(t, dir, "clinvar.vcf.gz", variantFixture)),
		config.OptClinVarAssertionFile(
			writeGzip(t, dir, "release.xml.gz", assertionFixture)),
		config.OptDatabaseBatchSize(batchSize),
	)
	return cfg
}

func testStoreReader() *fakeReader {
	return &fakeReader{
		disorders: []store.DisorderRef{
			{
				PrimaryDomainID: "mondo.0005044",
				DomainIDs:       []string{"mondo.0005044"},
			},
		},
		variants: []string{"clinvar.55407"},
		genes:    []string{"entrez.672"},
	}
}

func TestParse(t *testing.T) {
	sink := &fakeSink{}
	p := New(testConfig(t, 1000), testStoreReader(), sink)

	require.NoError(t, p.Parse(context.Background()))

	// Pass 1: every row becomes a variant, unfiltered.
	require.Len(t, sink.variants, 2)
	assert.Equal(t, "clinvar.475283", sink.variants[0].PrimaryDomainID)
	assert.Equal(t, "clinvar.55407", sink.variants[1].PrimaryDomainID)
	assert.Contains(t,
		sink.variants[0].DomainIDs, "dbsnp.1553119057")

	// Pass 2: only edges to known genes survive.
	require.Len(t, sink.geneEdges, 1)
	assert.Equal(t, "clinvar.55407", sink.geneEdges[0].SourceDomainID)
	assert.Equal(t, "entrez.672", sink.geneEdges[0].TargetDomainID)

	// Pass 3: the matching assertion resolves to one disorder.
	require.Len(t, sink.disorderEdges, 1)
	edge := sink.disorderEdges[0]
	assert.Equal(t, "clinvar.55407", edge.SourceDomainID)
	assert.Equal(t, "mondo.0005044", edge.TargetDomainID)
	assert.Equal(t, "RCV000019244", edge.Accession)
	assert.Equal(t, []string{"Pathogenic"}, edge.Effects)
}

func TestParseColdStoreEmitsDisorderEdges(t *testing.T) {
	// Empty variant catalog at the start of the run: the assertion pass
	// must still see the variants pass 1 wrote moments earlier.
	st := &fakeStore{
		fakeReader: fakeReader{
			disorders: []store.DisorderRef{
				{
					PrimaryDomainID: "mondo.0005044",
					DomainIDs:       []string{"mondo.0005044"},
				},
			},
			genes: []string{"entrez.672"},
		},
	}
	p := New(testConfig(t, 1000), st, st)

	require.NoError(t, p.Parse(context.Background()))

	require.Len(t, st.fakeSink.variants, 2)
	require.Len(t, st.disorderEdges, 1)
	assert.Equal(t, "clinvar.55407", st.disorderEdges[0].SourceDomainID)
	assert.Equal(t, "mondo.0005044", st.disorderEdges[0].TargetDomainID)
}

func TestParseBatchSizeDoesNotChangeRecords(t *testing.T) {
	small := &fakeSink{}
	p := New(testConfig(t, 1), testStoreReader(), small)
	require.NoError(t, p.Parse(context.Background()))

	large := &fakeSink{}
	p = New(testConfig(t, 1000), testStoreReader(), large)
	require.NoError(t, p.Parse(context.Background()))

	assert.Greater(t, small.batches, large.batches)
	assert.Equal(t, large.variants, small.variants)
	assert.Equal(t, large.geneEdges, small.geneEdges)
	assert.Equal(t, large.disorderEdges, small.disorderEdges)
}

func TestParseIsRepeatable(t *testing.T) {
	first := &fakeSink{}
	p := New(testConfig(t, 1000), testStoreReader(), first)
	require.NoError(t, p.Parse(context.Background()))

	second := &fakeSink{}
	p = New(testConfig(t, 1000), testStoreReader(), second)
	require.NoError(t, p.Parse(context.Background()))

	assert.Equal(t, first.variants, second.variants)
	assert.Equal(t, first.geneEdges, second.geneEdges)
	assert.Equal(t, first.disorderEdges, second.disorderEdges)
}

func TestParseMissingVariantTypeIsFatal(t *testing.T) {
	dir := t.TempDir()
	noCLNVC := "1\t100\t42\tG\tA\t.\t.\tRS=1\n"
	cfg := config.New(
		config.OptClinVarVariantFile(
			writeGzip(t, dir, "clinvar.vcf.gz", noCLNVC)),
		config.OptClinVarAssertionFile(
			writeGzip(t, dir, "release.xml.gz", assertionFixture)),
	)

	sink := &fakeSink{}
	p := New(cfg, testStoreReader(), sink)
	err := p.Parse(context.Background())

	require.Error(t, err)
	// The run aborted before any later pass could emit edges.
	assert.Empty(t, sink.geneEdges)
	assert.Empty(t, sink.disorderEdges)
}

func TestParseMissingSourceFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New(
		config.OptClinVarVariantFile(
			filepath.Join(dir, "missing.vcf.gz")),
		config.OptClinVarAssertionFile(
			writeGzip(t, dir, "release.xml.gz", assertionFixture)),
	)

	p := New(cfg, testStoreReader(), &fakeSink{})
	assert.Error(t, p.Parse(context.Background()))
}
