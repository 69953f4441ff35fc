// Package ioclinvar implements streaming parsers for the two ClinVar data
// products: the gzip-compressed tab-separated variant file and the
// gzip-compressed clinical-assertion XML document. Both parsers are
// forward-only and keep memory bounded: the VCF reader holds one row, the
// assertion reader one decoded assertion subtree.
package ioclinvar

import (
	"bufio"
	"compress/gzip"
	"os"
	"strings"
)

// VCF columns in fixed order: CHROM, POS, ID, REF, ALT, QUAL, FILTER, INFO.
const vcfColumnCount = 8

// maxLineSize bounds a single VCF line. ClinVar INFO fields run long but
// stay far below this.
const maxLineSize = 16 * 1024 * 1024

// VCFRow is one decoded data row of the variant file.
type VCFRow struct {
	Chrom  string
	Pos    string
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string

	// Info holds the decoded INFO sub-fields. A value-less key (an INFO
	// flag) is present with an empty string value.
	Info map[string]string
}

// VCFReader streams data rows from a gzip-compressed variant file.
// Usage follows bufio.Scanner: Next/Row/Err, then Close. The stream is
// restartable only by opening a new reader.
type VCFReader struct {
	file *os.File
	gz   *gzip.Reader
	sc   *bufio.Scanner
	row  *VCFRow
	line int
	err  error
}

// NewVCFReader opens the variant file. An absent or corrupt file fails
// here, before any row is produced.
func NewVCFReader(path string) (*VCFReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, FileOpenError(path, err)
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, FileOpenError(path, err)
	}

	sc := bufio.NewScanner(gz)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &VCFReader{file: file, gz: gz, sc: sc}, nil
}

// Next advances to the next data row, skipping comment lines.
// It returns false at end of input or on error; check Err afterwards.
func (r *VCFReader) Next() bool {
	if r.err != nil {
		return false
	}
	for r.sc.Scan() {
		r.line++
		line := r.sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < vcfColumnCount {
			r.err = RowError(r.line, len(fields))
			return false
		}

		r.row = &VCFRow{
			Chrom:  fields[0],
			Pos:    fields[1],
			ID:     fields[2],
			Ref:    fields[3],
			Alt:    fields[4],
			Qual:   fields[5],
			Filter: fields[6],
			Info:   decodeInfo(fields[7]),
		}
		return true
	}
	if err := r.sc.Err(); err != nil {
		r.err = ReadError(r.line, err)
	}
	return false
}

// Row returns the row decoded by the last successful Next call.
func (r *VCFReader) Row() *VCFRow {
	return r.row
}

// Err returns the first error encountered while streaming.
func (r *VCFReader) Err() error {
	return r.err
}

// Close releases the underlying file.
func (r *VCFReader) Close() error {
	gzErr := r.gz.Close()
	fileErr := r.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}

// decodeInfo splits the INFO column into a key/value map. Pairs without
// "=" are INFO flags and decode to an empty value.
func decodeInfo(s string) map[string]string {
	info := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		info[key] = value
	}
	return info
}
