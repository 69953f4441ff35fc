package ioclinvar

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/nedrex/nedrexdb/pkg/errcode"
)

// FileOpenError creates an error for a source file that cannot be opened
// or is not valid gzip.
func FileOpenError(path string, err error) error {
	msg := `Cannot open ClinVar source file

<em>Path:</em> %s

<em>Possible causes:</em>
  - File not downloaded
  - File truncated or not gzip-compressed`

	return &gn.Error{
		Code: errcode.ClinVarFileOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// RowError creates an error for a data row with too few columns.
func RowError(line, fields int) error {
	msg := `Malformed row in variant file

<em>Line:</em> %d
<em>Columns found:</em> %d (expected %d)`

	return &gn.Error{
		Code: errcode.ClinVarRowError,
		Msg:  msg,
		Vars: []any{line, fields, vcfColumnCount},
		Err: fmt.Errorf(
			"line %d: %d columns, want %d", line, fields, vcfColumnCount,
		),
	}
}

// ReadError creates an error for a failed read mid-stream, e.g. a
// truncated gzip member.
func ReadError(line int, err error) error {
	msg := `Cannot read variant file

<em>Near line:</em> %d`

	return &gn.Error{
		Code: errcode.ClinVarFileOpenError,
		Msg:  msg,
		Vars: []any{line},
		Err:  fmt.Errorf("read failed near line %d: %w", line, err),
	}
}

// MissingFieldError creates an error for a required INFO sub-field that is
// absent. This aborts the tabular pass: there is no fallback value.
func MissingFieldError(field, variantID string) error {
	msg := `Required INFO sub-field is missing

<em>Field:</em> %s
<em>Variant:</em> %s`

	return &gn.Error{
		Code: errcode.ClinVarMissingFieldError,
		Msg:  msg,
		Vars: []any{field, variantID},
		Err:  fmt.Errorf("%s: missing INFO field %s", variantID, field),
	}
}

// BadPositionError creates an error for a POS column that is not an
// integer.
func BadPositionError(variantID, pos string) error {
	msg := `Variant position is not an integer

<em>Variant:</em> %s
<em>Position:</em> %q`

	return &gn.Error{
		Code: errcode.ClinVarRowError,
		Msg:  msg,
		Vars: []any{variantID, pos},
		Err:  fmt.Errorf("%s: bad position %q", variantID, pos),
	}
}

// XMLError creates an error for a malformed assertion document.
func XMLError(err error) error {
	msg := "Cannot decode clinical-assertion XML document"

	return &gn.Error{
		Code: errcode.ClinVarXMLError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("xml decode failed: %w", err),
	}
}
