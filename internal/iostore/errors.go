package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/nedrex/nedrexdb/pkg/errcode"
)

// NotConnectedError creates an error for store access without a database
// connection.
func NotConnectedError() error {
	msg := "Store access attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Vars: nil,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError creates an error for a failed catalog scan.
func QueryError(table string, err error) error {
	msg := "Cannot read <em>%s</em> from the store"

	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("query on %s failed: %w", table, err),
	}
}

// UpsertError creates an error for a failed batch upsert.
func UpsertError(table string, batchLen int, err error) error {
	msg := `Cannot upsert records into <em>%s</em>

<em>Batch size:</em> %d`

	return &gn.Error{
		Code: errcode.DBUpsertError,
		Msg:  msg,
		Vars: []any{table, batchLen},
		Err:  fmt.Errorf("upsert of %d records into %s failed: %w", batchLen, table, err),
	}
}
