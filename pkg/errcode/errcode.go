package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBQueryError
	DBUpsertError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// ClinVar parsing errors
	ClinVarFileOpenError
	ClinVarRowError
	ClinVarMissingFieldError
	ClinVarXMLError
)
