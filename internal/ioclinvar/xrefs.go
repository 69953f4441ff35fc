package ioclinvar

import (
	"strings"
)

// ignoredXRefDBs lists cross-reference database tags that intentionally
// have no disorder mapping. They are skipped without a warning.
var ignoredXRefDBs = map[string]struct{}{
	"Human Phenotype Ontology": {},
	"EFO":                      {},
	"Gene":                     {},
	"MedGen":                   {},
}

// mapDisorderXRef translates a trait cross-reference (id plus database
// tag) to a disorder domain id. It returns false when the tag carries no
// mapping; tags that are neither mapped nor on the ignore list are
// recorded in diag.
func mapDisorderXRef(id, db string, diag *Diagnostics) (string, bool) {
	switch db {
	case "MONDO":
		return "mondo." + strings.TrimPrefix(id, "MONDO:"), true
	case "OMIM":
		return "omim." + id, true
	case "Orphanet":
		return "orphanet." + id, true
	case "MeSH":
		return "mesh." + id, true
	}
	if _, ok := ignoredXRefDBs[db]; !ok {
		diag.UnmappedTag(db)
	}
	return "", false
}
