// Package main provides the nedrexdb CLI application.
// nedrexdb ingests ClinVar data products into the NeDRex staging store.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
