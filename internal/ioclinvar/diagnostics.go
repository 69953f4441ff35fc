package ioclinvar

import (
	"log/slog"
)

// Diagnostics collects non-fatal resolution events during an ingestion
// run so they are observable by callers instead of only printed. It is
// not safe for concurrent use; ingestion is single-threaded.
type Diagnostics struct {
	unmappedTags map[string]int
}

// NewDiagnostics creates an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{unmappedTags: make(map[string]int)}
}

// UnmappedTag records a cross-reference database tag that has no handler.
// The first sighting of each tag is also logged as a warning.
func (d *Diagnostics) UnmappedTag(tag string) {
	if d.unmappedTags[tag] == 0 {
		slog.Warn("Database tag given without handler", "db", tag)
	}
	d.unmappedTags[tag]++
}

// UnmappedTags returns a copy of the tag counts.
func (d *Diagnostics) UnmappedTags() map[string]int {
	out := make(map[string]int, len(d.unmappedTags))
	for tag, n := range d.unmappedTags {
		out[tag] = n
	}
	return out
}
