package dict

import "github.com/heartmarshall/yomigen/internal/domain"

// Request names the combinations one pipeline run builds: every listed
// edition paired with the same source and target language.
type Request struct {
	Editions []domain.Edition
	Source   domain.Lang
	Target   domain.Lang
}

// Options tunes a single pipeline run. The zero value runs the full
// scan with no filtering and no diagnostics.
type Options struct {
	// First stops the run after this many accepted records across all
	// editions. Zero means no limit.
	First int

	// Rules is the global record filter, applied before the kind's own
	// selection. Nil accepts everything.
	Rules *Rules

	// Diagnostics receives per-tag accept/reject outcomes. Nil disables
	// collection.
	Diagnostics *Diagnostics

	// Progress, when set, is called with the cumulative scanned record
	// count at a fixed interval.
	Progress func(records int)
}
