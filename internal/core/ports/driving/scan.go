package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// ScanOptions configures a single scan.
type ScanOptions struct {
	// Recursive walks subdirectories of the selected folder.
	Recursive bool

	// CaseSensitive disables case folding during matching.
	CaseSensitive bool

	// Workers is the worker pool size. Zero selects the default
	// (half the CPUs, minimum one).
	Workers int

	// FileTimeout bounds extraction time per document. Zero selects
	// the default. A document that exceeds it is recorded as failed.
	FileTimeout time.Duration
}

// ResultHandler is invoked as each document's job completes, so a UI can
// update incrementally instead of waiting for the full scan. Handlers are
// called from worker goroutines one at a time.
type ResultHandler func(result domain.DocumentResult)

// ScanService runs keyword scans over a folder of documents.
type ScanService interface {
	// Scan enumerates the folder, extracts and matches every supported
	// document on a bounded worker pool, and returns the aggregate
	// report. onResult may be nil. Cancellation is cooperative via ctx.
	// An unreadable folder or empty query fails the whole scan; any
	// per-document failure is recorded in the report instead.
	Scan(ctx context.Context, folder, query string, opts ScanOptions, onResult ResultHandler) (*domain.ScanReport, error)

	// Watch signals changes to supported files under the folder so a UI
	// can mark displayed results stale.
	Watch(ctx context.Context, folder string) (<-chan string, error)
}

// LexiconService exposes lexicon lookups to the UI surfaces.
type LexiconService interface {
	// Synonyms returns the synonyms a single-word query would expand to.
	// Degrades to an empty set when the lexicon is unavailable.
	Synonyms(word string) []string

	// Known reports whether a word appears in the lexicon.
	// Returns true when the lexicon is unavailable, so no spurious
	// spelling warnings are shown.
	Known(word string) bool

	// Available reports whether a lexicon is configured and loaded.
	Available() bool
}
