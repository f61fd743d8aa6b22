package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidQuery indicates an empty or otherwise unusable query.
	// It is rejected before any scan starts.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrDirectoryUnreadable indicates the scan folder cannot be read.
	// This is fatal to the requested scan; no partial results are produced.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrExtraction indicates text extraction failed for a single document.
	// Per-document failures are recorded and the scan continues.
	ErrExtraction = errors.New("extraction failed")

	// ErrLexiconUnavailable indicates the synonym lexicon is not available.
	// Direct matching continues; synonym matches are silently unavailable.
	ErrLexiconUnavailable = errors.New("lexicon unavailable")

	// ErrUnsupportedFormat indicates no extractor handles the document format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// ExtractionError records a per-document extraction failure.
// It wraps ErrExtraction so callers can test with errors.Is.
type ExtractionError struct {
	// Path is the document that failed.
	Path string

	// Err is the underlying cause (corrupt file, encrypted, timeout).
	Err error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether this error matches ErrExtraction.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// NewExtractionError wraps a per-document failure.
func NewExtractionError(path string, err error) *ExtractionError {
	return &ExtractionError{Path: path, Err: err}
}
