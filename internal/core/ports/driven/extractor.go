package driven

import (
	"context"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// Extractor extracts plain text from one document format.
// Each supported format (PDF, Word) has its own implementation; the
// format set is closed, so dispatch happens on domain.Format rather
// than on extension strings.
type Extractor interface {
	// Format returns the document format this extractor handles.
	Format() domain.Format

	// Extract reads the file at path and returns its plain text.
	// Failures (corrupt file, password-protected, unsupported encoding)
	// are reported as a domain.ExtractionError so the scan can record
	// the document as failed and continue.
	Extract(ctx context.Context, path string) (string, error)
}
