package services

import (
	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
)

// ExtractorRegistry resolves the extractor for a document format.
// The format set is closed, so this is a simple fixed mapping built at
// startup rather than a priority-ordered lookup.
type ExtractorRegistry struct {
	extractors map[domain.Format]driven.Extractor
}

// NewExtractorRegistry creates a registry with the given extractors.
// A later registration for the same format replaces the earlier one.
func NewExtractorRegistry(extractors ...driven.Extractor) *ExtractorRegistry {
	r := &ExtractorRegistry{
		extractors: make(map[domain.Format]driven.Extractor, len(extractors)),
	}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor for its format.
func (r *ExtractorRegistry) Register(e driven.Extractor) {
	r.extractors[e.Format()] = e
}

// For returns the extractor handling the format.
func (r *ExtractorRegistry) For(format domain.Format) (driven.Extractor, bool) {
	e, ok := r.extractors[format]
	return e, ok
}

// Formats returns the formats with a registered extractor.
func (r *ExtractorRegistry) Formats() []domain.Format {
	formats := make([]domain.Format, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	return formats
}
