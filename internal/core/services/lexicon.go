package services

import (
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wordfind-cli/internal/logger"
)

// Ensure LexiconService implements the interface.
var _ driving.LexiconService = (*LexiconService)(nil)

// LexiconService wraps the synonym lexicon for the UI surfaces,
// degrading gracefully when no dataset is configured.
type LexiconService struct {
	lexicon driven.Lexicon
}

// NewLexiconService creates a new lexicon service.
// The lexicon parameter is optional (can be nil).
func NewLexiconService(lexicon driven.Lexicon) *LexiconService {
	return &LexiconService{lexicon: lexicon}
}

// Available reports whether a lexicon is configured and loaded.
func (s *LexiconService) Available() bool {
	return s.lexicon != nil
}

// Synonyms returns the synonyms a single-word query would expand to.
func (s *LexiconService) Synonyms(word string) []string {
	if s.lexicon == nil {
		return nil
	}

	synonyms, err := s.lexicon.Synonyms(word)
	if err != nil {
		logger.Warn("Lexicon lookup failed for %q: %v", word, err)
		return nil
	}
	return synonyms
}

// Known reports whether a word appears in the lexicon. When the lexicon
// is unavailable every word counts as known, so callers never show a
// spelling warning they cannot back up.
func (s *LexiconService) Known(word string) bool {
	if s.lexicon == nil {
		return true
	}
	return s.lexicon.Known(word)
}
