package driven

// Lexicon looks up synonyms in a pre-downloaded dataset (WordNet).
// Implementations load the dataset once at construction; a missing or
// broken dataset surfaces as domain.ErrLexiconUnavailable there, and
// callers degrade to direct-only matching.
type Lexicon interface {
	// Synonyms returns the lexicon's synonyms for a single word.
	// The word itself may appear in the result; callers filter it.
	Synonyms(word string) ([]string, error)

	// Known reports whether the word appears in the lexicon at all.
	// Used to warn about likely misspelt queries.
	Known(word string) bool
}
