package domain

import (
	"fmt"
	"strings"
)

// Query is a keyword or phrase to scan for, with optional synonyms
// derived from a lexicon lookup.
type Query struct {
	// Text is the keyword or phrase as entered, whitespace-trimmed.
	Text string

	// CaseSensitive disables case folding during matching.
	CaseSensitive bool

	// Synonyms holds lexicon-derived synonyms of a single-word query.
	// Phrase queries are never expanded.
	Synonyms []string
}

// NewQuery validates the query text and builds a Query.
// An empty or whitespace-only query is rejected with ErrInvalidQuery
// before any scan starts.
func NewQuery(text string, caseSensitive bool) (Query, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Query{}, fmt.Errorf("%w: query text is empty", ErrInvalidQuery)
	}

	return Query{Text: text, CaseSensitive: caseSensitive}, nil
}

// IsPhrase reports whether the query is a multi-word phrase.
// Phrases match as contiguous token sequences and are never
// expanded with synonyms.
func (q Query) IsPhrase() bool {
	return len(tokenize(q.Text)) > 1
}

// WithSynonyms returns a copy of the query carrying a synonym set.
// Synonyms matching the query itself (case-folded) are dropped so a
// direct occurrence is never double-counted as a synonym match.
func (q Query) WithSynonyms(synonyms []string) Query {
	if q.IsPhrase() {
		return q
	}

	kept := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if q.fold(s) == q.fold(q.Text) {
			continue
		}
		kept = append(kept, s)
	}

	out := q
	out.Synonyms = kept
	return out
}

// fold normalises a term per the case-sensitivity flag.
func (q Query) fold(s string) string {
	if q.CaseSensitive {
		return s
	}
	return strings.ToLower(s)
}
