// Package memory provides an in-memory synonym lexicon, used in tests
// and wherever a WordNet database is not available.
package memory

import "strings"

// Lexicon holds synonym sets keyed by lower-cased word. It implements
// driven.Lexicon.
type Lexicon struct {
	synonyms map[string][]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{synonyms: make(map[string][]string)}
}

// Add registers synonyms for word, appending to any existing set. The
// word itself becomes Known as a side effect.
func (l *Lexicon) Add(word string, synonyms ...string) {
	key := strings.ToLower(word)
	l.synonyms[key] = append(l.synonyms[key], synonyms...)
}

// Synonyms returns the registered synonyms for word.
func (l *Lexicon) Synonyms(word string) ([]string, error) {
	return l.synonyms[strings.ToLower(word)], nil
}

// Known reports whether word has an entry.
func (l *Lexicon) Known(word string) bool {
	_, ok := l.synonyms[strings.ToLower(word)]
	return ok
}
