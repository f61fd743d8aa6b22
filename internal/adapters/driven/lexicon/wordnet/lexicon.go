// Package wordnet provides a synonym lexicon backed by a local WordNet
// database directory.
package wordnet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fluhus/gostuff/nlp/wordnet"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
)

// Lexicon looks up synonyms and word membership in a parsed WordNet
// database. It implements driven.Lexicon.
type Lexicon struct {
	wn *wordnet.WordNet
}

// New parses the WordNet database under path (the directory containing
// the data.* and index.* files). A missing or unreadable database yields
// domain.ErrLexiconUnavailable.
func New(path string) (*Lexicon, error) {
	wn, err := wordnet.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrLexiconUnavailable, path, err)
	}
	return &Lexicon{wn: wn}, nil
}

// Synonyms returns every word sharing a synset with word, across all
// parts of speech. Multi-word entries have their underscores replaced
// with spaces. The result is deduplicated and sorted; the word itself
// may be included.
func (l *Lexicon) Synonyms(word string) ([]string, error) {
	results := l.wn.Search(strings.ToLower(word))

	seen := make(map[string]struct{})
	var synonyms []string
	for _, synsets := range results {
		for _, synset := range synsets {
			for _, entry := range synset.Word {
				name := strings.ReplaceAll(entry, "_", " ")
				key := strings.ToLower(name)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				synonyms = append(synonyms, name)
			}
		}
	}

	sort.Strings(synonyms)
	return synonyms, nil
}

// Known reports whether word appears in the database under any part of
// speech.
func (l *Lexicon) Known(word string) bool {
	return len(l.wn.Search(strings.ToLower(word))) > 0
}
