package domain

import (
	"sort"
	"unicode"
)

// MatchKind distinguishes direct hits from lexicon-derived hits.
type MatchKind int

const (
	// MatchDirect is an occurrence of the query term itself.
	MatchDirect MatchKind = iota

	// MatchSynonym is an occurrence of a lexicon-derived synonym.
	MatchSynonym
)

// String returns the string representation of the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchDirect:
		return "direct"
	case MatchSynonym:
		return "synonym"
	default:
		return "unknown"
	}
}

// Match is a single occurrence of a query term or synonym in a
// document's extracted text. Start and End are byte offsets.
type Match struct {
	// Term is the matched text as it appears in the document.
	Term string

	// Kind is direct or synonym.
	Kind MatchKind

	// Start is the byte offset of the first matched token.
	Start int

	// End is the byte offset just past the last matched token.
	End int
}

// token is a word token with its byte offsets in the source text.
type token struct {
	text  string
	start int
	end   int
}

// tokenize splits text into word tokens (letter/digit runs), keeping
// byte offsets so matches can be mapped back for highlighting.
func tokenize(text string) []token {
	var tokens []token
	start := -1

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{text: text[start:i], start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: text[start:], start: start, end: len(text)})
	}

	return tokens
}

// Match finds every occurrence of the query and its synonyms in text.
// Matching is whole-word: a single-word query matches individual tokens,
// and a phrase matches a contiguous token sequence. This replaces the
// unreliable substring behaviour for multi-word input with a precise
// definition. Results are ordered by position.
func (q Query) Match(text string) []Match {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	matches := q.matchTerm(text, tokens, q.Text, MatchDirect)
	for _, syn := range q.Synonyms {
		matches = append(matches, q.matchTerm(text, tokens, syn, MatchSynonym)...)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End > matches[j].End
	})

	return matches
}

// matchTerm finds whole-word occurrences of one term, which may itself
// be a multi-token phrase (WordNet collocations use underscores, which
// tokenize() treats as separators).
func (q Query) matchTerm(text string, tokens []token, term string, kind MatchKind) []Match {
	want := tokenize(term)
	if len(want) == 0 {
		return nil
	}

	folded := make([]string, len(want))
	for i, w := range want {
		folded[i] = q.fold(w.text)
	}

	var matches []Match
	for i := 0; i+len(folded) <= len(tokens); i++ {
		if !q.sequenceAt(tokens, i, folded) {
			continue
		}
		start := tokens[i].start
		end := tokens[i+len(folded)-1].end
		matches = append(matches, Match{
			Term:  text[start:end],
			Kind:  kind,
			Start: start,
			End:   end,
		})
	}

	return matches
}

// sequenceAt reports whether the folded token sequence occurs at index i.
func (q Query) sequenceAt(tokens []token, i int, folded []string) bool {
	for j, f := range folded {
		if q.fold(tokens[i+j].text) != f {
			return false
		}
	}
	return true
}
