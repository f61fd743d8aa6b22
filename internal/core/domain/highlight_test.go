package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHighlight_DirectAndSynonym(t *testing.T) {
	q := mustQuery(t, "report", false).WithSynonyms([]string{"account"})
	text := "the report and the account"
	matches := q.Match(text)

	segments := Highlight(text, matches, false)

	// Segments reassemble to the original text.
	assert.Equal(t, text, joinSegments(segments))

	kinds := make([]SegmentKind, 0, len(segments))
	for _, s := range segments {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SegmentKind{
		SegmentPlain, SegmentDirect, SegmentPlain, SegmentSynonym,
	}, kinds)
}

func TestHighlight_Restrict(t *testing.T) {
	q := mustQuery(t, "report", false).WithSynonyms([]string{"account"})
	text := "the report and the account"
	matches := q.Match(text)

	segments := Highlight(text, matches, true)

	// Restrict mode keeps the full text but renders no synonym spans.
	assert.Equal(t, text, joinSegments(segments))
	for _, s := range segments {
		assert.NotEqual(t, SegmentSynonym, s.Kind)
	}
}

func TestHighlight_NoMatches(t *testing.T) {
	segments := Highlight("nothing here", nil, false)

	require.Len(t, segments, 1)
	assert.Equal(t, SegmentPlain, segments[0].Kind)
	assert.Equal(t, "nothing here", segments[0].Text)
}

func TestHighlight_EmptyText(t *testing.T) {
	assert.Empty(t, Highlight("", nil, false))
}

func TestHighlight_OverlappingMatchesKeepEarliest(t *testing.T) {
	text := "news report"
	matches := []Match{
		{Term: "news report", Kind: MatchSynonym, Start: 0, End: 11},
		{Term: "report", Kind: MatchDirect, Start: 5, End: 11},
	}

	segments := Highlight(text, matches, false)

	require.Len(t, segments, 1)
	assert.Equal(t, SegmentSynonym, segments[0].Kind)
	assert.Equal(t, text, joinSegments(segments))
}

func TestExcerpts_OnlyMatchedLines(t *testing.T) {
	q := mustQuery(t, "report", false)
	text := "first line\nthe report line\nlast line"
	matches := q.Match(text)

	excerpts := Excerpts(text, matches, false)

	require.Len(t, excerpts, 1)
	assert.Equal(t, 1, excerpts[0].Line)
	assert.Equal(t, "the report line", joinSegments(excerpts[0].Segments))
}

func TestExcerpts_RestrictOmitsSynonymOnlyLines(t *testing.T) {
	q := mustQuery(t, "report", false).WithSynonyms([]string{"account"})
	text := "the report\nthe account"
	matches := q.Match(text)

	excerpts := Excerpts(text, matches, true)

	require.Len(t, excerpts, 1)
	assert.Equal(t, 0, excerpts[0].Line)
}

func TestExcerpts_NoMatches(t *testing.T) {
	assert.Empty(t, Excerpts("some text", nil, false))
}

func TestExcerpts_PhraseAcrossNewlineKeepsLeadingPortion(t *testing.T) {
	q := mustQuery(t, "annual report", false)
	text := "the annual\nreport arrived"
	matches := q.Match(text)
	require.Len(t, matches, 1)

	excerpts := Excerpts(text, matches, false)

	// The span crosses the line break; its leading portion still
	// highlights on the first line instead of vanishing.
	require.Len(t, excerpts, 1)
	assert.Equal(t, 0, excerpts[0].Line)

	var direct []string
	for _, s := range excerpts[0].Segments {
		if s.Kind == SegmentDirect {
			direct = append(direct, s.Text)
		}
	}
	assert.Equal(t, []string{"annual"}, direct)
}

func TestExcerpts_MultipleMatchesOneLine(t *testing.T) {
	q := mustQuery(t, "report", false)
	text := "report after report"
	matches := q.Match(text)

	excerpts := Excerpts(text, matches, false)

	require.Len(t, excerpts, 1)
	direct := 0
	for _, s := range excerpts[0].Segments {
		if s.Kind == SegmentDirect {
			direct++
		}
	}
	assert.Equal(t, 2, direct)
}
