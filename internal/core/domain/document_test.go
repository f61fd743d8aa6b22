package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path      string
		format    Format
		supported bool
	}{
		{"/docs/report.pdf", FormatPDF, true},
		{"/docs/REPORT.PDF", FormatPDF, true},
		{"/docs/notes.docx", FormatDocx, true},
		{"/docs/notes.Docx", FormatDocx, true},
		{"/docs/legacy.doc", FormatUnknown, false},
		{"/docs/readme.txt", FormatUnknown, false},
		{"/docs/noext", FormatUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, ok := FormatForPath(tt.path)
			assert.Equal(t, tt.supported, ok)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "pdf", FormatPDF.String())
	assert.Equal(t, "docx", FormatDocx.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestDocumentRef_Label(t *testing.T) {
	ref := DocumentRef{ID: "1", Path: "/deep/nested/annual_report.pdf", Format: FormatPDF}
	assert.Equal(t, "annual_report.pdf", ref.Label())
}

func TestNewDocumentResult_Counts(t *testing.T) {
	ref := DocumentRef{ID: "1", Path: "/docs/a.pdf", Format: FormatPDF}
	q := mustQuery(t, "report", false).WithSynonyms([]string{"account"})
	text := "report report account"

	result := NewDocumentResult(ref, text, q.Match(text))

	assert.Equal(t, 3, result.Count())
	assert.Equal(t, 2, result.CountDirect())
	assert.Equal(t, 1, result.CountSynonym())
	assert.Equal(t, 2, result.CountRestricted())
	assert.False(t, result.Failed())
}

func TestNewDocumentResult_TermsDeduplicated(t *testing.T) {
	ref := DocumentRef{ID: "1", Path: "/docs/a.pdf", Format: FormatPDF}
	q := mustQuery(t, "report", false).WithSynonyms([]string{"account"})
	text := "report account report account"

	result := NewDocumentResult(ref, text, q.Match(text))

	require.Len(t, result.Terms, 2)
	assert.Equal(t, MatchedTerm{Term: "report", Kind: MatchDirect}, result.Terms[0])
	assert.Equal(t, MatchedTerm{Term: "account", Kind: MatchSynonym}, result.Terms[1])
}

func TestNewDocumentResult_ZeroOccurrences(t *testing.T) {
	ref := DocumentRef{ID: "1", Path: "/docs/a.pdf", Format: FormatPDF}
	q := mustQuery(t, "report", false)

	result := NewDocumentResult(ref, "nothing relevant here", q.Match("nothing relevant here"))

	assert.Equal(t, 0, result.Count())
	assert.Empty(t, result.Terms)
	assert.False(t, result.Failed())
}

func TestNewFailedResult(t *testing.T) {
	ref := DocumentRef{ID: "1", Path: "/docs/broken.pdf", Format: FormatPDF}
	cause := NewExtractionError(ref.Path, errors.New("corrupt header"))

	result := NewFailedResult(ref, cause)

	assert.True(t, result.Failed())
	assert.ErrorIs(t, result.Err, ErrExtraction)
	assert.Equal(t, 0, result.Count())
	assert.Equal(t, "broken.pdf", result.Label())
}

func TestScanReport_Aggregates(t *testing.T) {
	q := mustQuery(t, "report", false).WithSynonyms([]string{"account"})
	report := NewScanReport(q)

	refA := DocumentRef{ID: "a", Path: "/docs/a.pdf", Format: FormatPDF}
	refB := DocumentRef{ID: "b", Path: "/docs/b.docx", Format: FormatDocx}
	refC := DocumentRef{ID: "c", Path: "/docs/c.pdf", Format: FormatPDF}

	textA := "report account"
	report.Results[refA.Path] = NewDocumentResult(refA, textA, q.Match(textA))
	report.Results[refB.Path] = NewDocumentResult(refB, "no hits", nil)
	report.Results[refC.Path] = NewFailedResult(refC, NewExtractionError(refC.Path, errors.New("boom")))

	assert.Equal(t, 3, report.Documents())
	assert.Equal(t, 1, report.Failures())
	assert.Equal(t, 2, report.TotalMatches(false))
	assert.Equal(t, 1, report.TotalMatches(true))
}

func TestExtractionError_Wrapping(t *testing.T) {
	cause := errors.New("password protected")
	err := NewExtractionError("/docs/a.pdf", cause)

	assert.ErrorIs(t, err, ErrExtraction)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/docs/a.pdf")
	assert.Contains(t, err.Error(), "password protected")
}
