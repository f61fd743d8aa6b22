package domain

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
// The set is closed: format dispatch happens here rather than on
// extension strings scattered through the codebase.
type Format int

const (
	// FormatUnknown is an unrecognised format.
	FormatUnknown Format = iota

	// FormatPDF is a PDF document.
	FormatPDF

	// FormatDocx is a Word (OOXML) document.
	FormatDocx
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatDocx:
		return "docx"
	default:
		return "unknown"
	}
}

// FormatForPath detects the format from a file extension.
// Returns FormatUnknown and false for unsupported extensions.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, true
	case ".docx":
		return FormatDocx, true
	default:
		return FormatUnknown, false
	}
}

// DocumentRef identifies a document discovered during enumeration.
// The extracted text is owned by the processing job for the file and is
// not stored on the ref; nothing persists across separate scans.
type DocumentRef struct {
	// ID is the unique identifier for this ref within a scan.
	ID string

	// Path is the absolute file path.
	Path string

	// Format is the detected document format.
	Format Format
}

// Label returns the human-readable document name (the base filename).
func (r DocumentRef) Label() string {
	return filepath.Base(r.Path)
}

// DocumentResult is the per-document result summary: occurrence count,
// matched terms with kind, and a document-name label. A failed extraction
// produces a result with Err set and no matches.
type DocumentResult struct {
	// Ref is the document this result belongs to.
	Ref DocumentRef

	// Text is the extracted plain text the matches refer to.
	Text string

	// Matches holds every occurrence found, ordered by position.
	Matches []Match

	// Terms is the de-duplicated list of matched terms with kind.
	Terms []MatchedTerm

	// Err records a per-document extraction failure, if any.
	Err error
}

// MatchedTerm is a term that occurred at least once, with its match kind.
type MatchedTerm struct {
	Term string
	Kind MatchKind
}

// NewDocumentResult builds a result summary from a document's matches.
func NewDocumentResult(ref DocumentRef, text string, matches []Match) DocumentResult {
	seen := make(map[MatchedTerm]struct{}, len(matches))
	terms := make([]MatchedTerm, 0, len(matches))
	for _, m := range matches {
		mt := MatchedTerm{Term: m.Term, Kind: m.Kind}
		if _, ok := seen[mt]; ok {
			continue
		}
		seen[mt] = struct{}{}
		terms = append(terms, mt)
	}

	return DocumentResult{
		Ref:     ref,
		Text:    text,
		Matches: matches,
		Terms:   terms,
	}
}

// NewFailedResult builds a result for a document whose extraction failed.
func NewFailedResult(ref DocumentRef, err error) DocumentResult {
	return DocumentResult{Ref: ref, Err: err}
}

// Label returns the document-name label.
func (r DocumentResult) Label() string {
	return r.Ref.Label()
}

// Failed reports whether extraction failed for this document.
func (r DocumentResult) Failed() bool {
	return r.Err != nil
}

// Count returns the total occurrence count, direct and synonym.
func (r DocumentResult) Count() int {
	return len(r.Matches)
}

// CountDirect returns the number of direct matches.
func (r DocumentResult) CountDirect() int {
	n := 0
	for _, m := range r.Matches {
		if m.Kind == MatchDirect {
			n++
		}
	}
	return n
}

// CountSynonym returns the number of synonym matches.
func (r DocumentResult) CountSynonym() int {
	return len(r.Matches) - r.CountDirect()
}

// CountRestricted returns the occurrence count in restrict mode,
// which excludes synonym matches without re-scanning.
func (r DocumentResult) CountRestricted() int {
	return r.CountDirect()
}

// ScanReport is the aggregate outcome of one scan: a mapping from document
// path to its result summary, plus the query that produced it.
type ScanReport struct {
	// Query is the validated, synonym-expanded query that was scanned.
	Query Query

	// Results maps document path to result summary. Every successfully
	// enumerated document appears exactly once, including documents with
	// zero matches and documents whose extraction failed.
	Results map[string]DocumentResult
}

// NewScanReport creates an empty report for a query.
func NewScanReport(query Query) *ScanReport {
	return &ScanReport{
		Query:   query,
		Results: make(map[string]DocumentResult),
	}
}

// Documents returns the number of documents in the report.
func (s *ScanReport) Documents() int {
	return len(s.Results)
}

// Failures returns the number of documents whose extraction failed.
func (s *ScanReport) Failures() int {
	n := 0
	for _, r := range s.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// TotalMatches returns the occurrence count across all documents.
// With restrict set, synonym matches are excluded from the count.
func (s *ScanReport) TotalMatches(restrict bool) int {
	n := 0
	for _, r := range s.Results {
		if restrict {
			n += r.CountRestricted()
		} else {
			n += r.Count()
		}
	}
	return n
}
