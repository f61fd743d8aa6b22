package domain

import "strings"

// SegmentKind classifies a highlighted segment for rendering.
type SegmentKind int

const (
	// SegmentPlain is unmatched text.
	SegmentPlain SegmentKind = iota

	// SegmentDirect is a direct match span (rendered red).
	SegmentDirect

	// SegmentSynonym is a synonym match span (rendered magenta).
	SegmentSynonym
)

// Segment is a run of text with a single highlight kind.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Highlight splits text into ordered segments where each match span
// carries its kind, ready for a renderer to wrap in colour tags.
// With restrict set, synonym matches are suppressed and render as
// plain text; no re-scan is required. Overlapping matches keep the
// earliest span and drop the rest.
func Highlight(text string, matches []Match, restrict bool) []Segment {
	var segments []Segment
	pos := 0

	for _, m := range matches {
		if m.Start < pos || m.End > len(text) {
			continue // overlaps a previous span
		}
		if restrict && m.Kind == MatchSynonym {
			continue
		}

		if m.Start > pos {
			segments = append(segments, Segment{Text: text[pos:m.Start], Kind: SegmentPlain})
		}

		kind := SegmentDirect
		if m.Kind == MatchSynonym {
			kind = SegmentSynonym
		}
		segments = append(segments, Segment{Text: text[m.Start:m.End], Kind: kind})
		pos = m.End
	}

	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:], Kind: SegmentPlain})
	}

	return segments
}

// Excerpt is a single matched line of a document, highlighted.
type Excerpt struct {
	// Line is the zero-based line number in the extracted text.
	Line int

	// Segments is the highlighted content of the line.
	Segments []Segment
}

// Excerpts returns the highlighted lines of text that contain at least
// one match. Lines follow the extractor's layout (pages and paragraphs
// are separated by newlines). With restrict set, lines whose only
// matches are synonyms are omitted entirely.
func Excerpts(text string, matches []Match, restrict bool) []Excerpt {
	if len(matches) == 0 {
		return nil
	}

	var excerpts []Excerpt
	lineStart := 0
	lineNo := 0
	next := 0 // index of the first match not yet consumed

	for lineStart <= len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		if lineEnd < 0 {
			lineEnd = len(text)
		} else {
			lineEnd += lineStart
		}

		var lineMatches []Match
		for next < len(matches) && matches[next].Start < lineEnd {
			m := matches[next]
			next++
			if restrict && m.Kind == MatchSynonym {
				continue
			}
			// Rebase offsets onto the line. A phrase span that runs
			// past the newline is clamped so its leading portion
			// still highlights on this line.
			m.Start -= lineStart
			m.End -= lineStart
			if lineLen := lineEnd - lineStart; m.End > lineLen {
				m.End = lineLen
			}
			lineMatches = append(lineMatches, m)
		}

		if len(lineMatches) > 0 {
			excerpts = append(excerpts, Excerpt{
				Line:     lineNo,
				Segments: Highlight(text[lineStart:lineEnd], lineMatches, restrict),
			})
		}

		if lineEnd == len(text) {
			break
		}
		lineStart = lineEnd + 1
		lineNo++
	}

	return excerpts
}
