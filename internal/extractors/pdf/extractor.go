package pdf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var errNoText = errors.New("no extractable text")

// Extractor extracts text from PDF documents.
//
// The PDF library panics on some malformed inputs, so every call into it
// is wrapped in a recover guard; a panic surfaces as an ExtractionError
// for that document instead of taking down the worker.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the document format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatPDF
}

// Extract reads the file and returns its plain text, one line per page.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}

	text, err := extractText(ctx, data)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}
	return text, nil
}

// extractText pulls text out of the PDF bytes page by page.
func extractText(ctx context.Context, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("malformed pdf")
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	pages := pageCount(reader)
	if pages <= 0 {
		return "", errNoText
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		appendPage(reader, i, &b)
		b.WriteString("\n")
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errNoText
	}
	return out, nil
}

// pageCount reads the page count, guarding against library panics.
func pageCount(reader *pdf.Reader) (pages int) {
	defer func() { _ = recover() }()
	return reader.NumPage()
}

// appendPage writes one page's text items, guarding against panics on
// individually malformed pages.
func appendPage(reader *pdf.Reader, page int, b *strings.Builder) {
	defer func() { _ = recover() }()

	p := reader.Page(page)
	if p.V.IsNull() {
		return
	}
	for _, item := range p.Content().Text {
		b.WriteString(item.S)
		b.WriteString(" ")
	}
}
