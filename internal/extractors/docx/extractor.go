package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

var (
	errNotDocx    = errors.New("not a docx archive")
	errNoDocument = errors.New("missing word/document.xml")
)

// Extractor extracts text from Word (OOXML) documents.
// A .docx file is a ZIP archive whose main text lives in
// word/document.xml as paragraphs of runs.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Format returns the document format this extractor handles.
func (e *Extractor) Format() domain.Format {
	return domain.FormatDocx
}

// Extract reads the file and returns its plain text, one line per
// paragraph. Password-protected and corrupt archives fail with an
// ExtractionError.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.NewExtractionError(path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Encrypted OOXML files are OLE containers, not ZIPs, so they
		// land here too.
		return "", domain.NewExtractionError(path, errNotDocx)
	}

	text, err := documentText(reader)
	if err != nil {
		return "", domain.NewExtractionError(path, err)
	}
	return text, nil
}

// documentText extracts text from word/document.xml.
func documentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}

		return parseDocumentXML(content)
	}
	return "", errNoDocument
}

// documentXML mirrors the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML joins paragraph runs into newline-separated text.
func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", err
	}

	var b strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, text := range r.Text {
				b.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}
