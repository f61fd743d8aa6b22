// Package extractors contains the per-format text extractors.
// Each subpackage implements driven.Extractor for one member of the
// closed format set: pdf and docx. Extractors return plain text with
// newlines between pages or paragraphs, which the highlighter treats
// as excerpt boundaries.
package extractors
