package services

import (
	"regexp"
	"strings"
)

// ExtractionResult is the output of exactly one extraction strategy.
type ExtractionResult struct {
	Text      string
	PageCount int
	Warnings  []string
}

// Extractor converts raw document bytes into normalized plain text.
type Extractor interface {
	Extract(data []byte) (*ExtractionResult, error)
}

// ExtractorForKind dispatches once on the classified file kind. The three
// strategies are a closed set; callers never type-check again downstream.
func ExtractorForKind(kind FileKind) Extractor {
	switch kind {
	case KindPDF:
		return &pdfExtractor{}
	case KindDocx:
		return &docxExtractor{}
	default:
		return &textExtractor{}
	}
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// cleanNewlines collapses CRLF and form feeds, squeezes runs of three or
// more newlines down to two, and trims the edges.
func cleanNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

func errNoReadableText() error {
	return NewPipelineError(ErrEmptyDocument, "No readable text found in the document.", nil)
}
