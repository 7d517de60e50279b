package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type pdfExtractor struct{}

func (p *pdfExtractor) Extract(data []byte) (result *ExtractionResult, err error) {
	// The parser panics on some corrupt cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = NewPipelineError(
				ErrExtractionFailed,
				"Could not read the uploaded PDF. The file may be corrupt.",
				fmt.Errorf("pdf parser panic: %v", r),
			)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewPipelineError(
			ErrExtractionFailed,
			"Could not read the uploaded PDF. The file may be corrupt.",
			fmt.Errorf("failed to open PDF: %w", err),
		)
	}

	var textBuilder strings.Builder
	var warnings []string
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", pageIndex, err))
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := cleanNewlines(textBuilder.String())
	if text == "" {
		return nil, errNoReadableText()
	}

	return &ExtractionResult{
		Text:      text,
		PageCount: totalPage,
		Warnings:  warnings,
	}, nil
}
