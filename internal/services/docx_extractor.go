package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// docxExtractor reads the WordprocessingML content model directly from the
// zip container: paragraphs and text runs from word/document.xml.
type docxExtractor struct{}

func (d *docxExtractor) Extract(data []byte) (*ExtractionResult, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, NewPipelineError(
			ErrExtractionFailed,
			"Could not read the uploaded DOCX. The file may be corrupt.",
			fmt.Errorf("failed to open docx container: %w", err),
		)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return nil, NewPipelineError(
			ErrExtractionFailed,
			"Could not read the uploaded DOCX. The file may be corrupt.",
			fmt.Errorf("word/document.xml not found in container"),
		)
	}

	rc, err := document.Open()
	if err != nil {
		return nil, NewPipelineError(
			ErrExtractionFailed,
			"Could not read the uploaded DOCX. The file may be corrupt.",
			fmt.Errorf("failed to open document part: %w", err),
		)
	}
	defer rc.Close()

	text, warnings, err := decodeDocumentXML(rc)
	if err != nil {
		return nil, NewPipelineError(
			ErrExtractionFailed,
			"Could not read the uploaded DOCX. The file may be corrupt.",
			err,
		)
	}

	text = cleanNewlines(text)
	if text == "" {
		return nil, errNoReadableText()
	}

	return &ExtractionResult{
		Text:     text,
		Warnings: warnings,
	}, nil
}

// decodeDocumentXML walks the WordprocessingML token stream. Text lives in
// w:t elements; w:p ends a paragraph, w:br and w:tab become whitespace.
func decodeDocumentXML(r io.Reader) (string, []string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	var warnings []string
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if sb.Len() > 0 {
				// Keep what was decoded before the malformed region.
				warnings = append(warnings, fmt.Sprintf("document.xml truncated: %v", err))
				break
			}
			return "", nil, fmt.Errorf("failed to decode document.xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "br":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString("\t")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return sb.String(), warnings, nil
}
