package services

import (
	"fmt"
	"path/filepath"
	"strings"
)

type FileKind string

const (
	KindPDF  FileKind = "pdf"
	KindDocx FileKind = "docx"
	KindText FileKind = "txt"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// Classify resolves the extraction strategy for an upload. The declared MIME
// type wins; the filename extension is only a fallback when the MIME type is
// not one of the three known strings.
func Classify(filename, contentType string) (FileKind, error) {
	// Declared types may carry parameters, e.g. "text/plain; charset=utf-8".
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i != -1 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}

	switch mediaType {
	case mimePDF:
		return KindPDF, nil
	case mimeDocx:
		return KindDocx, nil
	case mimeText:
		return KindText, nil
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDocx, nil
	case ".txt":
		return KindText, nil
	}

	return "", NewPipelineError(
		ErrUnsupportedType,
		"Unsupported file type. Please upload a PDF, DOCX or TXT file.",
		fmt.Errorf("unrecognized content type %q and filename %q", contentType, filename),
	)
}
