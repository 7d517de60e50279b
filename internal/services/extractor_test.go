package services

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanNewlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf collapsed", "a\r\nb", "a\nb"},
		{"form feed collapsed", "a\fb", "a\nb"},
		{"triple newline squeezed", "a\n\n\n\nb", "a\n\nb"},
		{"edges trimmed", "  \n a \n ", "a"},
		{"double newline kept", "a\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanNewlines(tt.in))
		})
	}
}

func TestTextExtractor(t *testing.T) {
	e := &textExtractor{}

	t.Run("decodes utf-8 verbatim", func(t *testing.T) {
		result, err := e.Extract([]byte("plain résumé text"))
		require.NoError(t, err)
		assert.Equal(t, "plain résumé text", result.Text)
	})

	t.Run("rejects invalid utf-8", func(t *testing.T) {
		_, err := e.Extract([]byte{0xff, 0xfe, 0x00, 0x41})
		require.Error(t, err)
		assert.Equal(t, ErrExtractionFailed, CategoryOf(err))
	})
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDocxExtractor(t *testing.T) {
	e := &docxExtractor{}

	t.Run("extracts paragraph text", func(t *testing.T) {
		data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Backend Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Five years of Go experience.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

		result, err := e.Extract(data)
		require.NoError(t, err)
		assert.Contains(t, result.Text, "Senior Backend Engineer")
		assert.Contains(t, result.Text, "Five years of Go experience.")
	})

	t.Run("ignores non-text markup", func(t *testing.T) {
		data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>Hello</w:t></w:r></w:p>
  </w:body>
</w:document>`)

		result, err := e.Extract(data)
		require.NoError(t, err)
		assert.Equal(t, "Hello", result.Text)
	})

	t.Run("fails on non-zip bytes as unreadable", func(t *testing.T) {
		_, err := e.Extract([]byte("not a zip archive"))
		require.Error(t, err)
		assert.Equal(t, ErrExtractionFailed, CategoryOf(err))
	})

	t.Run("fails on zip without document part", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("something/else.xml")
		require.NoError(t, err)
		_, err = f.Write([]byte("<x/>"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		_, err = e.Extract(buf.Bytes())
		require.Error(t, err)
		assert.Equal(t, ErrExtractionFailed, CategoryOf(err))
	})

	t.Run("empty document is a distinct failure", func(t *testing.T) {
		data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body><w:p/></w:body>
</w:document>`)

		_, err := e.Extract(data)
		require.Error(t, err)
		assert.Equal(t, ErrEmptyDocument, CategoryOf(err))
	})
}

func TestPDFExtractorCorruptBytes(t *testing.T) {
	e := &pdfExtractor{}

	// An .exe renamed to .pdf: unreadable, never a panic.
	_, err := e.Extract([]byte("MZ\x90\x00 this is not a pdf at all"))
	require.Error(t, err)
	assert.Equal(t, ErrExtractionFailed, CategoryOf(err))
}

func TestExtractorForKind(t *testing.T) {
	assert.IsType(t, &pdfExtractor{}, ExtractorForKind(KindPDF))
	assert.IsType(t, &docxExtractor{}, ExtractorForKind(KindDocx))
	assert.IsType(t, &textExtractor{}, ExtractorForKind(KindText))
}
