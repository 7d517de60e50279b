package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        FileKind
		wantErr     bool
	}{
		{
			name:        "pdf by mime type",
			filename:    "resume.pdf",
			contentType: "application/pdf",
			want:        KindPDF,
		},
		{
			name:        "docx by mime type",
			filename:    "jd.docx",
			contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			want:        KindDocx,
		},
		{
			name:        "plain text by mime type",
			filename:    "resume.txt",
			contentType: "text/plain",
			want:        KindText,
		},
		{
			name:        "mime type with charset parameter",
			filename:    "resume.txt",
			contentType: "text/plain; charset=utf-8",
			want:        KindText,
		},
		{
			name:        "mime wins over conflicting extension",
			filename:    "resume.txt",
			contentType: "application/pdf",
			want:        KindPDF,
		},
		{
			name:        "extension fallback when mime unknown",
			filename:    "resume.pdf",
			contentType: "application/octet-stream",
			want:        KindPDF,
		},
		{
			name:        "uppercase extension fallback",
			filename:    "RESUME.DOCX",
			contentType: "",
			want:        KindDocx,
		},
		{
			name:        "unresolvable type",
			filename:    "resume.exe",
			contentType: "application/x-msdownload",
			wantErr:     true,
		},
		{
			name:     "no mime and no extension",
			filename: "resume",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.filename, tt.contentType)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrUnsupportedType, CategoryOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAgreement(t *testing.T) {
	// When MIME type and extension agree, either resolution path yields the
	// same kind.
	cases := []struct {
		ext  string
		mime string
		want FileKind
	}{
		{".pdf", "application/pdf", KindPDF},
		{".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", KindDocx},
		{".txt", "text/plain", KindText},
	}

	for _, c := range cases {
		byMime, err := Classify("file"+c.ext, c.mime)
		require.NoError(t, err)

		byExt, err := Classify("file"+c.ext, "")
		require.NoError(t, err)

		assert.Equal(t, c.want, byMime)
		assert.Equal(t, byMime, byExt)
	}
}
