package distill_test

import (
	"testing"

	"github.com/fwojciec/distill"
	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		mimeType string
		want     distill.Format
	}{
		{"plain text mime", "notes", "text/plain", distill.FormatText},
		{"plain text mime with charset", "notes", "text/plain; charset=utf-8", distill.FormatText},
		{"txt extension", "notes.TXT", "application/octet-stream", distill.FormatText},
		{"pdf mime", "report", "application/pdf", distill.FormatPDF},
		{"pdf extension", "report.pdf", "", distill.FormatPDF},
		{"docx mime", "letter", distill.MimeTypeDOCX, distill.FormatDOCX},
		{"docx extension", "letter.docx", "application/octet-stream", distill.FormatDOCX},
		{"csv is unsupported", "data.csv", "text/csv", distill.FormatUnknown},
		{"legacy doc is unsupported", "old.doc", "application/msword", distill.FormatUnknown},
		{"no hints", "", "", distill.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, distill.DetectFormat(tt.filename, tt.mimeType))
		})
	}
}

func TestUploadedFile_Size(t *testing.T) {
	t.Parallel()

	f := &distill.UploadedFile{Data: []byte("hello")}

	assert.Equal(t, 5, f.Size())
}
