package distill

import (
	"context"
	"path/filepath"
	"strings"
)

// Format identifies a supported upload format.
type Format string

// Supported upload formats.
const (
	FormatUnknown Format = ""
	FormatText    Format = "text"
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
)

// MIME types recognized by DetectFormat.
const (
	MimeTypeText = "text/plain"
	MimeTypePDF  = "application/pdf"
	MimeTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// UploadedFile is a document buffered in memory for the duration of a request.
type UploadedFile struct {
	Filename string
	MimeType string
	Data     []byte
}

// Size returns the number of bytes in the upload.
func (f *UploadedFile) Size() int {
	return len(f.Data)
}

// FileResult is the text extracted from an upload.
type FileResult struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimetype"`
	Text     string `json:"result"`
}

// DetectFormat dispatches on MIME type first and falls back to the filename
// extension. MIME parameters (e.g. "; charset=utf-8") are ignored.
func DetectFormat(filename, mimeType string) Format {
	mt, _, _ := strings.Cut(mimeType, ";")
	switch strings.ToLower(strings.TrimSpace(mt)) {
	case MimeTypeText:
		return FormatText
	case MimeTypePDF:
		return FormatPDF
	case MimeTypeDOCX:
		return FormatDOCX
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return FormatText
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	}
	return FormatUnknown
}

// TextExtractor extracts text from the raw bytes of one document format.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// FileExtractor turns uploaded documents into plain text.
type FileExtractor interface {
	// ExtractFile dispatches on the upload's format.
	// Returns EUNSUPPORTED for unknown formats and EINTERNAL when the
	// format-specific extraction fails.
	ExtractFile(ctx context.Context, file *UploadedFile) (*FileResult, error)
}
