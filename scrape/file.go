package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

var _ distill.FileExtractor = (*FileService)(nil)

// FileService dispatches uploads to the extractor for their format.
type FileService struct {
	Text distill.TextExtractor
	PDF  distill.TextExtractor
	DOCX distill.TextExtractor
}

// ExtractFile returns the trimmed text of file.
func (s *FileService) ExtractFile(ctx context.Context, file *distill.UploadedFile) (*distill.FileResult, error) {
	if file == nil {
		return nil, distill.Errorf(distill.ENOFILE, "No file uploaded.")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mimeType := file.MimeType
	format := distill.DetectFormat(file.Filename, mimeType)
	if format == distill.FormatUnknown && !declared(mimeType) {
		mimeType = mimetype.Detect(file.Data).String()
		format = distill.DetectFormat(file.Filename, mimeType)
	}

	var extractor distill.TextExtractor
	switch format {
	case distill.FormatText:
		extractor = s.Text
	case distill.FormatPDF:
		extractor = s.PDF
	case distill.FormatDOCX:
		extractor = s.DOCX
	}
	if extractor == nil {
		return nil, distill.Errorf(distill.EUNSUPPORTED, "Unsupported file type: %s", file.MimeType)
	}

	text, err := extractor.ExtractText(file.Data)
	if err != nil {
		return nil, distill.Internal(err)
	}

	reported := file.MimeType
	if reported == "" {
		reported = mimeType
	}
	return &distill.FileResult{
		Filename: file.Filename,
		MimeType: reported,
		Text:     strings.TrimSpace(text),
	}, nil
}

// declared reports whether the client sent a meaningful content type.
func declared(mimeType string) bool {
	base, _, _ := strings.Cut(mimeType, ";")
	base = strings.TrimSpace(base)
	return base != "" && base != octetStream
}
