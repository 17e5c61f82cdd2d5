package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var (
	_ distill.TextExtractor = (*TextExtractor)(nil)
	_ distill.FileExtractor = (*FileExtractor)(nil)
)

// TextExtractor is a mock implementation of distill.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(data []byte) (string, error)
}

func (e *TextExtractor) ExtractText(data []byte) (string, error) {
	return e.ExtractTextFn(data)
}

// FileExtractor is a mock implementation of distill.FileExtractor.
type FileExtractor struct {
	ExtractFileFn func(ctx context.Context, file *distill.UploadedFile) (*distill.FileResult, error)
}

func (e *FileExtractor) ExtractFile(ctx context.Context, file *distill.UploadedFile) (*distill.FileResult, error) {
	return e.ExtractFileFn(ctx, file)
}
