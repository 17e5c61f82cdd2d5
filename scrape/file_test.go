package scrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/mock"
	"github.com/fwojciec/distill/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagged(tag string) *mock.TextExtractor {
	return &mock.TextExtractor{
		ExtractTextFn: func(data []byte) (string, error) {
			return tag + ":" + string(data) + "\n", nil
		},
	}
}

func newFileService() *scrape.FileService {
	return &scrape.FileService{
		Text: tagged("text"),
		PDF:  tagged("pdf"),
		DOCX: tagged("docx"),
	}
}

func TestFileService_ExtractFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		mimeType string
		want     string
	}{
		{"text by mime", "notes", "text/plain", "text:body"},
		{"pdf by mime", "report", "application/pdf", "pdf:body"},
		{"docx by mime", "letter", distill.MimeTypeDOCX, "docx:body"},
		{"docx by extension", "letter.docx", "application/octet-stream", "docx:body"},
		{"pdf by extension", "scan.PDF", "", "pdf:body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := newFileService().ExtractFile(context.Background(), &distill.UploadedFile{
				Filename: tt.filename,
				MimeType: tt.mimeType,
				Data:     []byte("body"),
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Text)
			assert.Equal(t, tt.filename, result.Filename)
		})
	}
}

func TestFileService_ExtractFile_SniffsUndeclaredType(t *testing.T) {
	t.Parallel()

	result, err := newFileService().ExtractFile(context.Background(), &distill.UploadedFile{
		Filename: "upload",
		MimeType: "application/octet-stream",
		Data:     []byte("%PDF-1.4\n%rest of document"),
	})

	require.NoError(t, err)
	assert.Equal(t, "pdf:%PDF-1.4\n%rest of document", result.Text)
	assert.Equal(t, "application/octet-stream", result.MimeType)
}

func TestFileService_ExtractFile_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := newFileService().ExtractFile(context.Background(), &distill.UploadedFile{
		Filename: "data.csv",
		MimeType: "text/csv",
		Data:     []byte("a,b"),
	})

	require.Error(t, err)
	assert.Equal(t, distill.EUNSUPPORTED, distill.ErrorCode(err))
	assert.Contains(t, distill.ErrorMessage(err), "text/csv")
}

func TestFileService_ExtractFile_ExtractorFailure(t *testing.T) {
	t.Parallel()

	svc := newFileService()
	svc.PDF = &mock.TextExtractor{
		ExtractTextFn: func(data []byte) (string, error) {
			return "", errors.New("malformed xref table")
		},
	}

	_, err := svc.ExtractFile(context.Background(), &distill.UploadedFile{
		Filename: "broken.pdf",
		MimeType: "application/pdf",
		Data:     []byte("x"),
	})

	require.Error(t, err)
	assert.Equal(t, distill.EINTERNAL, distill.ErrorCode(err))
	assert.Equal(t, "malformed xref table", distill.ErrorMessage(err))
}

func TestFileService_ExtractFile_NoFile(t *testing.T) {
	t.Parallel()

	_, err := newFileService().ExtractFile(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, distill.ENOFILE, distill.ErrorCode(err))
}

func TestPlainText_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("drops byte order mark", func(t *testing.T) {
		t.Parallel()

		got, err := scrape.PlainText{}.ExtractText([]byte("\xEF\xBB\xBFhello"))

		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("replaces invalid sequences", func(t *testing.T) {
		t.Parallel()

		got, err := scrape.PlainText{}.ExtractText([]byte("a\xffb"))

		require.NoError(t, err)
		assert.Equal(t, "a\uFFFDb", got)
	})
}
