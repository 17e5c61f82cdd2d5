package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingFileExtractor implements distill.FileExtractor.
var _ distill.FileExtractor = (*LoggingFileExtractor)(nil)

// LoggingFileExtractor wraps a FileExtractor with logging.
type LoggingFileExtractor struct {
	next   distill.FileExtractor
	logger *slog.Logger
}

// NewLoggingFileExtractor creates a new LoggingFileExtractor.
func NewLoggingFileExtractor(next distill.FileExtractor, logger *slog.Logger) *LoggingFileExtractor {
	return &LoggingFileExtractor{next: next, logger: logger}
}

// ExtractFile delegates to the wrapped extractor and logs the upload.
func (e *LoggingFileExtractor) ExtractFile(ctx context.Context, file *distill.UploadedFile) (result *distill.FileResult, err error) {
	defer func(begin time.Time) {
		var name, mimeType string
		var size int
		if file != nil {
			name, mimeType, size = file.Filename, file.MimeType, file.Size()
		}
		e.logger.Info("extract file",
			"filename", name,
			"mimetype", mimeType,
			"size", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractFile(ctx, file)
}

// Ensure LoggingCleaner implements distill.Cleaner.
var _ distill.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with logging.
type LoggingCleaner struct {
	next   distill.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next distill.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner.
func (c *LoggingCleaner) Clean(ctx context.Context, markdown string) (cleaned string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("llm cleanup",
			"in", len(markdown),
			"out", len(cleaned),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(ctx, markdown)
}
