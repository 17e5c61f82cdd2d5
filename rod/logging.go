package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingSource implements PageSource.
var _ PageSource = (*LoggingSource)(nil)

// LoggingSource wraps a PageSource so that every page it opens logs its
// navigations.
type LoggingSource struct {
	next   PageSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next PageSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// NewPage delegates to the wrapped source.
func (s *LoggingSource) NewPage(ctx context.Context) (distill.Page, error) {
	page, err := s.next.NewPage(ctx)
	if err != nil {
		s.logger.Warn("open page", "err", err)
		return nil, err
	}
	return &loggingPage{Page: page, logger: s.logger}, nil
}

// Close delegates to the wrapped source.
func (s *LoggingSource) Close() error {
	return s.next.Close()
}

type loggingPage struct {
	distill.Page
	logger *slog.Logger
}

func (p *loggingPage) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.Page.Navigate(ctx, url)
}

func (p *loggingPage) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("page html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.Page.HTML(ctx)
}
