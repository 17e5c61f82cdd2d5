// Package slog provides logging decorators for the distill services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingScraper implements distill.Scraper.
var _ distill.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with request logging.
type LoggingScraper struct {
	next   distill.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next distill.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome.
// Client errors are logged at Info, everything else at Error.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result *distill.ScrapeResult, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil && !distill.IsValidation(err) {
			level = slog.LevelError
		}
		var chars int
		if result != nil {
			chars = len(result.Text)
		}
		s.logger.Log(ctx, level, "scrape",
			"url", url,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// Ensure LoggingPagePool implements distill.PagePool.
var _ distill.PagePool = (*LoggingPagePool)(nil)

// LoggingPagePool wraps a PagePool and logs queue wait and task duration.
type LoggingPagePool struct {
	next   distill.PagePool
	logger *slog.Logger
}

// NewLoggingPagePool creates a new LoggingPagePool.
func NewLoggingPagePool(next distill.PagePool, logger *slog.Logger) *LoggingPagePool {
	return &LoggingPagePool{next: next, logger: logger}
}

// Execute delegates to the wrapped pool. The wait attribute is the time
// spent before the task started running.
func (p *LoggingPagePool) Execute(ctx context.Context, url string, task distill.TaskFunc) (html string, err error) {
	begin := time.Now()
	var started time.Time
	defer func() {
		wait := time.Since(begin)
		if !started.IsZero() {
			wait = started.Sub(begin)
		}
		p.logger.Debug("pool task",
			"url", url,
			"wait", wait,
			"duration", time.Since(begin),
			"err", err,
		)
	}()
	return p.next.Execute(ctx, url, func(ctx context.Context, page distill.Page, url string) (string, error) {
		started = time.Now()
		return task(ctx, page, url)
	})
}

// Close delegates to the wrapped pool.
func (p *LoggingPagePool) Close() error {
	defer func(begin time.Time) {
		p.logger.Info("pool closed", "duration", time.Since(begin))
	}(time.Now())
	return p.next.Close()
}
