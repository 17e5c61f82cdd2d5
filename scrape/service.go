// Package scrape orchestrates the URL and file extraction pipelines.
package scrape

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/distill"
)

// DefaultNavigationTimeout bounds page navigation.
const DefaultNavigationTimeout = 15 * time.Second

var _ distill.Scraper = (*Service)(nil)

// Service runs the scrape pipeline: validate, render, extract, normalize,
// convert, optionally clean and reduce to text.
type Service struct {
	Validator  distill.URLValidator
	Limiter    distill.DomainLimiter // optional
	Pool       distill.PagePool
	Extractor  distill.ContentExtractor
	Normalizer distill.Normalizer
	Converter  distill.Converter
	Cleaner    distill.Cleaner // optional
	Reducer    distill.Reducer

	NavigationTimeout time.Duration
	Logger            *slog.Logger
}

// Scrape returns the plain text of the page at rawURL.
func (s *Service) Scrape(ctx context.Context, rawURL string) (*distill.ScrapeResult, error) {
	if err := s.Validator.Validate(ctx, rawURL); err != nil {
		if distill.IsValidation(err) {
			return nil, err
		}
		return nil, distill.Internal(err)
	}

	if s.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := s.Limiter.Wait(ctx, u.Hostname()); err != nil {
				return nil, distill.Internal(err)
			}
		}
	}

	content, err := s.Pool.Execute(ctx, rawURL, s.render)
	if err != nil {
		return nil, distill.Internal(err)
	}

	article, ok := s.Normalizer.Normalize(content, rawURL)
	if !ok {
		article = distill.Article{}
	}

	markdown, err := s.Converter.Convert(article.Content, rawURL)
	if err != nil {
		return nil, distill.Internal(err)
	}

	markdown = s.clean(ctx, rawURL, markdown)

	text, err := s.Reducer.Reduce(markdown)
	if err != nil {
		return nil, distill.Internal(err)
	}

	return &distill.ScrapeResult{
		Title:    article.Title,
		Byline:   article.Byline,
		Markdown: markdown,
		Text:     text,
	}, nil
}

// render is the page task: it loads the URL and returns the extracted
// content HTML.
func (s *Service) render(ctx context.Context, page distill.Page, pageURL string) (string, error) {
	timeout := s.navigationTimeout()
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := page.Navigate(navCtx, pageURL); err != nil {
		if errors.Is(navCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", distill.Errorf(distill.EINTERNAL, "navigation timeout of %s exceeded", timeout)
		}
		return "", err
	}

	html, err := page.HTML(ctx)
	if err != nil {
		return "", err
	}

	return s.Extractor.Extract(html)
}

// clean runs the optional cleaner. Failures keep the input.
func (s *Service) clean(ctx context.Context, rawURL, markdown string) string {
	if s.Cleaner == nil || markdown == "" {
		return markdown
	}
	cleaned, err := s.Cleaner.Clean(ctx, markdown)
	if err != nil {
		s.logger().Warn("cleanup failed, using unclean markdown", "url", rawURL, "err", err)
		return markdown
	}
	return cleaned
}

func (s *Service) navigationTimeout() time.Duration {
	if s.NavigationTimeout > 0 {
		return s.NavigationTimeout
	}
	return DefaultNavigationTimeout
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
