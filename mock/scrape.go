package mock

import (
	"context"

	"github.com/fwojciec/distill"
)

var (
	_ distill.Scraper       = (*Scraper)(nil)
	_ distill.URLValidator  = (*URLValidator)(nil)
	_ distill.DomainLimiter = (*DomainLimiter)(nil)
)

// Scraper is a mock implementation of distill.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*distill.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*distill.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}

// URLValidator is a mock implementation of distill.URLValidator.
type URLValidator struct {
	ValidateFn func(ctx context.Context, url string) error
}

func (v *URLValidator) Validate(ctx context.Context, url string) error {
	return v.ValidateFn(ctx, url)
}

// DomainLimiter is a mock implementation of distill.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
