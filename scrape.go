package distill

import "context"

// ScrapeResult is the outcome of scraping a single URL.
type ScrapeResult struct {
	Title    string
	Byline   string
	Markdown string
	Text     string
}

// Scraper turns a URL into clean text.
type Scraper interface {
	// Scrape validates the URL, renders it and runs the extraction pipeline.
	// Returns EINVALIDURL if the URL is malformed or unreachable.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// URLValidator checks that a URL is well formed and reachable.
type URLValidator interface {
	// Validate returns EINVALIDURL if the URL cannot be scraped.
	Validate(ctx context.Context, url string) error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
