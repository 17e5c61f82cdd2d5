// Package http exposes the scraping service over HTTP and probes target URLs
// before they are rendered.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/distill"
)

// DefaultProbeTimeout bounds a single reachability probe.
const DefaultProbeTimeout = 10 * time.Second

// InvalidURLMessage is returned for every URL that fails validation.
const InvalidURLMessage = "Invalid URL. Please check the URL and try again."

// Ensure Prober implements distill.URLValidator at compile time.
var _ distill.URLValidator = (*Prober)(nil)

// Prober checks that a URL is an absolute http(s) URL whose server answers
// with a 2xx or 3xx status.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

// ProberOption configures a Prober.
type ProberOption func(*Prober)

// WithProbeTimeout sets the timeout for probe requests.
// Defaults to DefaultProbeTimeout (10s) if not specified.
func WithProbeTimeout(d time.Duration) ProberOption {
	return func(p *Prober) {
		p.timeout = d
	}
}

// NewProber creates a new Prober. Redirects are followed.
func NewProber(opts ...ProberOption) *Prober {
	p := &Prober{
		timeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = &http.Client{
		Timeout: p.timeout,
	}

	return p
}

// Validate sends a HEAD request to rawURL. Servers that reject HEAD with 405
// are asked once more with GET.
func (p *Prober) Validate(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalidURL()
	}

	status, err := p.probe(ctx, http.MethodHead, u.String())
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = p.probe(ctx, http.MethodGet, u.String())
	}
	if err != nil || status < 200 || status >= 400 {
		return invalidURL()
	}
	return nil
}

func (p *Prober) probe(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode, nil
}

func invalidURL() error {
	return distill.Errorf(distill.EINVALIDURL, InvalidURLMessage)
}
