package mock

import "github.com/fwojciec/distill"

var (
	_ distill.ContentExtractor = (*ContentExtractor)(nil)
	_ distill.Normalizer       = (*Normalizer)(nil)
)

// ContentExtractor is a mock implementation of distill.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *ContentExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

// Normalizer is a mock implementation of distill.Normalizer.
type Normalizer struct {
	NormalizeFn func(html, pageURL string) (distill.Article, bool)
}

func (n *Normalizer) Normalize(html, pageURL string) (distill.Article, bool) {
	return n.NormalizeFn(html, pageURL)
}
