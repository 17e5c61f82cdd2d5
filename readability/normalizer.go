package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/go-shiori/go-readability"
)

// Ensure Normalizer implements distill.Normalizer at compile time.
var _ distill.Normalizer = (*Normalizer)(nil)

// Normalizer wraps go-readability to isolate the main article.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize parses rawHTML with pageURL as the document location so that
// relative links become absolute. Parse failures and panics inside the
// library are reported as "no article".
func (n *Normalizer) Normalize(rawHTML, pageURL string) (article distill.Article, ok bool) {
	if strings.TrimSpace(rawHTML) == "" {
		return distill.Article{}, false
	}
	defer func() {
		if recover() != nil {
			article, ok = distill.Article{}, false
		}
	}()

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		base = u
	}

	a, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil || strings.TrimSpace(a.Content) == "" {
		return distill.Article{}, false
	}

	return distill.Article{
		Title:    a.Title,
		Content:  a.Content,
		Byline:   a.Byline,
		Excerpt:  a.Excerpt,
		SiteName: a.SiteName,
	}, true
}
