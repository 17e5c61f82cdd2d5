package trafilatura

import (
	"bytes"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements distill.Normalizer at compile time.
var _ distill.Normalizer = (*Normalizer)(nil)

// Normalizer wraps go-trafilatura to isolate the main article.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a new Normalizer. A nil logger discards output.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Normalizer{logger: logger}
}

// Normalize extracts the article with links preserved.
func (n *Normalizer) Normalize(rawHTML, pageURL string) (article distill.Article, ok bool) {
	if strings.TrimSpace(rawHTML) == "" {
		return distill.Article{}, false
	}
	defer func() {
		if r := recover(); r != nil {
			n.logger.Warn("trafilatura panicked", "url", pageURL, "panic", r)
			article, ok = distill.Article{}, false
		}
	}()

	opts := trafilatura.Options{
		EnableFallback: true,
		IncludeLinks:   true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil || result.ContentNode == nil {
		n.logger.Debug("no article found", "url", pageURL, "err", err)
		return distill.Article{}, false
	}

	content, err := renderNode(result.ContentNode)
	if err != nil || strings.TrimSpace(content) == "" {
		return distill.Article{}, false
	}

	return distill.Article{
		Title:    result.Metadata.Title,
		Content:  content,
		Byline:   result.Metadata.Author,
		Excerpt:  result.Metadata.Description,
		SiteName: result.Metadata.Sitename,
	}, true
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
