// Package goquery cleans rendered pages and selects their main content.
package goquery

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/distill"
)

// Ensure Extractor implements distill.ContentExtractor at compile time.
var _ distill.ContentExtractor = (*Extractor)(nil)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// Extractor applies ExtractionRules to rendered HTML.
// Extractor is safe for concurrent use.
type Extractor struct {
	popups    []cascadia.Selector
	remove    []cascadia.Selector
	media     cascadia.Selector
	content   []cascadia.Selector
	minLength int
}

// NewExtractor compiles rules into an Extractor. Selectors that fail to
// compile are logged and skipped.
func NewExtractor(rules distill.ExtractionRules, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Extractor{
		popups:    compileAll(rules.PopupSelectors, logger),
		remove:    compileAll(rules.RemoveSelectors, logger),
		content:   compileAll(rules.ContentSelectors, logger),
		minLength: rules.MinContentLength,
	}
	if rules.MediaSelector != "" {
		if sel, err := cascadia.Compile(rules.MediaSelector); err != nil {
			logger.Warn("skipping selector", "selector", rules.MediaSelector, "err", err)
		} else {
			e.media = sel
		}
	}
	return e
}

func compileAll(selectors []string, logger *slog.Logger) []cascadia.Selector {
	compiled := make([]cascadia.Selector, 0, len(selectors))
	for _, s := range selectors {
		sel, err := cascadia.Compile(s)
		if err != nil {
			logger.Warn("skipping selector", "selector", s, "err", err)
			continue
		}
		compiled = append(compiled, sel)
	}
	return compiled
}

// Extract hides popups, strips page chrome and empty elements, and returns
// the outer HTML of the main content element with whitespace collapsed.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	e.hidePopups(doc)
	e.removeChrome(doc)
	e.removeEmpty(doc)

	content, err := e.selectContent(doc)
	if err != nil {
		return "", err
	}
	return collapseWhitespace(content), nil
}

func (e *Extractor) hidePopups(doc *goquery.Document) {
	for _, sel := range e.popups {
		doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
			style := strings.TrimRight(strings.TrimSpace(s.AttrOr("style", "")), ";")
			if style != "" {
				style += "; "
			}
			s.SetAttr("style", style+"display: none;")
		})
	}
}

func (e *Extractor) removeChrome(doc *goquery.Document) {
	for _, sel := range e.remove {
		doc.FindMatcher(sel).Remove()
	}
}

// removeEmpty walks body elements once in document order. An element goes
// when it has no element children, no text and is not media.
func (e *Extractor) removeEmpty(doc *goquery.Document) {
	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		if strings.TrimSpace(s.Text()) != "" {
			return
		}
		if e.hasMedia(s) {
			return
		}
		s.Remove()
	})
}

func (e *Extractor) hasMedia(s *goquery.Selection) bool {
	if e.media == nil {
		return false
	}
	return s.IsMatcher(e.media) || s.FindMatcher(e.media).Length() > 0
}

// selectContent returns the first content candidate whose inner HTML is
// longer than minLength, falling back to body.
func (e *Extractor) selectContent(doc *goquery.Document) (string, error) {
	for _, sel := range e.content {
		candidate := doc.FindMatcher(sel).First()
		if candidate.Length() == 0 {
			continue
		}
		inner, err := candidate.Html()
		if err != nil {
			return "", fmt.Errorf("rendering content candidate: %w", err)
		}
		if len(strings.TrimSpace(inner)) > e.minLength {
			return goquery.OuterHtml(candidate)
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", nil
	}
	return goquery.OuterHtml(body)
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return multiSpace.ReplaceAllString(s, " ")
}
