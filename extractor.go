package distill

// DefaultMinContentLength is the number of characters of trimmed inner HTML a
// content candidate must exceed to be selected over the page body.
const DefaultMinContentLength = 100

// ExtractionRules configures in-page cleanup and main content selection.
// All selector lists are ordered.
type ExtractionRules struct {
	// PopupSelectors match modals, overlays and banners. Matching elements
	// are hidden, not removed.
	PopupSelectors []string

	// RemoveSelectors match page chrome that is deleted outright.
	RemoveSelectors []string

	// MediaSelector matches embedded media that keeps an otherwise empty
	// element alive.
	MediaSelector string

	// ContentSelectors are tried in priority order when picking the main
	// content element.
	ContentSelectors []string

	// MinContentLength is the density threshold for ContentSelectors.
	MinContentLength int
}

// DefaultExtractionRules returns the rule set used by the service.
func DefaultExtractionRules() ExtractionRules {
	return ExtractionRules{
		PopupSelectors: []string{
			`[class*="modal"]`,
			`[class*="popup"]`,
			`[class*="overlay"]`,
			`[id*="modal"]`,
			`[id*="popup"]`,
			`.cookie-banner`,
			`#cookie-banner`,
			`[class*="cookie"]`,
			`[aria-label*="close"]`,
			`[aria-label*="dismiss"]`,
			`[class*="banner"]`,
		},
		RemoveSelectors: []string{
			`footer`, `#footer`,
			`nav`, `aside`,
			`#cookie-banner`, `.cookie-banner`,
			`[role="banner"]`,
			`[aria-label*="breadcrumb"]`,
		},
		MediaSelector:    "img, video, input, iframe",
		ContentSelectors: []string{"main", "article", "section"},
		MinContentLength: DefaultMinContentLength,
	}
}

// ContentExtractor strips boilerplate from a rendered page and selects the
// densest content subtree.
type ContentExtractor interface {
	// Extract processes the rendered page HTML and returns the outer HTML of
	// the selected content element with whitespace collapsed.
	Extract(html string) (string, error)
}

// Article is the main readable content of a page.
type Article struct {
	Title    string
	Content  string // HTML
	Byline   string
	Excerpt  string
	SiteName string
}

// Normalizer isolates the main article from content HTML.
type Normalizer interface {
	// Normalize parses html and returns the article. pageURL is used to
	// resolve relative links. The second return value is false when no
	// article-like content was found; Normalize never fails otherwise.
	Normalize(html string, pageURL string) (Article, bool)
}
