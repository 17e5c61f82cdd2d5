package distill

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from a Normalizer).
	// Anchors are rendered as "text (href)" with href resolved against
	// baseURL. Empty input yields empty output.
	Convert(html string, baseURL string) (string, error)
}

// Reducer strips markdown syntax, leaving plain text.
type Reducer interface {
	// Reduce returns the text content of markdown. Empty input yields empty
	// output and plain text is returned unchanged.
	Reduce(markdown string) (string, error)
}
