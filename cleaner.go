package distill

import "context"

// Cleaner removes residual noise from markdown using a language model.
type Cleaner interface {
	// Clean returns cleaned markdown. Output is not deterministic.
	// Returns the input unchanged if the model produces no content.
	Clean(ctx context.Context, markdown string) (string, error)
}

// CleanMarkdownPrompt is the system instruction sent with every cleanup request.
const CleanMarkdownPrompt = `You are a helpful assistant that cleans MARKDOWN content by removing unnecessary or noisy elements, while preserving ALL meaningful data and structure.

REQUIREMENTS:
1. Keep ALL main text, headings, paragraphs, lists, code blocks, tables, and links intact.
2. Preserve ALL table rows and columns completely. Do NOT truncate or omit any part.
3. Preserve all links exactly as they appear.
4. Remove only: navigation menus, sidebars, footers, advertisements, cookie notices, comment blocks, and any irrelevant or repeated boilerplate text.
5. Remove any leftover HTML tags, inline styles, or malformed markdown syntax that do not contribute meaningful content.
6. Clean up excessive blank lines and unnecessary whitespace to produce neat and readable markdown.
7. Maintain the original markdown structure and formatting without summarizing or shortening content.
8. Return only the cleaned markdown content without any additional explanations or comments.

OUTPUT FORMAT:
- Valid, clean markdown text containing only useful and meaningful content.
- All markdown syntax (headings, lists, tables, links, code blocks) properly preserved and formatted.
- No HTML tags or non-markdown formatting included.`

// CleanUserPrompt builds the user message that carries the markdown.
func CleanUserPrompt(markdown string) string {
	return "Clean this markdown:\n\n" + markdown
}
