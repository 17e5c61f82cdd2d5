// Package distill provides a web scraping service that turns a URL or an
// uploaded document into clean plain text. Pages are rendered by a pool of
// headless browser tabs, stripped of boilerplate, normalized to an article,
// converted to markdown and finally reduced to text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, readability/).
package distill
