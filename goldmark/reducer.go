// Package goldmark reduces markdown to plain text.
package goldmark

import (
	"fmt"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Ensure Reducer implements distill.Reducer at compile time.
var _ distill.Reducer = (*Reducer)(nil)

// Reducer parses markdown and writes only its text. Blocks are separated by
// blank lines, list items and table rows each take one line.
type Reducer struct {
	md goldmark.Markdown
}

// NewReducer creates a new Reducer.
func NewReducer() *Reducer {
	return &Reducer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		),
	}
}

// Reduce returns the plain text of markdown.
func (r *Reducer) Reduce(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	source := []byte(markdown)
	doc := r.md.Parser().Parse(text.NewReader(source))

	w := &textWriter{source: source}
	if err := ast.Walk(doc, w.walk); err != nil {
		return "", fmt.Errorf("walking markdown: %w", err)
	}
	return w.String(), nil
}

type textWriter struct {
	source []byte
	groups [][]string
	line   strings.Builder
	lists  int
	code   int
}

func (w *textWriter) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
		if entering {
			w.line.Reset()
		} else {
			w.endLine()
		}
	case *ast.List:
		if entering {
			if w.lists == 0 {
				w.groups = append(w.groups, nil)
			}
			w.lists++
		} else {
			w.lists--
		}
	case *ast.FencedCodeBlock:
		if entering {
			w.codeBlock(n.Lines())
		}
		return ast.WalkSkipChildren, nil
	case *ast.CodeBlock:
		if entering {
			w.codeBlock(n.Lines())
		}
		return ast.WalkSkipChildren, nil
	case *ast.HTMLBlock, *ast.RawHTML:
		return ast.WalkSkipChildren, nil
	case *ast.CodeSpan:
		if entering {
			w.code++
		} else {
			w.code--
		}
	case *ast.Text:
		if entering {
			w.writeText(n.Segment.Value(w.source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.line.WriteByte('\n')
			}
		}
	case *ast.String:
		if entering {
			w.line.Write(n.Value)
		}
	case *ast.AutoLink:
		if entering {
			w.line.Write(n.Label(w.source))
		}
		return ast.WalkSkipChildren, nil
	case *ast.Link:
		if !entering && len(n.Destination) > 0 {
			w.line.WriteString(" (" + string(n.Destination) + ")")
		}
	case *extast.Table:
		// Walk revisits skipped nodes on exit.
		if entering {
			w.table(n)
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (w *textWriter) writeText(b []byte) {
	if w.code == 0 {
		b = util.UnescapePunctuations(b)
		b = util.ResolveNumericReferences(b)
		b = util.ResolveEntityNames(b)
	}
	w.line.Write(b)
}

func (w *textWriter) endLine() {
	s := strings.TrimSpace(w.line.String())
	w.line.Reset()
	w.add(s)
}

// add appends lines to the open list group or starts a new group.
func (w *textWriter) add(lines ...string) {
	var keep []string
	for _, l := range lines {
		if l != "" {
			keep = append(keep, l)
		}
	}
	if len(keep) == 0 {
		return
	}
	if w.lists > 0 && len(w.groups) > 0 {
		last := len(w.groups) - 1
		w.groups[last] = append(w.groups[last], keep...)
		return
	}
	w.groups = append(w.groups, keep)
}

func (w *textWriter) codeBlock(lines *text.Segments) {
	var out []string
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(w.source)), "\r\n"))
	}
	w.add(strings.Trim(strings.Join(out, "\n"), "\n"))
}

func (w *textWriter) table(t *extast.Table) {
	var rows []string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			if s := w.inline(cell); s != "" {
				cells = append(cells, s)
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	w.add(rows...)
}

// inline returns the text of n's descendants.
func (w *textWriter) inline(n ast.Node) string {
	sub := &textWriter{source: w.source}
	_ = ast.Walk(n, sub.walk)
	return strings.TrimSpace(sub.line.String())
}

func (w *textWriter) String() string {
	blocks := make([]string, 0, len(w.groups))
	for _, g := range w.groups {
		if len(g) > 0 {
			blocks = append(blocks, strings.Join(g, "\n"))
		}
	}
	return strings.Join(blocks, "\n\n")
}
