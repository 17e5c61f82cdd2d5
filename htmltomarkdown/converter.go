package htmltomarkdown

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/distill"
	"golang.org/x/net/html"
)

// Ensure Converter implements distill.Converter at compile time.
var _ distill.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Links are written as "text (href)" so that the URL survives the reduction
// to plain text.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	conv.Register.RendererFor("a", converter.TagTypeInline, renderAnchor, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative hrefs are resolved
// against baseURL when it is an absolute URL.
func (c *Converter) Convert(content string, baseURL string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	if base, err := url.Parse(baseURL); err == nil && base.IsAbs() {
		resolved, err := resolveLinks(content, base)
		if err != nil {
			return "", err
		}
		content = resolved
	}

	result, err := c.conv.ConvertString(content)
	if err != nil {
		return "", fmt.Errorf("converting html: %w", err)
	}

	return result, nil
}

func renderAnchor(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	var buf bytes.Buffer
	ctx.RenderChildNodes(ctx, &buf, n)
	text := strings.TrimSpace(buf.String())
	href := strings.TrimSpace(attr(n, "href"))

	switch {
	case href == "":
		w.WriteString(text)
	case text == "":
		w.WriteString(href)
	default:
		w.WriteString(text + " (" + href + ")")
	}
	return converter.RenderSuccess
}

// resolveLinks rewrites every anchor href to an absolute URL.
func resolveLinks(content string, base *url.URL) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for i, a := range n.Attr {
				if a.Key != "href" {
					continue
				}
				if ref, err := url.Parse(strings.TrimSpace(a.Val)); err == nil {
					n.Attr[i].Val = base.ResolveReference(ref).String()
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
