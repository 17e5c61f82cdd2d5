package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/distill/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "paragraph",
			html: `<p>Hello, world!</p>`,
			want: []string{"Hello, world!"},
		},
		{
			name: "headings",
			html: `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`,
			want: []string{"# Title", "## Subtitle", "### Section"},
		},
		{
			name: "unordered list",
			html: `<ul><li>First</li><li>Second</li></ul>`,
			want: []string{"- First", "- Second"},
		},
		{
			name: "ordered list",
			html: `<ol><li>First</li><li>Second</li></ol>`,
			want: []string{"1. First", "2. Second"},
		},
		{
			name: "inline code",
			html: `<p>Run <code>go build</code> to compile.</p>`,
			want: []string{"`go build`"},
		},
		{
			name: "code block with language hint",
			html: `<pre><code class="language-go">package main</code></pre>`,
			want: []string{"```go", "package main"},
		},
		{
			name: "emphasis",
			html: `<p><strong>Bold</strong> and <em>italic</em> text.</p>`,
			want: []string{"**Bold**", "*italic*"},
		},
		{
			name: "blockquote",
			html: `<blockquote><p>This is a quote.</p></blockquote>`,
			want: []string{"> This is a quote."},
		},
		{
			name: "table",
			html: `<table><thead><tr><th>Name</th><th>Age</th></tr></thead><tbody><tr><td>Alice</td><td>30</td></tr></tbody></table>`,
			want: []string{"Name", "Age", "Alice", "|", "---"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tt.html, "")

			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, md, w)
			}
		})
	}
}

func TestConverter_Anchors(t *testing.T) {
	t.Parallel()

	t.Run("renders text followed by href", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<a href="https://x.com">Click</a>`, "")

		require.NoError(t, err)
		assert.Equal(t, "Click (https://x.com)", md)
	})

	t.Run("resolves relative href against base URL", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Hello <a href="/x">link</a></p>`, "https://example.com/page")

		require.NoError(t, err)
		assert.Equal(t, "Hello link (https://example.com/x)", md)
	})

	t.Run("renders text only without href", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>See <a>below</a></p>`, "")

		require.NoError(t, err)
		assert.Equal(t, "See below", md)
	})

	t.Run("does not produce markdown link syntax", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Visit <a href="https://example.com">Example</a> for more info.</p>`, "")

		require.NoError(t, err)
		assert.NotContains(t, md, "[Example]")
		assert.Contains(t, md, "Example (https://example.com)")
	})
}

func TestConverter_EmptyInput(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   \n\t"} {
		md, err := htmltomarkdown.NewConverter().Convert(in, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, md)
	}
}
