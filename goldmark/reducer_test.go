package goldmark_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/distill/goldmark"
	"github.com/fwojciec/distill/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReducer_Reduce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "headings and emphasis",
			markdown: "# Title\n\nSome **bold** and *italic* text.",
			want:     "Title\n\nSome bold and italic text.",
		},
		{
			name:     "list items become lines",
			markdown: "- one\n- two\n\nAfter the list.",
			want:     "one\ntwo\n\nAfter the list.",
		},
		{
			name:     "nested lists stay in one block",
			markdown: "1. first\n   - inner\n2. second",
			want:     "first\ninner\nsecond",
		},
		{
			name:     "table rows become lines",
			markdown: "| A | B |\n|---|---|\n| 1 | 2 |",
			want:     "A B\n1 2",
		},
		{
			name:     "fenced code keeps its lines",
			markdown: "Example:\n\n```go\nx := 1\nfmt.Println(x)\n```",
			want:     "Example:\n\nx := 1\nfmt.Println(x)",
		},
		{
			name:     "indented code keeps its lines",
			markdown: "    indented code",
			want:     "indented code",
		},
		{
			name:     "table between paragraphs appears once",
			markdown: "Before.\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\nAfter.",
			want:     "Before.\n\na b\n1 2\n\nAfter.",
		},
		{
			name:     "inline code is literal",
			markdown: "Use `a*b` here.",
			want:     "Use a*b here.",
		},
		{
			name:     "escapes are resolved",
			markdown: `Not \*emphasis\* here.`,
			want:     "Not *emphasis* here.",
		},
		{
			name:     "entities are resolved",
			markdown: "Fish &amp; chips &#35;1",
			want:     "Fish & chips #1",
		},
		{
			name:     "raw html is dropped",
			markdown: "<div>\nwidget\n</div>\n\nText after.",
			want:     "Text after.",
		},
		{
			name:     "images keep alt text",
			markdown: "![A cat](cat.png)",
			want:     "A cat",
		},
		{
			name:     "links keep their destination",
			markdown: "See [the docs](https://x.com/docs).",
			want:     "See the docs (https://x.com/docs).",
		},
		{
			name:     "strikethrough text is kept",
			markdown: "~~old~~ new",
			want:     "old new",
		},
		{
			name:     "blockquote",
			markdown: "> quoted\n\nplain",
			want:     "quoted\n\nplain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := goldmark.NewReducer().Reduce(tt.markdown)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReducer_EmptyInput(t *testing.T) {
	t.Parallel()

	got, err := goldmark.NewReducer().Reduce("  \n\n ")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReducer_IsFixedPoint(t *testing.T) {
	t.Parallel()

	t.Run("plain text is unchanged", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"Hello link (https://example.com/x)",
			"First paragraph.\n\nSecond paragraph line one\nline two",
			"Just some words",
		}

		r := goldmark.NewReducer()
		for _, in := range inputs {
			once, err := r.Reduce(in)
			require.NoError(t, err)
			assert.Equal(t, in, once)

			twice, err := r.Reduce(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})

	t.Run("reduced tables and code are stable", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"| a | b |\n|---|---|\n| 1 | 2 |",
			"```\ncode\n```",
			"    indented code",
			"Example:\n\n```go\nx := 1\nfmt.Println(x)\n```\n\n| Name | Age |\n|---|---|\n| Ann | 30 |",
		}

		r := goldmark.NewReducer()
		for _, in := range inputs {
			once, err := r.Reduce(in)
			require.NoError(t, err)

			twice, err := r.Reduce(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice, in)
		}
	})

	t.Run("converted html with code and table is stable", func(t *testing.T) {
		t.Parallel()

		html := `<p>Intro</p><pre><code>x := 1
y := 2</code></pre><table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`

		markdown, err := htmltomarkdown.NewConverter().Convert(html, "")
		require.NoError(t, err)

		r := goldmark.NewReducer()
		once, err := r.Reduce(markdown)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(once, "x := 1"))
		assert.Equal(t, 1, strings.Count(once, "y := 2"))
		assert.Contains(t, once, "Intro")

		twice, err := r.Reduce(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})
}
