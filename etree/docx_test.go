package etree_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/fwojciec/distill/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx packages body as the main document part of a minimal .docx.
func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`))
	require.NoError(t, err)

	w, err = zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDocxExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("separates paragraphs with blank lines", func(t *testing.T) {
		t.Parallel()

		data := buildDocx(t,
			`<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>`+
				`<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>`)

		got, err := etree.NewDocxExtractor().ExtractText(data)

		require.NoError(t, err)
		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", got)
	})

	t.Run("renders tabs and breaks", func(t *testing.T) {
		t.Parallel()

		data := buildDocx(t, `<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Value</w:t><w:br/><w:t>Next line</w:t></w:r></w:p>`)

		got, err := etree.NewDocxExtractor().ExtractText(data)

		require.NoError(t, err)
		assert.Equal(t, "Name\tValue\nNext line", got)
	})

	t.Run("reads tables cell by cell", func(t *testing.T) {
		t.Parallel()

		data := buildDocx(t, `<w:tbl><w:tr><w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`)

		got, err := etree.NewDocxExtractor().ExtractText(data)

		require.NoError(t, err)
		assert.Equal(t, "A\n\nB", got)
	})

	t.Run("returns error when not a zip archive", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDocxExtractor().ExtractText([]byte("plain text"))

		require.Error(t, err)
	})

	t.Run("returns error when document part is missing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create("other.xml")
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = etree.NewDocxExtractor().ExtractText(buf.Bytes())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "word/document.xml")
	})
}
