// Package etree extracts plain text from Office Open XML documents.
package etree

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/distill"
)

// documentPart is the main body of a word processing package.
const documentPart = "word/document.xml"

// Ensure DocxExtractor implements distill.TextExtractor at compile time.
var _ distill.TextExtractor = (*DocxExtractor)(nil)

// DocxExtractor reads the text runs of a .docx file.
type DocxExtractor struct{}

// NewDocxExtractor creates a new DocxExtractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ExtractText returns paragraphs separated by blank lines.
func (e *DocxExtractor) ExtractText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("opening docx: %s not found", documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", documentPart, err)
	}

	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("parsing %s: empty document", documentPart)
	}

	var sb strings.Builder
	writeText(&sb, root)
	return strings.TrimSpace(sb.String()), nil
}

// writeText walks WordprocessingML elements in document order.
func writeText(sb *strings.Builder, el *etree.Element) {
	switch el.Tag {
	case "t":
		sb.WriteString(el.Text())
		return
	case "tab":
		sb.WriteByte('\t')
		return
	case "br", "cr":
		sb.WriteByte('\n')
		return
	}

	for _, child := range el.ChildElements() {
		writeText(sb, child)
	}

	if el.Tag == "p" {
		sb.WriteString("\n\n")
	}
}
