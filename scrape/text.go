package scrape

import (
	"bytes"
	"strings"

	"github.com/fwojciec/distill"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var _ distill.TextExtractor = (*PlainText)(nil)

// PlainText decodes text uploads as UTF-8. Invalid sequences become U+FFFD.
type PlainText struct{}

// ExtractText implements distill.TextExtractor.
func (PlainText) ExtractText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}
