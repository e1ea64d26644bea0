package document

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// Byte order marks recognized in source text.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// normalizeEncoding converts source text to UTF-8. Specs exported from
// Windows tooling occasionally arrive UTF-16 encoded with a byte order
// mark; the YAML parser only accepts UTF-8.
func normalizeEncoding(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case bytes.HasPrefix(data, bomUTF16LE), bytes.HasPrefix(data, bomUTF16BE):
		// UseBOM picks the endianness from the mark itself.
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return decoder.Bytes(data)
	default:
		return data, nil
	}
}
