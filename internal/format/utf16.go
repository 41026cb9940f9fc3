package format

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// EncodeUTF16BE converts s to UTF-16 big-endian without a byte order
// mark. Entry names are stored this way, preceded by their length in
// 16-bit units, so the returned byte count is always even.
func EncodeUTF16BE(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("name %#q: %w", s, ErrBadName)
	}
	out, _, err := transform.Bytes(utf16be.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("name %#q: %w", s, err)
	}
	return out, nil
}
