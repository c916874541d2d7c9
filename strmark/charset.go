package strmark

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Charset is the single-byte character encoding a message is restricted to.
type Charset int

const (
	// ASCII accepts the 7-bit characters 0x01 through 0x7F.
	ASCII Charset = iota
	// Latin1 accepts ISO-8859-1, every byte except NUL maps to a character.
	Latin1
	// Windows1252 accepts the Windows code page 1252. Its five undefined
	// bytes are rejected on decode.
	Windows1252
)

var charsetNames = map[Charset]string{
	ASCII:       "ascii",
	Latin1:      "latin1",
	Windows1252: "windows1252",
}

func (c Charset) String() string {
	if name, ok := charsetNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Charset(%d)", int(c))
}

// Valid reports whether c is a known charset.
func (c Charset) Valid() bool {
	_, ok := charsetNames[c]
	return ok
}

// ParseCharset resolves a charset by name, case-insensitively.
// "iso-8859-1" and "cp1252" are accepted as aliases.
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ascii", "us-ascii":
		return ASCII, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	case "windows1252", "windows-1252", "cp1252":
		return Windows1252, nil
	}
	return 0, fmt.Errorf("unknown charset %q", name)
}

// encodeRune maps r to its byte. NUL is never encodable because a zero
// byte ends the embedded stream.
func (c Charset) encodeRune(r rune) (byte, bool) {
	if r == 0 || r == utf8.RuneError {
		return 0, false
	}
	switch c {
	case ASCII:
		if r < utf8.RuneSelf {
			return byte(r), true
		}
		return 0, false
	case Latin1:
		return charmap.ISO8859_1.EncodeRune(r)
	case Windows1252:
		return charmap.Windows1252.EncodeRune(r)
	}
	return 0, false
}

func (c Charset) decodeByte(b byte) (rune, bool) {
	if b == 0 {
		return 0, false
	}
	switch c {
	case ASCII:
		if b < utf8.RuneSelf {
			return rune(b), true
		}
		return 0, false
	case Latin1:
		return charmap.ISO8859_1.DecodeByte(b), true
	case Windows1252:
		r := charmap.Windows1252.DecodeByte(b)
		return r, r != utf8.RuneError
	}
	return 0, false
}
