package strmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yyyoichi/lsbsteg/internal/bitconv"
)

var (
	ErrEncoding = errors.New("message is not encodable")
	ErrDecoding = errors.New("no valid message found")
)

// Encode encodes the input string into ASCII bits, most significant bit first.
func Encode(src string) ([]bool, error) {
	return New(ASCII).Encode(src)
}

// Decode decodes ASCII bits back into the original string.
func Decode(mark []bool) (string, error) {
	return New(ASCII).Decode(mark)
}

var _ Mark = (*StrMark)(nil)

type StrMark struct {
	charset Charset
}

// New returns a Mark restricted to charset. An unknown charset behaves as ASCII.
func New(charset Charset) *StrMark {
	if !charset.Valid() {
		charset = ASCII
	}
	return &StrMark{charset: charset}
}

func (sm *StrMark) Charset() Charset {
	return sm.charset
}

// Encode converts src into 8 bits per character.
// It fails with ErrEncoding when src is empty or holds a character outside the charset.
func (sm *StrMark) Encode(src string) ([]bool, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty message", ErrEncoding)
	}
	data := make([]byte, 0, len(src))
	pos := 0
	for _, r := range src {
		b, ok := sm.charset.encodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: character %U at position %d is not %s", ErrEncoding, r, pos, sm.charset)
		}
		data = append(data, b)
		pos++
	}
	return bitconv.BytesToBools(data), nil
}

// Decode groups mark into bytes and maps each through the charset.
// A byte outside the charset fails the whole call with ErrDecoding.
func (sm *StrMark) Decode(mark []bool) (string, error) {
	if len(mark)%8 != 0 {
		return "", fmt.Errorf("%w: %d bits is not a whole number of bytes", ErrDecoding, len(mark))
	}
	var b strings.Builder
	b.Grow(len(mark) / 8)
	for i, v := range bitconv.BoolsToBytes(mark) {
		r, ok := sm.charset.decodeByte(v)
		if !ok {
			return "", fmt.Errorf("%w: byte 0x%02x at offset %d is not %s", ErrDecoding, v, i, sm.charset)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
