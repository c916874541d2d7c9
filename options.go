package lsbsteg

import (
	"fmt"

	"github.com/yyyoichi/lsbsteg/strmark"
)

type Option func(*Stego) error

// WithCharset restricts messages to a single-byte charset.
// The default is strmark.ASCII. Embedding and extracting must use the same charset.
func WithCharset(charset strmark.Charset) Option {
	return func(s *Stego) error {
		if !charset.Valid() {
			return fmt.Errorf("%w: %s", ErrInvalidOption, charset)
		}
		s.mark = strmark.New(charset)
		return nil
	}
}

// WithMark replaces the message codec, for example with a custom strmark.Mark
// that frames binary data. The codec must never produce a zero byte.
func WithMark(mark strmark.Mark) Option {
	return func(s *Stego) error {
		if mark == nil {
			return fmt.Errorf("%w: nil mark", ErrInvalidOption)
		}
		s.mark = mark
		return nil
	}
}
