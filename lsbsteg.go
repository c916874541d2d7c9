package lsbsteg

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/lsbsteg/internal/lsb"
	"github.com/yyyoichi/lsbsteg/strmark"
)

// TerminatorBits is the capacity reserved after every payload for the
// all-zero byte that marks its end.
const TerminatorBits = lsb.TerminatorBits

var (
	ErrTooSmallImage = errors.New("image is too small for the message")
	ErrInvalidOption = errors.New("invalid option")

	ErrEncoding     = strmark.ErrEncoding
	ErrDecoding     = strmark.ErrDecoding
	ErrNoTerminator = lsb.ErrNoTerminator
)

// Capacity returns the number of payload bits a width x height image holds,
// one per R, G and B value. The terminator takes TerminatorBits of it.
func Capacity(width, height int) int {
	return lsb.Capacity(width, height)
}

func CapacityOf(rect image.Rectangle) int {
	return lsb.CapacityOf(rect)
}

// MaxMessageLen returns the longest message, in bytes, that fits in rect.
func MaxMessageLen(rect image.Rectangle) int {
	n := (CapacityOf(rect) - TerminatorBits) / 8
	if n < 0 {
		return 0
	}
	return n
}

// Embed hides message in src with the specified options.
// This is a convenience function that creates a Stego instance and calls its Embed method.
func Embed(ctx context.Context, src image.Image, message string, opts ...Option) (image.Image, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Embed(ctx, src, message)
}

// Extract recovers the message hidden in src with the specified options.
// This is a convenience function that creates a Stego instance and calls its Extract method.
func Extract(ctx context.Context, src image.Image, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	return s.Extract(ctx, src)
}

type Stego struct {
	mark strmark.Mark
}

// New initializes a codec. Messages are ASCII unless WithCharset says otherwise.
func New(opts ...Option) (*Stego, error) {
	s := new(Stego)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Embed hides message in the least significant bits of src.
//
// Process:
//  1. Encodes the message into 8 bits per character, most significant first.
//  2. Checks that the bits plus the terminator fit in width * height * 3 slots.
//  3. Copies src into a pixel grid.
//  4. Writes one bit per R, G, B value in row-major order, then 8 zero bits.
//  5. Builds an NRGBA image. Values after the terminator are unchanged.
//
// src is never modified. The result must be stored in a lossless format.
func (s *Stego) Embed(ctx context.Context, src image.Image, message string) (image.Image, error) {
	bits, err := s.mark.Encode(message)
	if err != nil {
		return nil, err
	}
	return s.EmbedBits(ctx, src, bits)
}

// EmbedBits hides a raw bit sequence in src. Every 8-bit group of bits must
// be non-zero, otherwise extraction stops early.
func (s *Stego) EmbedBits(ctx context.Context, src image.Image, bits []bool) (image.Image, error) {
	return embed(ctx, lsb.NewGrid(src), bits)
}

// Extract recovers the message hidden in src.
//
// Process:
//  1. Copies src into a pixel grid.
//  2. Reads the least significant bit of each R, G, B value in row-major order.
//  3. Stops at the first all-zero byte.
//  4. Decodes the bytes with the configured charset.
//
// Returns ErrNoTerminator when no zero byte exists, and ErrDecoding when a
// byte is not a character of the charset.
func (s *Stego) Extract(ctx context.Context, src image.Image) (string, error) {
	bits, err := s.ExtractBits(ctx, src)
	if err != nil {
		return "", err
	}
	return s.mark.Decode(bits)
}

// ExtractBits recovers the raw bit sequence hidden in src, without the terminator.
func (s *Stego) ExtractBits(ctx context.Context, src image.Image) ([]bool, error) {
	return lsb.Extract(ctx, lsb.NewGrid(src))
}

func (s *Stego) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.mark == nil {
		s.mark = strmark.New(strmark.ASCII)
	}
	return nil
}

func embed(ctx context.Context, grid lsb.Grid, bits []bool) (image.Image, error) {
	if err := lsb.Enable(grid, len(bits)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTooSmallImage, err)
	}
	return lsb.Embed(ctx, grid, bits)
}

// Batch enables repeated operations on a single image by caching its
// decoded pixel grid.
type Batch struct {
	original lsb.Grid
}

// NewBatch decodes src once for later Embed and Extract calls.
func NewBatch(src image.Image) *Batch {
	return &Batch{original: lsb.NewGrid(src)}
}

// Capacity returns the payload bits the cached image holds.
func (b *Batch) Capacity() int {
	return b.original.Capacity()
}

// Embed hides message in the cached image with specified options.
// The cached grid is left untouched, so each call starts from the original.
func (b *Batch) Embed(ctx context.Context, message string, opts ...Option) (image.Image, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	bits, err := s.mark.Encode(message)
	if err != nil {
		return nil, err
	}
	return embed(ctx, b.original, bits)
}

// Extract recovers the message hidden in the cached image with specified options.
func (b *Batch) Extract(ctx context.Context, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	bits, err := lsb.Extract(ctx, b.original)
	if err != nil {
		return "", err
	}
	return s.mark.Decode(bits)
}
