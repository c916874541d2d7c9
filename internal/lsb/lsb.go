package lsb

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// TerminatorBits is the length of the all-zero group that ends a payload.
const TerminatorBits = 8

var (
	ErrCapacity     = errors.New("payload exceeds image capacity")
	ErrNoTerminator = errors.New("no terminator found before end of image")
)

// Capacity returns the number of payload bits a width x height image can carry.
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * ChannelsPerPixel
}

func CapacityOf(rect image.Rectangle) int {
	return Capacity(rect.Dx(), rect.Dy())
}

// Enable checks that markLen payload bits plus the terminator fit in src.
func Enable(src Grid, markLen int) error {
	if need, total := markLen+TerminatorBits, src.Capacity(); total < need {
		return fmt.Errorf("%w: total slots %d < payload %d + terminator %d", ErrCapacity, total, markLen, TerminatorBits)
	}
	return nil
}

// Embed writes mark into a copy of src followed by the terminator.
// src is never modified. Slots after the terminator keep their values.
func Embed(ctx context.Context, src Grid, mark []bool) (*image.NRGBA, error) {
	if err := Enable(src, len(mark)); err != nil {
		return nil, err
	}
	var (
		dst   = src.Copy()
		order = dst.ScanOrder()
		end   = len(mark) + TerminatorBits
	)
	for i, s := range order.Slots() {
		if order.rowStart(s) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		switch {
		case i < len(mark):
			dst.setLSB(s, mark[i])
		case i < end:
			dst.setLSB(s, false)
		}
		if i+1 >= end {
			break
		}
	}
	return dst.Image(), nil
}
