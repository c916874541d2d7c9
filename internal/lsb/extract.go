package lsb

import (
	"context"
	"fmt"
)

type extractState int

const (
	accumulating extractState = iota
	terminated
	exhausted
)

func (s extractState) String() string {
	switch s {
	case accumulating:
		return "accumulating"
	case terminated:
		return "terminated"
	case exhausted:
		return "exhausted"
	}
	return "unknown"
}

// extractor collects LSBs in groups of 8. A group equal to 0x00 ends the
// payload and is not part of it.
type extractor struct {
	state extractState
	acc   byte
	n     int
	group [8]bool
	bits  []bool
}

func (e *extractor) push(bit bool) {
	if e.state != accumulating {
		return
	}
	e.acc <<= 1
	if bit {
		e.acc |= 1
	}
	e.group[e.n] = bit
	e.n++
	if e.n < len(e.group) {
		return
	}
	if e.acc == 0 {
		e.state = terminated
		return
	}
	e.bits = append(e.bits, e.group[:]...)
	e.acc, e.n = 0, 0
}

// Extract reads LSBs of src in scan order up to the first all-zero byte.
// It returns ErrNoTerminator when the grid ends first. src is not modified.
func Extract(ctx context.Context, src Grid) ([]bool, error) {
	var (
		order = src.ScanOrder()
		e     extractor
	)
	for _, s := range order.Slots() {
		if order.rowStart(s) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		e.push(src.lsb(s))
		if e.state == terminated {
			break
		}
	}
	if e.state != terminated {
		e.state = exhausted
		return nil, fmt.Errorf("%w: scanned %d slots, %d bytes without a zero byte", ErrNoTerminator, order.Len(), len(e.bits)/8)
	}
	return e.bits, nil
}
