package lsb

import (
	"image"
	"iter"
)

// Channel is a carrier channel within a pixel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

const ChannelsPerPixel = 3

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return "?"
}

// Slot addresses one channel value of one pixel.
type Slot struct {
	X, Y    int
	Channel Channel
}

// ScanOrder is the traversal shared by embedding and extraction:
// rows top to bottom, pixels left to right, channels R, G, B.
type ScanOrder struct {
	bounds image.Rectangle
}

func NewScanOrder(bounds image.Rectangle) ScanOrder {
	return ScanOrder{bounds: bounds.Canon()}
}

// Len is the number of slots, width * height * 3.
func (o ScanOrder) Len() int {
	return o.bounds.Dx() * o.bounds.Dy() * ChannelsPerPixel
}

// SlotAt returns the i-th slot. i must be in [0, Len()).
func (o ScanOrder) SlotAt(i int) Slot {
	px := i / ChannelsPerPixel
	w := o.bounds.Dx()
	return Slot{
		X:       o.bounds.Min.X + px%w,
		Y:       o.bounds.Min.Y + px/w,
		Channel: Channel(i % ChannelsPerPixel),
	}
}

// Slots yields every slot with its index in scan order.
func (o ScanOrder) Slots() iter.Seq2[int, Slot] {
	return func(yield func(int, Slot) bool) {
		i := 0
		for y := o.bounds.Min.Y; y < o.bounds.Max.Y; y++ {
			for x := o.bounds.Min.X; x < o.bounds.Max.X; x++ {
				for c := Red; c <= Blue; c++ {
					if !yield(i, Slot{X: x, Y: y, Channel: c}) {
						return
					}
					i++
				}
			}
		}
	}
}

// rowStart reports whether s is the first slot of a row.
func (o ScanOrder) rowStart(s Slot) bool {
	return s.X == o.bounds.Min.X && s.Channel == Red
}
