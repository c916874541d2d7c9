package lsb

import (
	"image"
	"image/color"
)

// Grid is a decoded pixel grid with three 8-bit carrier channels per pixel.
// Channel values are stored interleaved in scan order, so the i-th slot of
// ScanOrder is pix[i].
type Grid struct {
	bounds        image.Rectangle
	width, height int

	// R, G, B interleaved, row-major
	pix []uint8
	// pass-through, never carries payload
	alpha []uint8
}

func NewGrid(src image.Image) Grid {
	var g Grid
	g.bounds = src.Bounds()
	g.width, g.height = g.bounds.Dx(), g.bounds.Dy()
	area := g.width * g.height
	g.pix = make([]uint8, area*ChannelsPerPixel)
	g.alpha = make([]uint8, area)

	idx := 0
	for y := g.bounds.Min.Y; y < g.bounds.Max.Y; y++ {
		for x := g.bounds.Min.X; x < g.bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			g.pix[idx*ChannelsPerPixel+int(Red)] = c.R
			g.pix[idx*ChannelsPerPixel+int(Green)] = c.G
			g.pix[idx*ChannelsPerPixel+int(Blue)] = c.B
			g.alpha[idx] = c.A
			idx++
		}
	}
	return g
}

func (g Grid) Copy() Grid {
	pix := make([]uint8, len(g.pix))
	_ = copy(pix, g.pix)
	g.pix = pix
	return g
}

func (g Grid) Bounds() image.Rectangle {
	return g.bounds
}

// Capacity is the number of channel slots, one payload bit each.
func (g Grid) Capacity() int {
	return len(g.pix)
}

func (g Grid) ScanOrder() ScanOrder {
	return NewScanOrder(g.bounds)
}

func (g Grid) offset(s Slot) int {
	px := (s.Y-g.bounds.Min.Y)*g.width + (s.X - g.bounds.Min.X)
	return px*ChannelsPerPixel + int(s.Channel)
}

func (g Grid) lsb(s Slot) bool {
	return g.pix[g.offset(s)]&1 == 1
}

func (g Grid) setLSB(s Slot, bit bool) {
	i := g.offset(s)
	v := g.pix[i] &^ 1
	if bit {
		v |= 1
	}
	g.pix[i] = v
}

// Image builds an NRGBA image with the grid's bounds.
func (g Grid) Image() *image.NRGBA {
	dist := image.NewNRGBA(g.bounds)
	idx := 0
	for y := g.bounds.Min.Y; y < g.bounds.Max.Y; y++ {
		for x := g.bounds.Min.X; x < g.bounds.Max.X; x++ {
			p := g.pix[idx*ChannelsPerPixel : (idx+1)*ChannelsPerPixel : (idx+1)*ChannelsPerPixel]
			dist.SetNRGBA(x, y, color.NRGBA{R: p[Red], G: p[Green], B: p[Blue], A: g.alpha[idx]})
			idx++
		}
	}
	return dist
}
