// Package quality measures how far an embedded image drifted from its carrier.
//
// All metrics compare the R, G and B 8-bit values of two images with equal
// bounds, visited in the same scan order the codec embeds in. Alpha is
// ignored because it never carries payload.
package quality

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/yyyoichi/lsbsteg/internal/lsb"
	"gonum.org/v1/gonum/floats"
)

const maxValue = 255.

var ErrBoundsMismatch = errors.New("images have different bounds")

// Report bundles the metrics for one carrier/embedded pair.
type Report struct {
	Channels int
	Changed  int
	MSE      float64
	PSNR     float64
}

// Compare computes every metric in one pass over the images.
func Compare(original, embedded image.Image) (Report, error) {
	diff, err := difference(original, embedded)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Channels: len(diff),
		Changed:  floats.Count(func(v float64) bool { return v != 0 }, diff),
	}
	if len(diff) > 0 {
		r.MSE = floats.Dot(diff, diff) / float64(len(diff))
	}
	r.PSNR = psnr(r.MSE)
	return r, nil
}

// ChangedChannels counts the channel values that differ.
func ChangedChannels(original, embedded image.Image) (int, error) {
	r, err := Compare(original, embedded)
	return r.Changed, err
}

// MSE is the mean squared error over all channel values.
func MSE(original, embedded image.Image) (float64, error) {
	r, err := Compare(original, embedded)
	return r.MSE, err
}

// PSNR is the peak signal-to-noise ratio in dB. Identical images give +Inf.
func PSNR(original, embedded image.Image) (float64, error) {
	r, err := Compare(original, embedded)
	if err != nil {
		return 0, err
	}
	return r.PSNR, nil
}

func psnr(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(maxValue*maxValue/mse)
}

func difference(a, b image.Image) ([]float64, error) {
	if a.Bounds() != b.Bounds() {
		return nil, fmt.Errorf("%w: %v != %v", ErrBoundsMismatch, a.Bounds(), b.Bounds())
	}
	va, vb := channels(a), channels(b)
	return floats.SubTo(make([]float64, len(va)), va, vb), nil
}

func channels(img image.Image) []float64 {
	order := lsb.NewScanOrder(img.Bounds())
	values := make([]float64, 0, order.Len())
	var c color.NRGBA
	for _, s := range order.Slots() {
		if s.Channel == lsb.Red {
			c = color.NRGBAModel.Convert(img.At(s.X, s.Y)).(color.NRGBA)
		}
		switch s.Channel {
		case lsb.Red:
			values = append(values, float64(c.R))
		case lsb.Green:
			values = append(values, float64(c.G))
		case lsb.Blue:
			values = append(values, float64(c.B))
		}
	}
	return values
}
