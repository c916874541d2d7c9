package quality

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray(rect image.Rectangle, v uint8) *image.RGBA {
	img := image.NewRGBA(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func TestCompare(t *testing.T) {
	rect := image.Rect(0, 0, 5, 4)
	a := gray(rect, 100)
	b := gray(rect, 100)
	b.Set(0, 0, color.RGBA{101, 100, 99, 255})
	b.Set(4, 3, color.RGBA{100, 102, 100, 255})

	r, err := Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, 60, r.Channels)
	assert.Equal(t, 3, r.Changed)
	assert.InDelta(t, 6.0/60.0, r.MSE, 1e-12)
	assert.InDelta(t, 10*math.Log10(255*255/(6.0/60.0)), r.PSNR, 1e-9)

	changed, err := ChangedChannels(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, changed)

	mse, err := MSE(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, mse, 1e-12)
}

func TestPSNR_Identical(t *testing.T) {
	a := gray(image.Rect(0, 0, 3, 3), 7)
	v, err := PSNR(a, a)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestPSNR_IgnoresAlpha(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	a.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 255})
	b.SetNRGBA(0, 0, color.NRGBA{10, 20, 30, 128})
	changed, err := ChangedChannels(a, b)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestBoundsMismatch(t *testing.T) {
	_, err := PSNR(gray(image.Rect(0, 0, 2, 2), 0), gray(image.Rect(1, 1, 3, 3), 0))
	assert.ErrorIs(t, err, ErrBoundsMismatch)
}
