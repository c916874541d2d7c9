package bench_test

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/yyyoichi/lsbsteg"
)

// BenchmarkEmbed runs a table-driven set of embed benchmarks for common image sizes
func BenchmarkEmbed(b *testing.B) {
	test := []struct {
		name          string
		width, height int
		message       string
	}{
		{name: "240p_short", width: 426, height: 240, message: "Test-Mark"},
		{name: "FHD_short", width: 1920, height: 1080, message: "Test-Mark"},
		{name: "FHD_1KiB", width: 1920, height: 1080, message: strings.Repeat("a", 1024)},
		{name: "FHD_64KiB", width: 1920, height: 1080, message: strings.Repeat("a", 64*1024)},
	}
	ctx := b.Context()

	for _, tt := range test {
		img := createImage(tt.width, tt.height)
		b.Run(tt.name, func(b *testing.B) {
			s, err := lsbsteg.New()
			if err != nil {
				b.Fatalf("Failed to create Stego instance (%s): %v", tt.name, err)
			}
			for b.Loop() {
				dist, err := s.Embed(ctx, img, tt.message)
				if err != nil {
					b.Fatalf("Failed to embed message (%s): %v", tt.name, err)
				}
				_ = dist
			}
		})
	}
}

// BenchmarkBatchEmbed measures embedding with a cached pixel grid
func BenchmarkBatchEmbed(b *testing.B) {
	img := createImage(1920, 1080)
	batch := lsbsteg.NewBatch(img)
	ctx := b.Context()
	for b.Loop() {
		if _, err := batch.Embed(ctx, "Test-Mark"); err != nil {
			b.Fatalf("Failed to embed message: %v", err)
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	ctx := b.Context()
	marked, err := lsbsteg.Embed(ctx, createImage(1920, 1080), strings.Repeat("a", 1024))
	if err != nil {
		b.Fatalf("Failed to embed message: %v", err)
	}
	for b.Loop() {
		if _, err := lsbsteg.Extract(ctx, marked); err != nil {
			b.Fatalf("Failed to extract message: %v", err)
		}
	}
}

// createImage creates a widthxheight test image with gradient pattern
func createImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			// Create gradient effect to simulate realistic image data
			r := uint8((x * 255) / width)
			g := uint8((y * 255) / height)
			b := uint8(((x + y) * 255) / (width + height))
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}
