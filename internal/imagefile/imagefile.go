package imagefile

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// registered so lossy inputs are recognized and rejected by name
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a lossless raster format the CLI reads and writes.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var extensions = map[string]Format{
	".png":  PNG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat resolves a format name such as "png" or ".tif".
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(n, ".") {
		n = "." + n
	}
	if f, ok := extensions[n]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath returns the format named by the file extension of path.
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// OutputPath appends the extension of f when name has no extension.
func OutputPath(name string, f Format) string {
	if filepath.Ext(name) == "" {
		return name + f.Ext()
	}
	return name
}

// Decode reads a PNG, BMP or TIFF image. Lossy formats are refused because
// their pixels do not keep least significant bits.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	switch name {
	case "png":
		return img, PNG, nil
	case "bmp":
		return img, BMP, nil
	case "tiff":
		return img, TIFF, nil
	}
	return nil, "", fmt.Errorf("%w: %s is not lossless", ErrUnsupportedFormat, name)
}

// Encode writes img in format f without lossy compression.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Uncompressed})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

func Open(path string) (image.Image, Format, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}
	file, err := os.Open(p)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

func Save(path string, img image.Image, f Format) (err error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	file, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(file)
	if err := Encode(w, img, f); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return w.Flush()
}
