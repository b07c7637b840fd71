// Package imageio decodes input images into 8-bit grayscale grids and writes
// grids back out as PNG.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode indicates that the input could not be opened or decoded.
	ErrDecode = errors.New("imageio: decode failed")
	// ErrEncode indicates that an output image could not be written.
	ErrEncode = errors.New("imageio: encode failed")
)

// Load reads and decodes the image at path and converts it to grayscale.
// It returns the registered format name ("jpeg", "png", ...).
func Load(path string) (*image.Gray, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Decode decodes an image from r and converts it to grayscale.
func Decode(r io.Reader) (*image.Gray, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return ToGray(img), format, nil
}

// ToGray converts img to an *image.Gray whose bounds start at (0,0).
// A *image.Gray input is copied, never aliased.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)

	return dst
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}

// SavePNG writes img to path as PNG, replacing any existing file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrEncode, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Encode(w, img); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return nil
}
