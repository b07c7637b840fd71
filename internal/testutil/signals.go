package testutil

import (
	"image"
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// UniformGray returns a height x width grid with every pixel set to value.
func UniformGray(height, width int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}

// NoiseGray returns a reproducible grid of uniformly distributed pixels.
func NoiseGray(seed int64, height, width int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	rng := rand.New(rand.NewSource(seed))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	return img
}

// Grating returns a cosine grating with cyclesX periods across the width and
// cyclesY periods down the height, centered on mid-gray.
func Grating(height, width int, cyclesX, cyclesY float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			phase := 2 * math.Pi * (cyclesX*float64(x)/float64(width) + cyclesY*float64(y)/float64(height))
			img.Pix[y*img.Stride+x] = uint8(math.Round(127.5 + 100*math.Cos(phase)))
		}
	}
	return img
}

// GrayFromRows builds a grid from literal rows, which must all have equal length.
func GrayFromRows(rows [][]uint8) *image.Gray {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	img := image.NewGray(image.Rect(0, 0, width, len(rows)))
	for y, row := range rows {
		copy(img.Pix[y*img.Stride:], row)
	}
	return img
}
