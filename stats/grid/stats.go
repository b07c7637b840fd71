// Package grid computes summary statistics of 8-bit grayscale grids.
package grid

import (
	"image"
	"math"
)

// Stats holds pixel statistics of a grayscale grid.
type Stats struct {
	Count    int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
	Min      uint8
	MinPos   image.Point
	Max      uint8
	MaxPos   image.Point
	Contrast int // Max - Min
	// Entropy is the Shannon entropy of the level histogram in bits.
	Entropy float64
}

// Calculate computes all statistics of img in a single pass, using Welford's
// online algorithm for the moments. Positions are relative to the image
// origin. A nil or empty image yields the zero Stats.
func Calculate(img *image.Gray) Stats {
	if img == nil || img.Rect.Empty() {
		return Stats{}
	}

	var (
		mean, m2, m3, m4 float64
		hist             Histogram
		minVal           = uint8(math.MaxUint8)
		maxVal           uint8
		minPos, maxPos   image.Point
	)

	b := img.Rect
	n := 0

	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x, p := range img.Pix[off : off+b.Dx()] {
			hist[p]++

			if n == 0 || p < minVal {
				minVal, minPos = p, image.Pt(x, y)
			}

			if n == 0 || p > maxVal {
				maxVal, maxPos = p, image.Pt(x, y)
			}

			n++
			v := float64(p)
			nf := float64(n)
			delta := v - mean
			deltaN := delta / nf
			deltaN2 := deltaN * deltaN
			term1 := delta * deltaN * float64(n-1)

			// M4 before M3 before M2.
			m4 += term1*deltaN2*(nf*nf-3*nf+3) + 6*deltaN2*m2 - 4*deltaN*m3
			m3 += term1*deltaN*(nf-2) - 3*deltaN*m2
			m2 += term1
			mean += deltaN
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Count:    n,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skewness: skewness,
		Kurtosis: kurtosis,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Contrast: int(maxVal) - int(minVal),
		Entropy:  hist.Entropy(),
	}
}

// Histogram counts pixels per gray level.
type Histogram [256]int

// HistogramOf returns the level histogram of img.
func HistogramOf(img *image.Gray) Histogram {
	var h Histogram
	if img == nil {
		return h
	}

	b := img.Rect
	for y := 0; y < b.Dy(); y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		for _, p := range img.Pix[off : off+b.Dx()] {
			h[p]++
		}
	}

	return h
}

// Total returns the number of counted pixels.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}

	return total
}

// Entropy returns the Shannon entropy of the histogram in bits.
func (h *Histogram) Entropy() float64 {
	total := h.Total()
	if total == 0 {
		return 0
	}

	var e float64
	for _, c := range h {
		if c == 0 {
			continue
		}

		p := float64(c) / float64(total)
		e -= p * math.Log2(p)
	}

	return e
}
