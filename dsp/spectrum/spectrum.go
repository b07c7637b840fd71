package spectrum

import (
	"github.com/cwbudde/algo-fftviz/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// splitParts copies in into pooled real and imaginary scratch slices.
// The caller must release buf with buffer.Floats.Put.
func splitParts(in []complex128) (re, im []float64, buf *buffer.Buffer[float64]) {
	n := len(in)
	buf = buffer.Floats.Get(2 * n)
	s := buf.Samples()
	re, im = s[:n], s[n:]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// MagnitudeInto writes |in[k]| into dst, which must be as long as in.
//
// The bins are split into pooled real and imaginary scratch so the SIMD kernel
// of MagnitudeFromParts can run on them; in steady state nothing is allocated.
func MagnitudeInto(dst []float64, in []complex128) {
	re, im, buf := splitParts(in)
	defer buffer.Floats.Put(buf)

	MagnitudeFromParts(dst, re, im)
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real and
// imaginary parts in separate slices. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}
