package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Checkerboard returns (-1)^(row+col).
//
// Multiplying a grid by this pattern before a forward DFT moves the
// zero-frequency bin from the corner to (height/2, width/2).
func Checkerboard(row, col int) float64 {
	if (row+col)&1 == 0 {
		return 1
	}

	return -1
}

// ToUint8 rounds x to the nearest integer and clamps it to [0, 255].
// NaN maps to 0.
func ToUint8(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}

	return uint8(Clamp(math.Round(x), 0, math.MaxUint8))
}
