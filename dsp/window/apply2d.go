package window

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Apply2D multiplies a height x width row-major grid in place by the
// separable window w(i,j) = w_h(i) * w_w(j). Rows start stride elements apart.
// TypeRectangular leaves buf untouched.
func Apply2D(t Type, buf []float64, height, width, stride int, opts ...Option) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidLength, height, width)
	}

	if stride < width {
		return fmt.Errorf("%w: stride %d < width %d", ErrBufferSize, stride, width)
	}

	if need := (height-1)*stride + width; len(buf) < need {
		return fmt.Errorf("%w: %d < %d", ErrBufferSize, len(buf), need)
	}

	if t == TypeRectangular {
		return nil
	}

	rows, err := Generate(t, height, opts...)
	if err != nil {
		return err
	}

	cols, err := Generate(t, width, opts...)
	if err != nil {
		return err
	}

	for i, g := range rows {
		row := buf[i*stride : i*stride+width]
		vecmath.MulBlockInPlace(row, cols)
		vecmath.ScaleBlock(row, row, g)
	}

	return nil
}
