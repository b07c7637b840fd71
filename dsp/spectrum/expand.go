package spectrum

import "github.com/cwbudde/algo-fftviz/dsp/fft2d"

// Expand maps cell (i, j) of a full height x width spectrum to the cell of
// the compact spectrum that holds its magnitude.
//
// Columns j < width/2+1 are computed directly and map to themselves.
// For the remaining columns the Hermitian mirror is returned:
// (0, width-j) on row 0, (height-i, width-j) elsewhere. The mirror column is
// always below width/2+1, so a mirrored cell never refers to another
// mirrored cell and the direct cells can be filled first in any order.
func Expand(i, j, height, width int) (row, col int, direct bool) {
	if j < fft2d.Bins(width) {
		return i, j, true
	}
	if i == 0 {
		return 0, width - j, false
	}
	return height - i, width - j, false
}
