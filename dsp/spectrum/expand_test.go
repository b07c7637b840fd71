package spectrum

import (
	"fmt"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		i, j, h, w int
		row, col   int
		direct     bool
	}{
		{i: 0, j: 0, h: 4, w: 6, row: 0, col: 0, direct: true},
		{i: 2, j: 3, h: 4, w: 6, row: 2, col: 3, direct: true},
		{i: 0, j: 4, h: 4, w: 6, row: 0, col: 2, direct: false},
		{i: 0, j: 5, h: 4, w: 6, row: 0, col: 1, direct: false},
		{i: 1, j: 4, h: 4, w: 6, row: 3, col: 2, direct: false},
		{i: 3, j: 5, h: 4, w: 6, row: 1, col: 1, direct: false},
		{i: 2, j: 5, h: 4, w: 6, row: 2, col: 1, direct: false},
		// Odd width: bins = 3, so column 3 is the first mirrored one.
		{i: 1, j: 3, h: 3, w: 5, row: 2, col: 2, direct: false},
		{i: 0, j: 2, h: 3, w: 5, row: 0, col: 2, direct: true},
		{i: 0, j: 0, h: 1, w: 1, row: 0, col: 0, direct: true},
		{i: 0, j: 1, h: 1, w: 2, row: 0, col: 1, direct: true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%dx%d/(%d,%d)", tt.h, tt.w, tt.i, tt.j)
		t.Run(name, func(t *testing.T) {
			row, col, direct := Expand(tt.i, tt.j, tt.h, tt.w)
			if row != tt.row || col != tt.col || direct != tt.direct {
				t.Fatalf("Expand() = (%d, %d, %v), want (%d, %d, %v)",
					row, col, direct, tt.row, tt.col, tt.direct)
			}
		})
	}
}

func TestExpandMirrorsAlwaysReferenceDirectCells(t *testing.T) {
	for h := 1; h <= 7; h++ {
		for w := 1; w <= 9; w++ {
			for i := 0; i < h; i++ {
				for j := 0; j < w; j++ {
					row, col, direct := Expand(i, j, h, w)
					if row < 0 || row >= h || col < 0 || col >= w {
						t.Fatalf("%dx%d (%d,%d): source (%d,%d) out of bounds", h, w, i, j, row, col)
					}
					if direct {
						continue
					}
					if _, _, srcDirect := Expand(row, col, h, w); !srcDirect {
						t.Fatalf("%dx%d (%d,%d): source (%d,%d) is not direct", h, w, i, j, row, col)
					}
				}
			}
		}
	}
}
