package spectrum

import (
	"errors"
	"fmt"
	"image"
	"math"
	"testing"

	"github.com/cwbudde/algo-fftviz/dsp/fft2d"
	"github.com/cwbudde/algo-fftviz/dsp/window"
	"github.com/cwbudde/algo-fftviz/internal/testutil"
)

func TestVisualizePreservesDimensions(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {3, 1}, {2, 3}, {7, 5}, {8, 8}, {13, 10}}

	for _, sz := range sizes {
		h, w := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", h, w), func(t *testing.T) {
			out, err := Visualize(testutil.NoiseGray(int64(h*w), h, w))
			if err != nil {
				t.Fatalf("Visualize() error = %v", err)
			}
			if b := out.Bounds(); b != image.Rect(0, 0, w, h) {
				t.Fatalf("bounds = %v, want %v", b, image.Rect(0, 0, w, h))
			}
		})
	}
}

func TestVisualizeSpansFullRange(t *testing.T) {
	for _, sz := range [][2]int{{16, 12}, {9, 7}, {32, 32}} {
		h, w := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", h, w), func(t *testing.T) {
			out, err := Visualize(testutil.NoiseGray(5, h, w))
			if err != nil {
				t.Fatalf("Visualize() error = %v", err)
			}

			var zero, full bool
			for _, p := range out.Pix {
				zero = zero || p == 0
				full = full || p == 255
			}
			if !zero || !full {
				t.Fatalf("output does not span 0..255 (has 0: %v, has 255: %v)", zero, full)
			}
		})
	}
}

func TestVisualizeMirrorSymmetry(t *testing.T) {
	for _, sz := range [][2]int{{9, 10}, {8, 7}, {1, 6}, {4, 4}} {
		h, w := sz[0], sz[1]
		t.Run(fmt.Sprintf("%dx%d", h, w), func(t *testing.T) {
			out, err := Visualize(testutil.NoiseGray(11, h, w))
			if err != nil {
				t.Fatalf("Visualize() error = %v", err)
			}

			for i := 0; i < h; i++ {
				for j := fft2d.Bins(w); j < w; j++ {
					mi, mj := (h-i)%h, w-j
					if got, want := out.GrayAt(j, i).Y, out.GrayAt(mj, mi).Y; got != want {
						t.Fatalf("out(%d,%d) = %d, mirror out(%d,%d) = %d", i, j, got, mi, mj, want)
					}
				}
			}
		})
	}
}

func TestVisualizeConstantInputIsFlat(t *testing.T) {
	img := testutil.UniformGray(8, 8, 128)

	s, err := LogMagnitude(img)
	if err != nil {
		t.Fatalf("LogMagnitude() error = %v", err)
	}
	if s.Range.Finite != 1 {
		t.Fatalf("finite bins = %d, want 1", s.Range.Finite)
	}
	if got := s.At(4, 4); math.Abs(got-math.Log(128)) > 1e-12 {
		t.Fatalf("center bin = %v, want log(128)", got)
	}
	if !s.Range.Flat() {
		t.Fatalf("range %+v should be flat", s.Range)
	}

	for _, fill := range []uint8{DefaultFlatFill, 0, 255} {
		out, err := Visualize(img, WithFlatFill(fill))
		if err != nil {
			t.Fatalf("Visualize() error = %v", err)
		}
		testutil.RequireGrayNear(t, out, testutil.UniformGray(8, 8, fill), 0)
	}
}

func TestVisualizeConstantLargeIsFlat(t *testing.T) {
	tests := []struct {
		backend fft2d.Backend
		h, w    int
	}{
		{backend: fft2d.BackendAuto, h: 400, w: 640},
		{backend: fft2d.BackendGonum, h: 400, w: 640},
		{backend: fft2d.BackendGoDSP, h: 400, w: 640},
		{backend: fft2d.BackendAlgoFFT, h: 256, w: 512},
		{backend: fft2d.BackendAuto, h: 480, w: 512},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%dx%d", tt.backend, tt.h, tt.w), func(t *testing.T) {
			img := testutil.UniformGray(tt.h, tt.w, 200)

			out, err := Visualize(img, WithBackend(tt.backend))
			if err != nil {
				t.Fatalf("Visualize() error = %v", err)
			}
			testutil.RequireGrayNear(t, out, testutil.UniformGray(tt.h, tt.w, DefaultFlatFill), 0)
		})
	}
}

func TestVisualizeAlgoFFTRejectsUnsupportedSize(t *testing.T) {
	_, err := Visualize(testutil.UniformGray(400, 640, 200), WithBackend(fft2d.BackendAlgoFFT))
	if !errors.Is(err, fft2d.ErrUnsupportedLength) {
		t.Fatalf("Visualize() error = %v, want %v", err, fft2d.ErrUnsupportedLength)
	}
}

func TestVisualizeTwoByTwoUniform(t *testing.T) {
	img := testutil.UniformGray(2, 2, 100)

	s, err := LogMagnitude(img)
	if err != nil {
		t.Fatalf("LogMagnitude() error = %v", err)
	}
	if s.Range.Finite != 1 || math.Abs(s.Range.Max-math.Log(100)) > 1e-12 {
		t.Fatalf("range = %+v, want one bin at log(100)", s.Range)
	}

	out, err := Visualize(img)
	if err != nil {
		t.Fatalf("Visualize() error = %v", err)
	}
	testutil.RequireGrayNear(t, out, testutil.UniformGray(2, 2, DefaultFlatFill), 0)
}

func TestLogMagnitudeNeverNaN(t *testing.T) {
	// Odd sizes do not modulate a constant into a single bin.
	for _, sz := range [][2]int{{5, 3}, {3, 3}, {1, 1}, {1, 2}} {
		s, err := LogMagnitude(testutil.UniformGray(sz[0], sz[1], 200))
		if err != nil {
			t.Fatalf("LogMagnitude() error = %v", err)
		}
		for i, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 1) {
				t.Fatalf("%v: Values[%d] = %v", sz, i, v)
			}
		}
	}
}

func TestVisualizeCentersZeroFrequency(t *testing.T) {
	const n = 16
	out, err := Visualize(testutil.Grating(n, n, 3, 0))
	if err != nil {
		t.Fatalf("Visualize() error = %v", err)
	}

	if dc := out.GrayAt(n/2, n/2).Y; dc != 255 {
		t.Fatalf("center = %d, want 255", dc)
	}

	left, right := out.GrayAt(n/2-3, n/2).Y, out.GrayAt(n/2+3, n/2).Y
	if left != right {
		t.Fatalf("grating peaks differ: %d vs %d", left, right)
	}

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if y == n/2 && (x == n/2 || x == n/2-3 || x == n/2+3) {
				continue
			}
			if p := out.GrayAt(x, y).Y; p >= left {
				t.Fatalf("pixel (%d,%d) = %d not below grating peak %d", y, x, p, left)
			}
		}
	}
}

func TestRangeMatchesFullArray(t *testing.T) {
	s, err := LogMagnitude(testutil.NoiseGray(3, 11, 14))
	if err != nil {
		t.Fatalf("LogMagnitude() error = %v", err)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range s.Values {
		if math.IsInf(v, -1) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if lo != s.Range.Min || hi != s.Range.Max {
		t.Fatalf("range = [%v, %v], full array = [%v, %v]", s.Range.Min, s.Range.Max, lo, hi)
	}
}

func TestRenderMatchesVisualize(t *testing.T) {
	img := testutil.NoiseGray(8, 10, 12)

	s, err := LogMagnitude(img)
	if err != nil {
		t.Fatalf("LogMagnitude() error = %v", err)
	}
	out, err := Visualize(img)
	if err != nil {
		t.Fatalf("Visualize() error = %v", err)
	}

	testutil.RequireGrayNear(t, Render(s), out, 0)
}

func TestVisualizeBackendsAgree(t *testing.T) {
	cases := []struct {
		h, w     int
		backends []fft2d.Backend
	}{
		{h: 8, w: 16, backends: fft2d.Backends()},
		{h: 6, w: 10, backends: []fft2d.Backend{fft2d.BackendAuto, fft2d.BackendGonum, fft2d.BackendGoDSP}},
	}

	for _, tc := range cases {
		img := testutil.NoiseGray(21, tc.h, tc.w)
		ref, err := LogMagnitude(img, WithBackend(fft2d.BackendGonum))
		if err != nil {
			t.Fatalf("reference LogMagnitude() error = %v", err)
		}
		refImg := Render(ref)

		for _, b := range tc.backends {
			t.Run(fmt.Sprintf("%s/%dx%d", b, tc.h, tc.w), func(t *testing.T) {
				s, err := LogMagnitude(img, WithBackend(b))
				if err != nil {
					t.Fatalf("LogMagnitude() error = %v", err)
				}
				testutil.RequireSliceNearlyEqual(t, s.Values, ref.Values, 1e-6)

				out, err := Visualize(img, WithBackend(b))
				if err != nil {
					t.Fatalf("Visualize() error = %v", err)
				}
				testutil.RequireGrayNear(t, out, refImg, 1)
			})
		}
	}
}

func TestVisualizeSubImage(t *testing.T) {
	parent := testutil.NoiseGray(4, 12, 12)
	sub := parent.SubImage(image.Rect(3, 2, 11, 8)).(*image.Gray)

	copied := image.NewGray(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			copied.SetGray(x, y, sub.GrayAt(x+3, y+2))
		}
	}

	got, err := Visualize(sub)
	if err != nil {
		t.Fatalf("Visualize(sub) error = %v", err)
	}
	want, err := Visualize(copied)
	if err != nil {
		t.Fatalf("Visualize(copy) error = %v", err)
	}
	testutil.RequireGrayNear(t, got, want, 0)
}

func TestMagnitudeFloorEmptiesBins(t *testing.T) {
	img := testutil.NoiseGray(2, 4, 4)

	s, err := LogMagnitude(img, WithMagnitudeFloor(1e6))
	if err != nil {
		t.Fatalf("LogMagnitude() error = %v", err)
	}
	if s.Range.Finite != 0 || !s.Range.Flat() {
		t.Fatalf("range = %+v, want no finite bins", s.Range)
	}

	out, err := Visualize(img, WithMagnitudeFloor(1e6), WithFlatFill(7))
	if err != nil {
		t.Fatalf("Visualize() error = %v", err)
	}
	testutil.RequireGrayNear(t, out, testutil.UniformGray(4, 4, 7), 0)
}

func TestVisualizeInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		img  *image.Gray
	}{
		{name: "nil", img: nil},
		{name: "zero width", img: image.NewGray(image.Rect(0, 0, 0, 5))},
		{name: "zero height", img: image.NewGray(image.Rect(0, 0, 5, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Visualize(tt.img); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("Visualize() error = %v, want ErrInvalidSize", err)
			}
			if _, err := LogMagnitude(tt.img); !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("LogMagnitude() error = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestVisualizeUnknownBackend(t *testing.T) {
	_, err := Visualize(testutil.UniformGray(2, 2, 1), WithBackend(fft2d.Backend(42)))
	if !errors.Is(err, fft2d.ErrUnknownBackend) {
		t.Fatalf("Visualize() error = %v, want ErrUnknownBackend", err)
	}
}

func TestVisualizeWindow(t *testing.T) {
	img := testutil.UniformGray(8, 8, 90)

	s, err := LogMagnitude(img, WithWindow(window.TypeHann))
	if err != nil {
		t.Fatalf("LogMagnitude() error = %v", err)
	}
	if s.Range.Flat() {
		t.Fatalf("windowed constant image should leak into more bins: %+v", s.Range)
	}

	out := Render(s)
	if dc := out.GrayAt(4, 4).Y; dc != 255 {
		t.Fatalf("center = %d, want 255", dc)
	}

	plain, err := Visualize(img, WithWindow(window.TypeRectangular))
	if err != nil {
		t.Fatalf("Visualize() error = %v", err)
	}
	testutil.RequireGrayNear(t, plain, testutil.UniformGray(8, 8, DefaultFlatFill), 0)

	if _, err := Visualize(img, WithWindow(window.Type(99))); !errors.Is(err, window.ErrUnknownType) {
		t.Fatalf("Visualize() error = %v, want ErrUnknownType", err)
	}
}
