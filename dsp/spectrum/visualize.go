package spectrum

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/cwbudde/algo-fftviz/dsp/buffer"
	"github.com/cwbudde/algo-fftviz/dsp/core"
	"github.com/cwbudde/algo-fftviz/dsp/fft2d"
	"github.com/cwbudde/algo-fftviz/dsp/window"
)

// ErrInvalidSize indicates a nil or empty source image.
var ErrInvalidSize = errors.New("spectrum: invalid size")

const (
	// DefaultMagnitudeFloor is the largest magnitude treated as an empty bin.
	// Round-off in a forward transform scaled by 1/(height*width) of 8-bit
	// input stays several orders of magnitude below it.
	DefaultMagnitudeFloor = 1e-10
	// DefaultFlatFill is the output level of a spectrum without contrast.
	DefaultFlatFill uint8 = 128
)

type config struct {
	backend    fft2d.Backend
	floor      float64
	flatFill   uint8
	window     window.Type
	windowOpts []window.Option
}

// Option configures LogMagnitude, Visualize and Render.
type Option func(*config)

// WithBackend selects the FFT backend of the forward transform.
func WithBackend(b fft2d.Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

// WithMagnitudeFloor sets the magnitude at or below which a bin is empty.
// Negative and non-finite values are ignored.
func WithMagnitudeFloor(floor float64) Option {
	return func(cfg *config) {
		if floor >= 0 && !math.IsInf(floor, 0) {
			cfg.floor = floor
		}
	}
}

// WithFlatFill sets the level used for every pixel when the spectrum has no
// contrast, e.g. for a constant image.
func WithFlatFill(level uint8) Option {
	return func(cfg *config) {
		cfg.flatFill = level
	}
}

// WithWindow tapers the grid with a separable window before the transform.
// The default, window.TypeRectangular, leaves the pixels unweighted.
func WithWindow(t window.Type, opts ...window.Option) Option {
	return func(cfg *config) {
		cfg.window = t
		cfg.windowOpts = opts
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		backend:  fft2d.BackendAuto,
		floor:    DefaultMagnitudeFloor,
		flatFill: DefaultFlatFill,
		window:   window.TypeRectangular,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Range holds the extremes of the finite log magnitudes.
type Range struct {
	Min float64
	Max float64
	// Finite counts the directly computed bins above the magnitude floor.
	Finite int
}

// Flat reports whether the range cannot be stretched onto 0..255.
func (r Range) Flat() bool {
	return r.Finite == 0 || r.Max == r.Min
}

func (r *Range) add(v float64) {
	if r.Finite == 0 {
		r.Min, r.Max = v, v
	} else {
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	r.Finite++
}

// LogSpectrum is a full-size, centered log-magnitude spectrum.
type LogSpectrum struct {
	Height int
	Width  int
	// Values holds log|X| row-major; empty bins are -Inf.
	Values []float64
	Range  Range
}

// At returns the log magnitude at row i, column j.
func (s *LogSpectrum) At(i, j int) float64 {
	return s.Values[i*s.Width+j]
}

// LogMagnitude computes the centered log-magnitude spectrum of src.
func LogMagnitude(src *image.Gray, opts ...Option) (*LogSpectrum, error) {
	height, width, err := dims(src)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	values := make([]float64, height*width)

	r, err := analyze(src, height, width, cfg, values)
	if err != nil {
		return nil, err
	}

	return &LogSpectrum{Height: height, Width: width, Values: values, Range: r}, nil
}

// Visualize renders the centered log-magnitude spectrum of src as an 8-bit
// image of the same size. The smallest finite log magnitude maps to 0 and
// the largest to 255.
func Visualize(src *image.Gray, opts ...Option) (*image.Gray, error) {
	height, width, err := dims(src)
	if err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	full := buffer.Floats.Get(height * width)
	defer buffer.Floats.Put(full)

	r, err := analyze(src, height, width, cfg, full.Samples())
	if err != nil {
		return nil, err
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	render(dst, full.Samples(), r, cfg.flatFill)
	return dst, nil
}

// Render stretches s onto 0..255. Only the flat-fill option is used.
func Render(s *LogSpectrum, opts ...Option) *image.Gray {
	cfg := newConfig(opts)
	dst := image.NewGray(image.Rect(0, 0, s.Width, s.Height))
	render(dst, s.Values, s.Range, cfg.flatFill)
	return dst
}

func dims(src *image.Gray) (height, width int, err error) {
	if src == nil {
		return 0, 0, fmt.Errorf("%w: nil image", ErrInvalidSize)
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, b.Dy(), b.Dx())
	}
	return b.Dy(), b.Dx(), nil
}

// analyze fills full (height*width) with log magnitudes and returns their range.
func analyze(src *image.Gray, height, width int, cfg config, full []float64) (Range, error) {
	bins := fft2d.Bins(width)

	modulated := buffer.Floats.Get(height * width)
	defer buffer.Floats.Put(modulated)
	compact := buffer.Complexes.Get(height * bins)
	defer buffer.Complexes.Put(compact)

	modulate(modulated.Samples(), src, height, width)
	if err := window.Apply2D(cfg.window, modulated.Samples(), height, width, width, cfg.windowOpts...); err != nil {
		return Range{}, fmt.Errorf("spectrum: %w", err)
	}

	plan, err := fft2d.NewPlan(height, width,
		fft2d.WithBackend(cfg.backend),
		fft2d.WithForwardScale(1/float64(height*width)),
	)
	if err != nil {
		return Range{}, fmt.Errorf("spectrum: %w", err)
	}
	if err := plan.Forward(compact.Samples(), modulated.Samples()); err != nil {
		return Range{}, fmt.Errorf("spectrum: %w", err)
	}

	r := fillDirect(full, compact.Samples(), height, width, cfg.floor)
	fillMirrored(full, height, width)
	return r, nil
}

// modulate writes pixel(i, j) * (-1)^(i+j) into dst.
func modulate(dst []float64, src *image.Gray, height, width int) {
	b := src.Bounds()
	for i := 0; i < height; i++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+i)
		row := src.Pix[off : off+width]
		for j, p := range row {
			dst[i*width+j] = float64(p) * core.Checkerboard(i, j)
		}
	}
}

// fillDirect stores log|X| for the compact columns and tracks their range.
func fillDirect(full []float64, compact []complex128, height, width int, floor float64) Range {
	bins := fft2d.Bins(width)
	mag := buffer.Floats.Get(bins)
	defer buffer.Floats.Put(mag)

	var r Range
	for i := 0; i < height; i++ {
		MagnitudeInto(mag.Samples(), compact[i*bins:(i+1)*bins])
		for j, m := range mag.Samples() {
			v := math.Inf(-1)
			if m > floor {
				v = math.Log(m)
				r.add(v)
			}
			full[i*width+j] = v
		}
	}
	return r
}

// fillMirrored copies the remaining columns from their Hermitian mirror.
func fillMirrored(full []float64, height, width int) {
	for i := 0; i < height; i++ {
		for j := fft2d.Bins(width); j < width; j++ {
			row, col, _ := Expand(i, j, height, width)
			full[i*width+j] = full[row*width+col]
		}
	}
}

func render(dst *image.Gray, values []float64, r Range, flatFill uint8) {
	if r.Flat() {
		for i := range dst.Pix {
			dst.Pix[i] = flatFill
		}
		return
	}

	width := dst.Rect.Dx()
	scale := 255 / (r.Max - r.Min)
	for i := 0; i < dst.Rect.Dy(); i++ {
		row := dst.Pix[i*dst.Stride : i*dst.Stride+width]
		for j := range row {
			v := values[i*width+j]
			if math.IsInf(v, -1) {
				row[j] = 0
				continue
			}
			row[j] = core.ToUint8((v - r.Min) * scale)
		}
	}
}
