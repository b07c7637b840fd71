package fft2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("fft2d: invalid size")
	// ErrInvalidStride indicates a row stride shorter than the row it holds.
	ErrInvalidStride = errors.New("fft2d: invalid stride")
	// ErrInvalidScale indicates a zero, NaN or infinite forward scale.
	ErrInvalidScale = errors.New("fft2d: invalid forward scale")
	// ErrBufferSize indicates an input or output slice that is too short.
	ErrBufferSize = errors.New("fft2d: buffer too short")
	// ErrUnknownBackend indicates an unrecognized backend name.
	ErrUnknownBackend = errors.New("fft2d: unknown backend")
	// ErrUnsupportedLength indicates a transform length the selected backend
	// cannot compute exactly.
	ErrUnsupportedLength = errors.New("fft2d: unsupported length")
)

type config struct {
	backend   Backend
	scale     float64
	inStride  int
	outStride int
}

// Option configures a Plan.
type Option func(*config)

// WithBackend selects the 1-D FFT implementation.
func WithBackend(b Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

// WithForwardScale sets the factor applied to every output bin.
// 1/(height*width) turns the transform into a mean-preserving one.
func WithForwardScale(scale float64) Option {
	return func(cfg *config) {
		cfg.scale = scale
	}
}

// WithInputStride sets the distance in samples between consecutive input rows.
func WithInputStride(stride int) Option {
	return func(cfg *config) {
		cfg.inStride = stride
	}
}

// WithOutputStride sets the distance in bins between consecutive output rows.
func WithOutputStride(stride int) Option {
	return func(cfg *config) {
		cfg.outStride = stride
	}
}

// Bins returns the number of non-redundant column bins for a row of width samples.
func Bins(width int) int {
	return width/2 + 1
}

// Plan is a reusable forward real-to-complex 2-D transform.
//
// A Plan owns column scratch memory and is not safe for concurrent use.
type Plan struct {
	height    int
	width     int
	bins      int
	inStride  int
	outStride int
	scale     float64
	backend   Backend

	rows realTransform
	cols complexTransform

	colIn  []complex128
	colOut []complex128
}

// NewPlan prepares a transform for height x width real input.
func NewPlan(height, width int, opts ...Option) (*Plan, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, height, width)
	}

	cfg := config{scale: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	bins := Bins(width)
	if cfg.inStride == 0 {
		cfg.inStride = width
	}
	if cfg.outStride == 0 {
		cfg.outStride = bins
	}
	if cfg.inStride < width {
		return nil, fmt.Errorf("%w: input stride %d < width %d", ErrInvalidStride, cfg.inStride, width)
	}
	if cfg.outStride < bins {
		return nil, fmt.Errorf("%w: output stride %d < %d bins", ErrInvalidStride, cfg.outStride, bins)
	}
	if cfg.scale == 0 || math.IsNaN(cfg.scale) || math.IsInf(cfg.scale, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, cfg.scale)
	}
	if _, ok := backendNames[cfg.backend]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, cfg.backend)
	}

	p := &Plan{
		height:    height,
		width:     width,
		bins:      bins,
		inStride:  cfg.inStride,
		outStride: cfg.outStride,
		scale:     cfg.scale,
		backend:   cfg.backend,
	}

	if cfg.backend == BackendGoDSP {
		return p, nil
	}

	var err error
	if p.rows, err = newRealTransform(width, cfg.backend); err != nil {
		return nil, err
	}
	if p.cols, err = newComplexTransform(height, cfg.backend); err != nil {
		return nil, err
	}
	p.colIn = make([]complex128, height)
	p.colOut = make([]complex128, height)

	return p, nil
}

// Height returns the number of input rows.
func (p *Plan) Height() int { return p.height }

// Width returns the number of input columns.
func (p *Plan) Width() int { return p.width }

// Bins returns the number of compact output columns, width/2+1.
func (p *Plan) Bins() int { return p.bins }

// InputStride returns the distance between input rows.
func (p *Plan) InputStride() int { return p.inStride }

// OutputStride returns the distance between output rows.
func (p *Plan) OutputStride() int { return p.outStride }

// Backend returns the configured backend.
func (p *Plan) Backend() Backend { return p.backend }

// InputLen returns the minimum length of a source slice.
func (p *Plan) InputLen() int {
	return (p.height-1)*p.inStride + p.width
}

// OutputLen returns the minimum length of a destination slice.
func (p *Plan) OutputLen() int {
	return (p.height-1)*p.outStride + p.bins
}

// Forward transforms src into the compact spectrum dst.
//
// Row i of the input starts at src[i*InputStride()], row i of the output at
// dst[i*OutputStride()]. Elements between rows are neither read nor written.
func (p *Plan) Forward(dst []complex128, src []float64) error {
	if n := p.InputLen(); len(src) < n {
		return fmt.Errorf("%w: input has %d samples, need %d", ErrBufferSize, len(src), n)
	}
	if n := p.OutputLen(); len(dst) < n {
		return fmt.Errorf("%w: output has %d bins, need %d", ErrBufferSize, len(dst), n)
	}

	if p.backend == BackendGoDSP {
		p.forwardGoDSP(dst, src)
		return nil
	}

	for i := 0; i < p.height; i++ {
		in := src[i*p.inStride : i*p.inStride+p.width]
		out := dst[i*p.outStride : i*p.outStride+p.bins]
		if err := p.rows.forward(out, in); err != nil {
			return fmt.Errorf("fft2d: row %d: %w", i, err)
		}
	}

	for k := 0; k < p.bins; k++ {
		for i := range p.colIn {
			p.colIn[i] = dst[i*p.outStride+k]
		}
		if err := p.cols.forward(p.colOut, p.colIn); err != nil {
			return fmt.Errorf("fft2d: column %d: %w", k, err)
		}
		for i, v := range p.colOut {
			dst[i*p.outStride+k] = p.scaled(v)
		}
	}

	return nil
}

func (p *Plan) forwardGoDSP(dst []complex128, src []float64) {
	rows := make([][]float64, p.height)
	for i := range rows {
		rows[i] = make([]float64, p.width)
		copy(rows[i], src[i*p.inStride:i*p.inStride+p.width])
	}

	full := fft.FFT2Real(rows)
	for i, row := range full {
		for k := 0; k < p.bins; k++ {
			dst[i*p.outStride+k] = p.scaled(row[k])
		}
	}
}

func (p *Plan) scaled(v complex128) complex128 {
	if p.scale == 1 {
		return v
	}
	return complex(real(v)*p.scale, imag(v)*p.scale)
}

// ForwardReal is a one-shot transform of a tightly packed height x width grid.
// It returns a newly allocated compact spectrum with row stride width/2+1.
func ForwardReal(src []float64, height, width int, opts ...Option) ([]complex128, error) {
	opts = append(opts, WithInputStride(width), WithOutputStride(Bins(width)))
	plan, err := NewPlan(height, width, opts...)
	if err != nil {
		return nil, err
	}

	dst := make([]complex128, plan.OutputLen())
	if err := plan.Forward(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
