package resample

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

var (
	// ErrInvalidSize indicates an empty source or a non-positive target size.
	ErrInvalidSize = errors.New("resample: invalid size")
	// ErrInvalidFactor indicates a downscale factor below 1.
	ErrInvalidFactor = errors.New("resample: invalid factor")
	// ErrUnknownKernel indicates a kernel name or value that is not supported.
	ErrUnknownKernel = errors.New("resample: unknown kernel")
)

type config struct {
	kernel Kernel
}

// Option configures Resize and Downscale.
type Option func(*config)

// WithKernel selects the interpolation kernel.
func WithKernel(k Kernel) Option {
	return func(cfg *config) {
		cfg.kernel = k
	}
}

func defaultConfig() config {
	return config{kernel: KernelLinear}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Resize returns a new height x width grid sampled from src. The target may
// be larger or smaller than the source; src is never modified and may have
// any origin. The result always starts at (0,0).
func Resize(src *image.Gray, height, width int, opts ...Option) (*image.Gray, error) {
	if src == nil || src.Rect.Empty() {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidSize)
	}

	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidSize, height, width)
	}

	cfg := applyOptions(opts)

	s, err := cfg.kernel.scaler()
	if err != nil {
		return nil, err
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	s.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)

	return dst, nil
}

// Downscale shrinks src by an integer factor in both dimensions. The target
// size is the source size divided by factor, rounded down.
func Downscale(src *image.Gray, factor int, opts ...Option) (*image.Gray, error) {
	if factor < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	if src == nil || src.Rect.Empty() {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidSize)
	}

	h, w := src.Rect.Dy()/factor, src.Rect.Dx()/factor
	if h == 0 || w == 0 {
		return nil, fmt.Errorf("%w: %dx%d / %d is empty", ErrInvalidSize, src.Rect.Dy(), src.Rect.Dx(), factor)
	}

	return Resize(src, h, w, opts...)
}
