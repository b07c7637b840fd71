package fft2d

import (
	"fmt"
	"math/cmplx"
	"strings"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the 1-D FFT implementation used by a [Plan].
type Backend int

const (
	// BackendAuto uses algo-fft for power-of-two column lengths and gonum
	// everywhere else.
	BackendAuto Backend = iota
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft exclusively and
	// only accepts power-of-two dimensions.
	BackendAlgoFFT
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier exclusively.
	BackendGonum
	// BackendGoDSP uses the 2-D transform of github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:    "auto",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

// String returns the configuration name of b.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// Backends returns all known backends in declaration order.
func Backends() []Backend {
	return []Backend{BackendAuto, BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

// ParseBackend maps a configuration name to a Backend.
// The empty string selects BackendAuto.
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BackendAuto, nil
	}
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// complexTransform computes an unscaled forward DFT with len(src) points.
// dst and src must not overlap.
type complexTransform interface {
	forward(dst, src []complex128) error
}

// realTransform computes the len(src)/2+1 non-redundant bins of an unscaled
// forward DFT of real input.
type realTransform interface {
	forward(dst []complex128, src []float64) error
}

type identity struct{}

func (identity) forward(dst, src []complex128) error {
	copy(dst, src)
	return nil
}

type realIdentity struct{}

func (realIdentity) forward(dst []complex128, src []float64) error {
	dst[0] = complex(src[0], 0)
	return nil
}

type algoComplex struct {
	plan *algofft.Plan[complex128]
}

func (a algoComplex) forward(dst, src []complex128) error {
	return a.plan.Forward(dst, src)
}

// algoReal widens real input to complex and keeps the non-redundant bins.
type algoReal struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

func (a *algoReal) forward(dst []complex128, src []float64) error {
	for k, x := range src {
		a.in[k] = complex(x, 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return err
	}
	copy(dst, a.out[:len(dst)])
	return nil
}

type gonumComplex struct {
	fft *fourier.CmplxFFT
}

func (g gonumComplex) forward(dst, src []complex128) error {
	g.fft.Coefficients(dst, src)
	return nil
}

type gonumReal struct {
	fft *fourier.FFT
}

func (g gonumReal) forward(dst []complex128, src []float64) error {
	g.fft.Coefficients(dst, src)
	return nil
}

// algoVerified caches the outcome of checking an algo-fft plan length
// against gonum.
var algoVerified sync.Map // int -> error

// newAlgoPlan returns an algo-fft plan for n points. Only power-of-two lengths
// are accepted, and each length is checked once against gonum before use.
func newAlgoPlan(n int) (*algofft.Plan[complex128], error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: algo-fft length %d is not a power of two", ErrUnsupportedLength, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: algo-fft plan for length %d: %w", ErrUnsupportedLength, n, err)
	}

	res, ok := algoVerified.Load(n)
	if !ok {
		res, _ = algoVerified.LoadOrStore(n, verifyAlgoPlan(plan, n))
	}
	if err, _ := res.(error); err != nil {
		return nil, err
	}

	return plan, nil
}

// verifyAlgoPlan compares plan with gonum on a fixed input.
func verifyAlgoPlan(plan *algofft.Plan[complex128], n int) error {
	src := make([]complex128, n)
	for k := range src {
		src[k] = complex(float64(k%7)-3, float64(k%5)-2)
	}

	got := make([]complex128, n)
	if err := plan.Forward(got, src); err != nil {
		return fmt.Errorf("%w: algo-fft length %d: %w", ErrUnsupportedLength, n, err)
	}

	want := fourier.NewCmplxFFT(n).Coefficients(nil, src)
	tol := 1e-9 * float64(n)
	for k := range want {
		if d := cmplx.Abs(got[k] - want[k]); d > tol {
			return fmt.Errorf("%w: algo-fft length %d deviates by %g at bin %d", ErrUnsupportedLength, n, d, k)
		}
	}

	return nil
}

func newComplexTransform(n int, b Backend) (complexTransform, error) {
	if n == 1 {
		return identity{}, nil
	}

	switch b {
	case BackendGonum:
		return gonumComplex{fft: fourier.NewCmplxFFT(n)}, nil
	case BackendAlgoFFT:
		plan, err := newAlgoPlan(n)
		if err != nil {
			return nil, err
		}
		return algoComplex{plan: plan}, nil
	default:
		if plan, err := newAlgoPlan(n); err == nil {
			return algoComplex{plan: plan}, nil
		}
		return gonumComplex{fft: fourier.NewCmplxFFT(n)}, nil
	}
}

func newRealTransform(n int, b Backend) (realTransform, error) {
	if n == 1 {
		return realIdentity{}, nil
	}

	if b == BackendAlgoFFT {
		plan, err := newAlgoPlan(n)
		if err != nil {
			return nil, err
		}
		return &algoReal{
			plan: plan,
			in:   make([]complex128, n),
			out:  make([]complex128, n),
		}, nil
	}

	return gonumReal{fft: fourier.NewFFT(n)}, nil
}
