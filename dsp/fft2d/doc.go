// Package fft2d computes forward 2-D discrete Fourier transforms of real
// row-major grids.
//
// The output uses the compact conjugate-even layout: each of the height rows
// holds only the width/2+1 non-redundant column bins. The remaining bins
// follow from Hermitian symmetry, X(i, j) = conj(X((height-i) mod height, width-j)).
//
// The transform is separable. A real FFT runs along every row, then a complex
// FFT runs down each of the width/2+1 compact columns. The 1-D kernels come
// from one of several backends:
//
//   - [BackendAuto]:    gonum real FFT for rows, algo-fft for power-of-two
//     columns and gonum for every other length (default)
//   - [BackendAlgoFFT]: algo-fft for rows and columns; non-power-of-two
//     dimensions fail with [ErrUnsupportedLength]
//   - [BackendGonum]:   gonum.org/v1/gonum/dsp/fourier for rows and columns
//   - [BackendGoDSP]:   github.com/mjibson/go-dsp/fft 2-D transform
//
// Like the MKL/FFTW descriptors it mirrors, a [Plan] takes configurable input
// and output row strides and a forward scale factor.
package fft2d
