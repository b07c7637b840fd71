// Package spectrum renders the centered log-magnitude spectrum of a
// grayscale image.
//
// [Visualize] runs the whole chain on an *image.Gray:
//
//  1. multiply every pixel by (-1)^(row+col), which moves the zero-frequency
//     bin to the center of the result;
//  2. take the forward real 2-D DFT with a 1/(height*width) scale
//     (package fft2d), keeping only the width/2+1 non-redundant columns;
//  3. store log|X| for the computed columns, then fill the remaining columns
//     from their Hermitian mirror (see [Expand]);
//  4. stretch the finite log magnitudes linearly onto 0..255.
//
// [LogMagnitude] stops after step 3 and returns the caller-owned array.
// Bins whose magnitude does not exceed the magnitude floor have no finite
// logarithm. They are left out of the range and render as 0. A spectrum whose
// finite values are all equal renders as a constant fill (mid-gray by default).
//
// The magnitude helpers ([Magnitude], [Power] and their *FromParts variants)
// use the SIMD kernels of algo-vecmath.
package spectrum
