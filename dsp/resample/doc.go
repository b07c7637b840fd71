// Package resample rescales 8-bit grayscale grids to an arbitrary target size.
//
// The default kernel is bilinear interpolation with edge replication, so
// samples that fall outside the source reuse the nearest border pixel.
// Resizing to the source size returns a pixel-identical copy.
//
// Kernels:
//   - KernelLinear: two-tap bilinear, the default
//   - KernelNearest: nearest neighbor
//   - KernelFilteredLinear: bilinear tent stretched over the source footprint
//   - KernelCatmullRom: bicubic Catmull-Rom
//
// Common workflows:
//   - Resize(src, height, width, opts...)
//   - Downscale(src, factor, opts...)
package resample
