// Package window generates tapering windows and applies them to 1-D blocks
// and separable 2-D grids, e.g. to reduce edge leakage before a 2-D DFT.
package window
