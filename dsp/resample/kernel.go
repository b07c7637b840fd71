package resample

import (
	"fmt"
	"strings"

	"golang.org/x/image/draw"
)

// Kernel selects the interpolation used by Resize.
type Kernel int

const (
	// KernelLinear is two-tap bilinear interpolation with edge replication.
	// Each destination pixel blends the 2x2 source pixels around its center,
	// whatever the scale factor.
	KernelLinear Kernel = iota
	// KernelNearest picks the nearest source pixel.
	KernelNearest
	// KernelFilteredLinear widens the bilinear tent by the scale factor when
	// downscaling, so it averages over the whole source footprint.
	KernelFilteredLinear
	// KernelCatmullRom is the Catmull-Rom cubic kernel.
	KernelCatmullRom
)

var kernelNames = [...]string{
	KernelLinear:         "linear",
	KernelNearest:        "nearest",
	KernelFilteredLinear: "bilinear-filtered",
	KernelCatmullRom:     "catmull-rom",
}

// String returns the configuration name of k.
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}

	return kernelNames[k]
}

// Kernels lists every supported kernel in declaration order.
func Kernels() []Kernel {
	return []Kernel{KernelLinear, KernelNearest, KernelFilteredLinear, KernelCatmullRom}
}

// ParseKernel maps a kernel name to a Kernel. Matching is case-insensitive
// and the empty string selects KernelLinear.
func ParseKernel(name string) (Kernel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KernelLinear, nil
	}

	for k, n := range kernelNames {
		if n == name {
			return Kernel(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
}

func (k Kernel) scaler() (draw.Scaler, error) {
	switch k {
	case KernelLinear:
		return draw.ApproxBiLinear, nil
	case KernelNearest:
		return draw.NearestNeighbor, nil
	case KernelFilteredLinear:
		return draw.BiLinear, nil
	case KernelCatmullRom:
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKernel, k)
	}
}
