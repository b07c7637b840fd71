package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fftviz/dsp/fft2d"
	"github.com/cwbudde/algo-fftviz/dsp/resample"
	"github.com/cwbudde/algo-fftviz/dsp/window"
)

var backendInfo = map[fft2d.Backend]string{
	fft2d.BackendAuto:    "gonum real rows, algo-fft power-of-two columns, gonum elsewhere",
	fft2d.BackendAlgoFFT: "algo-fft rows and columns, power-of-two sizes only",
	fft2d.BackendGonum:   "gonum rows and columns",
	fft2d.BackendGoDSP:   "go-dsp 2-D transform",
}

var kernelInfo = map[resample.Kernel]string{
	resample.KernelLinear:         "two-tap bilinear with edge replication",
	resample.KernelNearest:        "nearest neighbor",
	resample.KernelFilteredLinear: "bilinear tent widened when downscaling",
	resample.KernelCatmullRom:     "Catmull-Rom bicubic",
}

var windowInfo = map[window.Type]string{
	window.TypeRectangular: "no tapering",
	window.TypeHann:        "raised cosine",
	window.TypeHamming:     "raised cosine on a pedestal",
	window.TypeBlackman:    "three-term cosine",
	window.TypeKaiser:      fmt.Sprintf("Bessel taper, beta %.1f", window.DefaultKaiserBeta),
	window.TypeTukey:       fmt.Sprintf("tapered cosine, alpha %.1f", window.DefaultTukeyAlpha),
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List FFT backends, resampling kernels and windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "BACKEND\tDESCRIPTION")
			for _, b := range fft2d.Backends() {
				fmt.Fprintf(tw, "%s\t%s\n", b, backendInfo[b])
			}

			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "KERNEL\tDESCRIPTION")
			for _, k := range resample.Kernels() {
				fmt.Fprintf(tw, "%s\t%s\n", k, kernelInfo[k])
			}

			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "WINDOW\tDESCRIPTION")
			for _, w := range window.Types() {
				fmt.Fprintf(tw, "%s\t%s\n", w, windowInfo[w])
			}

			return tw.Flush()
		},
	}
}
