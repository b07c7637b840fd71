package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftviz/internal/config"
	"github.com/cwbudde/algo-fftviz/internal/pipeline"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Downscale an image and write its spectrum",
		Long: `run decodes the image (JPEG, PNG, GIF, BMP, TIFF or WebP), converts it to
grayscale, downscales it and writes original.png, resized.png and
spectrum.png into the output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.v.Set("input", args[0])
			}

			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}

			res, err := pipeline.Run(cmd.Context(), cfg, a.logger)
			if err != nil {
				return err
			}

			a.logger.Info("done", zap.Strings("files", res.Files))

			for _, f := range res.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("output-dir", "o", ".", "directory for the output images")
	f.Int("factor", 2, "downscale factor, ignored when --width and --height are set")
	f.Int("width", 0, "explicit target width")
	f.Int("height", 0, "explicit target height")
	f.String("kernel", "linear", "resampling kernel (see 'fftviz list')")
	f.String("backend", "auto", "FFT backend (see 'fftviz list')")
	f.Float64("magnitude-floor", 1e-10, "magnitudes at or below this value render black")
	f.Int("flat-fill", 128, "output level when the spectrum has no contrast")
	f.String("window", "rectangular", "apodization window applied before the transform (see 'fftviz list')")

	bindings := map[string]string{
		"output.dir":               "output-dir",
		"resize.factor":            "factor",
		"resize.width":             "width",
		"resize.height":            "height",
		"resize.kernel":            "kernel",
		"spectrum.backend":         "backend",
		"spectrum.magnitude_floor": "magnitude-floor",
		"spectrum.flat_fill":       "flat-fill",
		"spectrum.window":          "window",
	}
	mustBindFlags(a.v, f, bindings)

	return cmd
}
