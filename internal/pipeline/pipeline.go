// Package pipeline runs one decode, resample and visualize pass and writes
// the resulting images to disk.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftviz/dsp/fft2d"
	"github.com/cwbudde/algo-fftviz/dsp/resample"
	"github.com/cwbudde/algo-fftviz/dsp/spectrum"
	"github.com/cwbudde/algo-fftviz/dsp/window"
	"github.com/cwbudde/algo-fftviz/internal/config"
	"github.com/cwbudde/algo-fftviz/internal/imageio"
	"github.com/cwbudde/algo-fftviz/stats/grid"
)

// Output file names inside the output directory.
const (
	OriginalFile = "original.png"
	ResizedFile  = "resized.png"
	SpectrumFile = "spectrum.png"
)

// Result holds the three images of a run and the files written for them.
type Result struct {
	Original *image.Gray
	Resized  *image.Gray
	Spectrum *image.Gray
	Range    spectrum.Range
	Stats    Stats
	Files    []string
}

// Stats holds the pixel statistics of each image.
type Stats struct {
	Original grid.Stats
	Resized  grid.Stats
	Spectrum grid.Stats
}

func statsFields(s grid.Stats) []zap.Field {
	return []zap.Field{
		zap.Float64("mean", s.Mean),
		zap.Float64("stddev", s.StdDev),
		zap.Int("contrast", s.Contrast),
		zap.Float64("entropy_bits", s.Entropy),
	}
}

// Run executes the pipeline described by cfg. The context is checked between
// stages; a cancelled run writes nothing further.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	kernel, err := resample.ParseKernel(cfg.Resize.Kernel)
	if err != nil {
		return nil, err
	}

	backend, err := fft2d.ParseBackend(cfg.Spectrum.Backend)
	if err != nil {
		return nil, err
	}

	win, err := window.ParseType(cfg.Spectrum.Window)
	if err != nil {
		return nil, err
	}

	res := &Result{}

	start := time.Now()
	original, format, err := imageio.Load(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Input, err)
	}
	res.Original = original
	res.Stats.Original = grid.Calculate(original)
	logger.Info("decoded input", append([]zap.Field{
		zap.String("path", cfg.Input),
		zap.String("format", format),
		zap.Int("height", original.Rect.Dy()),
		zap.Int("width", original.Rect.Dx()),
		zap.Duration("elapsed", time.Since(start)),
	}, statsFields(res.Stats.Original)...)...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	res.Resized, err = resize(original, cfg.Resize, kernel)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	res.Stats.Resized = grid.Calculate(res.Resized)
	logger.Info("resized", append([]zap.Field{
		zap.Stringer("kernel", kernel),
		zap.Int("height", res.Resized.Rect.Dy()),
		zap.Int("width", res.Resized.Rect.Dx()),
		zap.Duration("elapsed", time.Since(start)),
	}, statsFields(res.Stats.Resized)...)...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	opts := []spectrum.Option{
		spectrum.WithBackend(backend),
		spectrum.WithMagnitudeFloor(cfg.Spectrum.MagnitudeFloor),
		spectrum.WithFlatFill(uint8(cfg.Spectrum.FlatFill)),
		spectrum.WithWindow(win),
	}

	logSpec, err := spectrum.LogMagnitude(res.Resized, opts...)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}
	res.Range = logSpec.Range
	res.Spectrum = spectrum.Render(logSpec, opts...)
	res.Stats.Spectrum = grid.Calculate(res.Spectrum)

	fields := []zap.Field{
		zap.Stringer("backend", backend),
		zap.Stringer("window", win),
		zap.Int("finite_bins", res.Range.Finite),
		zap.Float64("entropy_bits", res.Stats.Spectrum.Entropy),
		zap.Duration("elapsed", time.Since(start)),
	}
	if res.Range.Flat() {
		logger.Warn("spectrum has no contrast, output is flat", append(fields, zap.Int("fill", cfg.Spectrum.FlatFill))...)
	} else {
		logger.Info("spectrum", append(fields, zap.Float64("min", res.Range.Min), zap.Float64("max", res.Range.Max))...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	outputs := []struct {
		name  string
		img   *image.Gray
		write bool
	}{
		{OriginalFile, res.Original, cfg.Output.WriteOriginal},
		{ResizedFile, res.Resized, cfg.Output.WriteResized},
		{SpectrumFile, res.Spectrum, true},
	}

	for _, o := range outputs {
		if !o.write {
			continue
		}

		path := filepath.Join(cfg.Output.Dir, o.name)
		if err := imageio.SavePNG(path, o.img); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		res.Files = append(res.Files, path)
		logger.Debug("wrote image", zap.String("path", path))
	}

	return res, nil
}

func resize(src *image.Gray, rc config.ResizeConfig, kernel resample.Kernel) (*image.Gray, error) {
	if rc.Explicit() {
		return resample.Resize(src, rc.Height, rc.Width, resample.WithKernel(kernel))
	}

	return resample.Downscale(src, rc.Factor, resample.WithKernel(kernel))
}
