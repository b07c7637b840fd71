// Package config holds the fftviz configuration and its viper bindings.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-fftviz/dsp/fft2d"
	"github.com/cwbudde/algo-fftviz/dsp/resample"
	"github.com/cwbudde/algo-fftviz/dsp/spectrum"
	"github.com/cwbudde/algo-fftviz/dsp/window"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the effective configuration of one run.
type Config struct {
	Input    string         `mapstructure:"input" yaml:"input"`
	LogLevel string         `mapstructure:"log_level" yaml:"log_level"`
	Resize   ResizeConfig   `mapstructure:"resize" yaml:"resize"`
	Spectrum SpectrumConfig `mapstructure:"spectrum" yaml:"spectrum"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// ResizeConfig selects the resampler target. Width and Height, when both are
// positive, override Factor.
type ResizeConfig struct {
	Factor int    `mapstructure:"factor" yaml:"factor"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	Kernel string `mapstructure:"kernel" yaml:"kernel"`
}

// SpectrumConfig configures the spectrum visualizer.
type SpectrumConfig struct {
	Backend        string  `mapstructure:"backend" yaml:"backend"`
	MagnitudeFloor float64 `mapstructure:"magnitude_floor" yaml:"magnitude_floor"`
	FlatFill       int     `mapstructure:"flat_fill" yaml:"flat_fill"`
	Window         string  `mapstructure:"window" yaml:"window"`
}

// OutputConfig controls which images are written and where.
type OutputConfig struct {
	Dir           string `mapstructure:"dir" yaml:"dir"`
	WriteOriginal bool   `mapstructure:"write_original" yaml:"write_original"`
	WriteResized  bool   `mapstructure:"write_resized" yaml:"write_resized"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", "testimg.jpg")
	v.SetDefault("log_level", "info")

	v.SetDefault("resize.factor", 2)
	v.SetDefault("resize.width", 0)
	v.SetDefault("resize.height", 0)
	v.SetDefault("resize.kernel", resample.KernelLinear.String())

	v.SetDefault("spectrum.backend", fft2d.BackendAuto.String())
	v.SetDefault("spectrum.magnitude_floor", spectrum.DefaultMagnitudeFloor)
	v.SetDefault("spectrum.flat_fill", int(spectrum.DefaultFlatFill))
	v.SetDefault("spectrum.window", window.TypeRectangular.String())

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.write_original", true)
	v.SetDefault("output.write_resized", true)
}

// Default returns the configuration implied by SetDefaults alone.
func Default() Config {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input must be set", ErrInvalid)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	if c.Resize.Width < 0 || c.Resize.Height < 0 {
		return fmt.Errorf("%w: resize size %dx%d", ErrInvalid, c.Resize.Height, c.Resize.Width)
	}

	if (c.Resize.Width > 0) != (c.Resize.Height > 0) {
		return fmt.Errorf("%w: resize width and height must be set together", ErrInvalid)
	}

	if !c.Resize.Explicit() && c.Resize.Factor < 1 {
		return fmt.Errorf("%w: resize factor %d", ErrInvalid, c.Resize.Factor)
	}

	if _, err := resample.ParseKernel(c.Resize.Kernel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if _, err := fft2d.ParseBackend(c.Spectrum.Backend); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if _, err := window.ParseType(c.Spectrum.Window); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	f := c.Spectrum.MagnitudeFloor
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: magnitude_floor %v", ErrInvalid, f)
	}

	if c.Spectrum.FlatFill < 0 || c.Spectrum.FlatFill > 255 {
		return fmt.Errorf("%w: flat_fill %d outside [0, 255]", ErrInvalid, c.Spectrum.FlatFill)
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output dir must be set", ErrInvalid)
	}

	return nil
}

// Explicit reports whether an explicit target size overrides Factor.
func (r ResizeConfig) Explicit() bool {
	return r.Width > 0 && r.Height > 0
}

// YAML renders c as a YAML document.
func (c Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("unable to encode configuration: %w", err)
	}

	return out, nil
}
