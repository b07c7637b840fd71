package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	want := Config{
		Input:    "testimg.jpg",
		LogLevel: "info",
		Resize:   ResizeConfig{Factor: 2, Kernel: "linear"},
		Spectrum: SpectrumConfig{Backend: "auto", MagnitudeFloor: 1e-10, FlatFill: 128, Window: "rectangular"},
		Output:   OutputConfig{Dir: ".", WriteOriginal: true, WriteResized: true},
	}

	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Fatalf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fftviz.yaml")
	doc := `input: photo.png
resize:
  width: 64
  height: 48
  kernel: catmull-rom
spectrum:
  backend: gonum
  flat_fill: 0
  window: hann
output:
  dir: out
  write_original: false
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		Input:    "photo.png",
		LogLevel: "info",
		Resize:   ResizeConfig{Factor: 2, Width: 64, Height: 48, Kernel: "catmull-rom"},
		Spectrum: SpectrumConfig{Backend: "gonum", MagnitudeFloor: 1e-10, FlatFill: 0, Window: "hann"},
		Output:   OutputConfig{Dir: "out", WriteOriginal: false, WriteResized: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load() mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Resize.Explicit() {
		t.Fatal("explicit size not detected")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FFTVIZ_RESIZE_FACTOR", "4")
	t.Setenv("FFTVIZ_SPECTRUM_BACKEND", "godsp")

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("FFTVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Resize.Factor != 4 || cfg.Spectrum.Backend != "godsp" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty input", mutate: func(c *Config) { c.Input = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "zero factor", mutate: func(c *Config) { c.Resize.Factor = 0 }},
		{name: "width only", mutate: func(c *Config) { c.Resize.Width = 10 }},
		{name: "negative height", mutate: func(c *Config) { c.Resize.Height = -1 }},
		{name: "unknown kernel", mutate: func(c *Config) { c.Resize.Kernel = "lanczos" }},
		{name: "unknown backend", mutate: func(c *Config) { c.Spectrum.Backend = "fftw" }},
		{name: "unknown window", mutate: func(c *Config) { c.Spectrum.Window = "flat-top" }},
		{name: "negative floor", mutate: func(c *Config) { c.Spectrum.MagnitudeFloor = -1 }},
		{name: "nan floor", mutate: func(c *Config) { c.Spectrum.MagnitudeFloor = math.NaN() }},
		{name: "fill too large", mutate: func(c *Config) { c.Spectrum.FlatFill = 256 }},
		{name: "empty output dir", mutate: func(c *Config) { c.Output.Dir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateExplicitSizeIgnoresFactor(t *testing.T) {
	cfg := Default()
	cfg.Resize = ResizeConfig{Factor: 0, Width: 8, Height: 8, Kernel: "nearest"}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Resize.Kernel = "nearest"

	out, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML() error = %v", err)
	}
	if !strings.Contains(string(out), "magnitude_floor:") {
		t.Fatalf("YAML() missing snake_case keys:\n%s", out)
	}

	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
