package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

const (
	DefaultEquation   = "default"
	DefaultAccuracy   = 2.0
	DefaultStep       = 1e-3
	DefaultMaxSteps   = 1000000
	DefaultIntegrator = "euler"
	DefaultCompress   = "atan"
)

var DefaultBound = 8 * math.Pi

type Config struct {
	Equation     string       `yaml:"equation"`
	Bounds       BoundsConfig `yaml:"bounds"`
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	Accuracy     float64      `yaml:"accuracy,omitempty"`
	MajorSpacing float64      `yaml:"major_spacing"`
	Compression  string       `yaml:"compression"`
	Integrator   string       `yaml:"integrator"`
	Workers      int          `yaml:"workers,omitempty"`
	Seed         SeedConfig   `yaml:"seed"`
	Step         float64      `yaml:"step"`
	MaxSteps     int          `yaml:"max_steps"`
	Colors       ColorConfig  `yaml:"colors"`
	Output       OutputConfig `yaml:"output"`
}

type BoundsConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

type SeedConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ColorConfig holds fractional colors ([0, 1] per channel) except Undefined,
// which is given directly in 0-255.
type ColorConfig struct {
	Negative   [3]float64 `yaml:"negative"`
	Positive   [3]float64 `yaml:"positive"`
	Undefined  [3]uint8   `yaml:"undefined"`
	Trajectory [3]float64 `yaml:"trajectory"`
	Major      [3]float64 `yaml:"major"`
	Origin     [3]float64 `yaml:"origin"`
}

type OutputConfig struct {
	Figure      string  `yaml:"figure"`
	Raw         string  `yaml:"raw,omitempty"`
	SVG         string  `yaml:"svg,omitempty"`
	RawScale    int     `yaml:"raw_scale,omitempty"`
	FigureWidth float64 `yaml:"figure_width_cm"`
}

func DefaultConfig() *Config {
	size := grid.ResolutionFromAccuracy(DefaultBound, DefaultAccuracy)
	pal := colormap.DefaultPalette()

	return &Config{
		Equation: DefaultEquation,
		Bounds: BoundsConfig{
			XMin: -DefaultBound, XMax: DefaultBound,
			YMin: -DefaultBound, YMax: DefaultBound,
		},
		Width:        size,
		Height:       size,
		MajorSpacing: math.Pi,
		Compression:  DefaultCompress,
		Integrator:   DefaultIntegrator,
		Seed:         SeedConfig{X: 1, Y: 1},
		Step:         DefaultStep,
		MaxSteps:     DefaultMaxSteps,
		Colors: ColorConfig{
			Negative:   fromFraction(pal.Negative),
			Positive:   fromFraction(pal.Positive),
			Undefined:  [3]uint8{pal.Undefined.R, pal.Undefined.G, pal.Undefined.B},
			Trajectory: fromFraction(pal.Trajectory),
			Major:      fromFraction(pal.Major),
			Origin:     fromFraction(pal.Origin),
		},
		Output: OutputConfig{
			Figure:      "slopefield.png",
			FigureWidth: 16,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOnto(path, DefaultConfig())
}

// LoadOnto reads path over a copy of base, so keys missing from the file
// keep the values of base. base itself is not modified.
func LoadOnto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyAccuracy()
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SizeFromAccuracy derives the resolution from the accuracy exponent, using
// the half x span of the bounds for width and the half y span for height.
func (c *Config) SizeFromAccuracy() (width, height int) {
	width = grid.ResolutionFromAccuracy((c.Bounds.XMax-c.Bounds.XMin)/2, c.Accuracy)
	height = grid.ResolutionFromAccuracy((c.Bounds.YMax-c.Bounds.YMin)/2, c.Accuracy)
	return width, height
}

func (c *Config) applyAccuracy() {
	if c.Accuracy > 0 {
		c.Width, c.Height = c.SizeFromAccuracy()
	}
}

func (c *Config) Palette() colormap.Palette {
	return colormap.Palette{
		Negative:   toFraction(c.Colors.Negative),
		Positive:   toFraction(c.Colors.Positive),
		Undefined:  colormap.RGB{R: c.Colors.Undefined[0], G: c.Colors.Undefined[1], B: c.Colors.Undefined[2]},
		Trajectory: toFraction(c.Colors.Trajectory),
		Major:      toFraction(c.Colors.Major),
		Origin:     toFraction(c.Colors.Origin),
	}
}

// ToExperiment resolves the equation name against reg and validates the
// resulting run configuration.
func (c *Config) ToExperiment(reg *field.Registry) (experiment.Config, error) {
	eq, err := reg.Get(c.Equation)
	if err != nil {
		return experiment.Config{}, err
	}
	rect, err := grid.NewRect(c.Bounds.XMin, c.Bounds.XMax, c.Bounds.YMin, c.Bounds.YMax)
	if err != nil {
		return experiment.Config{}, err
	}

	ec := experiment.Config{
		Equation:     eq,
		Rect:         rect,
		Width:        c.Width,
		Height:       c.Height,
		MajorSpacing: c.MajorSpacing,
		Palette:      c.Palette(),
		Compression:  c.Compression,
		Integrator:   c.Integrator,
		Seed:         integrators.Point{X: c.Seed.X, Y: c.Seed.Y},
		Step:         c.Step,
		MaxSteps:     c.MaxSteps,
		Workers:      c.Workers,
	}
	if err := ec.Validate(); err != nil {
		return experiment.Config{}, err
	}
	return ec, nil
}

func toFraction(c [3]float64) colormap.Fraction {
	return colormap.Fraction{R: c[0], G: c[1], B: c[2]}
}

func fromFraction(f colormap.Fraction) [3]float64 {
	return [3]float64{f.R, f.G, f.B}
}

func (c *Config) Validate(reg *field.Registry) error {
	_, err := c.ToExperiment(reg)
	return err
}
