package config

import (
	"math"
	"sort"
)

// Presets maps a preset name to a function that adjusts the defaults.
var Presets = map[string]func(*Config){
	// The settings of the classic renderer: a very fine step and a huge
	// step budget.
	"classic": func(c *Config) {
		c.Step = 1e-5
		c.MaxSteps = 40000000
	},
	"linear": func(c *Config) {
		c.Equation = "linear"
		c.Bounds = BoundsConfig{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
		c.Width, c.Height = 400, 400
		c.MajorSpacing = 2
		c.Seed = SeedConfig{X: 0, Y: 1}
		c.Step = 0.01
		c.MaxSteps = 10000
	},
	"rational": func(c *Config) {
		c.Equation = "rational"
		c.Bounds = BoundsConfig{XMin: -5, XMax: 5, YMin: -5, YMax: 5}
		c.Width, c.Height = 401, 401
		c.MajorSpacing = 1
		c.Seed = SeedConfig{X: 1, Y: 1}
		c.Step = 1e-3
		c.MaxSteps = 100000
	},
	"xlogx": func(c *Config) {
		c.Equation = "xlogx"
		c.Bounds = BoundsConfig{XMin: -1, XMax: 3, YMin: -2, YMax: 10}
		c.Width, c.Height = 300, 900
		c.MajorSpacing = 1
		c.Seed = SeedConfig{X: 1, Y: 4}
		c.Step = 1e-4
		c.MaxSteps = 100000
	},
	"hires": func(c *Config) {
		c.Accuracy = 3
		c.Width = 0
		c.Height = 0
		c.applyAccuracy()
		c.MajorSpacing = math.Pi
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
