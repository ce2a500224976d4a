package experiment

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	eq, err := field.NewRegistry().Get("linear")
	if err != nil {
		t.Fatal(err)
	}
	rect, err := grid.NewRect(-10, 10, -10, 10)
	if err != nil {
		t.Fatal(err)
	}
	return Config{
		Equation:     eq,
		Rect:         rect,
		Width:        32,
		Height:       24,
		MajorSpacing: 5,
		Palette:      colormap.DefaultPalette(),
		Compression:  "atan",
		Integrator:   "euler",
		Seed:         integrators.Point{X: 0, Y: 1},
		Step:         0.5,
		MaxSteps:     4,
	}
}

func TestRun(t *testing.T) {
	exp := New(testConfig(t))
	exp.SetLogger(log.New(io.Discard))

	res, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if res.Buffer.Width != 32 || res.Buffer.Height != 24 {
		t.Errorf("buffer %dx%d, want 32x24", res.Buffer.Width, res.Buffer.Height)
	}
	if !res.Buffer.Complete() {
		t.Error("buffer incomplete")
	}
	if len(res.XLines) != 3 || len(res.YLines) != 3 {
		t.Errorf("lines = %v / %v, want -5 0 5 on each axis", res.XLines, res.YLines)
	}
	if res.Trajectory.Forward != 4 {
		t.Errorf("forward points = %d, want 4", res.Trajectory.Forward)
	}
	if res.Title() != "Slope Field of f(x, y) = x + y" {
		t.Errorf("title = %q", res.Title())
	}
	if res.SeedLabel() != "Trends starting at: (0, 1)" {
		t.Errorf("seed label = %q", res.SeedLabel())
	}
}

func TestRun_InvalidConfigFailsFirst(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, grid.ErrResolution},
		{"bad spacing", func(c *Config) { c.MajorSpacing = -1 }, grid.ErrSpacing},
		{"bad step", func(c *Config) { c.Step = 0 }, integrators.ErrStep},
		{"infinite step", func(c *Config) { c.Step = math.Inf(1) }, integrators.ErrStep},
		{"nan seed", func(c *Config) { c.Seed = integrators.Point{X: math.NaN(), Y: 0} }, integrators.ErrSeed},
		{"infinite seed", func(c *Config) { c.Seed.Y = math.Inf(-1) }, integrators.ErrSeed},
		{"bad max steps", func(c *Config) { c.MaxSteps = -3 }, integrators.ErrMaxSteps},
		{"unknown integrator", func(c *Config) { c.Integrator = "verlet" }, integrators.ErrUnknown},
		{"unknown compression", func(c *Config) { c.Compression = "tanh" }, colormap.ErrUnknownCompression},
		{"bad palette", func(c *Config) { c.Palette.Negative.R = 2 }, colormap.ErrFraction},
		{"no function", func(c *Config) { c.Equation.Fn = nil }, field.ErrNilFunc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)

			progressed := false
			exp := New(cfg)
			exp.SetLogger(log.New(io.Discard))
			exp.SetProgress(func(done, rows int) { progressed = true })

			_, err := exp.Run(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if progressed {
				t.Error("rasterizer ran despite invalid configuration")
			}
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Width, cfg.Height = 200, 200

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exp := New(cfg)
	exp.SetLogger(log.New(io.Discard))
	if _, err := exp.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
