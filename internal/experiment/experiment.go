package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/raster"
)

// Result is what the presentation layer receives from a run.
type Result struct {
	Equation   field.Equation
	Rect       grid.Rect
	Buffer     *raster.PixelBuffer
	Palette    colormap.Palette
	XLines     []float64
	YLines     []float64
	Trajectory *integrators.Trajectory
	Seed       integrators.Point
	Step       float64
	Integrator string
	RasterTime time.Duration
	TraceTime  time.Duration
	Elapsed    time.Duration
}

func (r *Result) Title() string {
	return "Slope Field of f(x, y) = " + r.Equation.Label
}

func (r *Result) SeedLabel() string {
	return fmt.Sprintf("Trends starting at: (%g, %g)", r.Seed.X, r.Seed.Y)
}

type Experiment struct {
	cfg      Config
	logger   *log.Logger
	progress raster.ProgressFunc
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg, logger: log.Default()}
}

func (e *Experiment) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetProgress installs a row-progress callback for the rasterizer.
func (e *Experiment) SetProgress(fn raster.ProgressFunc) {
	e.progress = fn
}

func (e *Experiment) Config() Config { return e.cfg }

// Run rasterizes the field and traces the trajectory concurrently. A
// malformed configuration fails before either starts.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	cfg := e.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	xLines, yLines, err := cfg.Rect.MajorLines(cfg.MajorSpacing)
	if err != nil {
		return nil, err
	}
	compress, _ := colormap.CompressorByName(cfg.Compression)
	stepper, _ := integrators.ByName(cfg.Integrator)

	rast := raster.New(cfg.Equation, cfg.Palette)
	rast.Compress = compress
	rast.Workers = cfg.Workers
	rast.Progress = e.progress

	tracer := integrators.NewTracer(stepper)

	e.logger.Debug("starting run",
		"equation", cfg.Equation.Name,
		"rect", cfg.Rect.String(),
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"integrator", stepper.Name(),
		"step", cfg.Step,
		"max_steps", cfg.MaxSteps,
	)

	res := &Result{
		Equation:   cfg.Equation,
		Rect:       cfg.Rect,
		Palette:    cfg.Palette,
		XLines:     xLines,
		YLines:     yLines,
		Seed:       cfg.Seed,
		Step:       cfg.Step,
		Integrator: stepper.Name(),
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t0 := time.Now()
		defer func() { res.RasterTime = time.Since(t0) }()
		buf, err := rast.Rasterize(gctx, cfg.Rect, cfg.Width, cfg.Height)
		if err != nil {
			return fmt.Errorf("rasterize: %w", err)
		}
		res.Buffer = buf
		return nil
	})
	g.Go(func() error {
		t0 := time.Now()
		defer func() { res.TraceTime = time.Since(t0) }()
		traj, err := tracer.Trace(gctx, cfg.Equation, cfg.Seed, cfg.Step, cfg.Rect, cfg.MaxSteps)
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		res.Trajectory = traj
		return nil
	})
	err = g.Wait()
	res.Elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("run finished",
		"raster", res.RasterTime,
		"trace", res.TraceTime,
		"points", res.Trajectory.Len(),
		"backward_stop", res.Trajectory.BackwardStop.String(),
		"forward_stop", res.Trajectory.ForwardStop.String(),
	)

	return res, nil
}
