package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/slopefield/internal/analysis"
	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/experiment"
	"github.com/san-kum/slopefield/internal/export"
	"github.com/san-kum/slopefield/internal/figure"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/storage"
	"github.com/san-kum/slopefield/internal/tui"
	"github.com/san-kum/slopefield/internal/viz"
)

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("equation") {
		cfg.Equation = equation
	}
	if flags.Changed("bounds") {
		if len(bounds) != 4 {
			return nil, fmt.Errorf("--bounds needs 4 values, got %d", len(bounds))
		}
		cfg.Bounds = config.BoundsConfig{XMin: bounds[0], XMax: bounds[1], YMin: bounds[2], YMax: bounds[3]}
	}
	if flags.Changed("accuracy") {
		cfg.Accuracy = accuracy
	}
	if cfg.Accuracy > 0 && (flags.Changed("accuracy") || flags.Changed("bounds")) {
		cfg.Width, cfg.Height = cfg.SizeFromAccuracy()
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("spacing") {
		cfg.MajorSpacing = majorSpacing
	}
	if flags.Changed("compression") {
		cfg.Compression = compression
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("seed") {
		if len(seed) != 2 {
			return nil, fmt.Errorf("--seed needs 2 values, got %d", len(seed))
		}
		cfg.Seed = config.SeedConfig{X: seed[0], Y: seed[1]}
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = maxSteps
	}

	return cfg, nil
}

func renderField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ec, err := cfg.ToExperiment(registry)
	if err != nil {
		return err
	}

	exp := experiment.New(ec)
	exp.SetLogger(logger)

	var res *experiment.Result
	if progress {
		res, err = tui.RunWithProgress(cmd.Context(), exp, os.Stdin, os.Stderr)
	} else {
		fmt.Printf("rendering %s at %dx%d...\n", ec.Equation.Label, ec.Width, ec.Height)
		res, err = exp.Run(cmd.Context())
	}
	if err != nil {
		return err
	}

	if err := figure.Save(res, figurePath, vg.Length(figureWidth)*vg.Centimeter); err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	logger.Info("wrote figure", "path", figurePath)

	if rawPath != "" {
		if err := export.SavePNG(rawPath, res.Buffer, rawScale); err != nil {
			return fmt.Errorf("raw png: %w", err)
		}
		logger.Info("wrote field", "path", rawPath, "scale", rawScale)
	}

	if svgPath != "" {
		trajColor, _, _, err := res.Palette.Accents()
		if err != nil {
			return err
		}
		svg := export.TrajectoryToSVG(res.Trajectory, res.Rect, res.Buffer.Width*max(rawScale, 1), res.Buffer.Height*max(rawScale, 1), trajColor.Hex())
		if svg == "" {
			logger.Warn("trajectory too short for svg", "points", res.Trajectory.Len())
		} else if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		} else {
			logger.Info("wrote trajectory", "path", svgPath)
		}
	}

	if jsonPath != "" {
		if err := export.ExportJSON(jsonPath, res); err != nil {
			return err
		}
		logger.Info("wrote trajectory", "path", jsonPath)
	}

	fmt.Println(viz.Summary(res))
	if previewCols > 0 {
		fmt.Print(viz.Preview(res.Buffer, previewCols))
	}

	if noStore {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(res)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("stored in: %s\n", filepath.Clean(st.Dir(runID)))
	return nil
}

func traceSeed(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ec, err := cfg.ToExperiment(registry)
	if err != nil {
		return err
	}

	stepper, err := integrators.ByName(ec.Integrator)
	if err != nil {
		return err
	}
	tracer := integrators.NewTracer(stepper)

	logger.Debug("tracing", "seed", ec.Seed.String(), "step", ec.Step, "max_steps", ec.MaxSteps)
	traj, err := tracer.Trace(cmd.Context(), ec.Equation, ec.Seed, ec.Step, ec.Rect, ec.MaxSteps)
	if err != nil {
		return err
	}

	fmt.Printf("f(x, y) = %s\n", ec.Equation.Label)
	fmt.Printf("seed: %s\n", ec.Seed)
	fmt.Printf("backward: %d steps (%s)\n", traj.Backward, traj.BackwardStop)
	fmt.Printf("forward: %d steps (%s)\n", traj.Forward, traj.ForwardStop)
	if traj.Len() == 0 {
		fmt.Println("seed lies outside the bounds, nothing to trace")
		return nil
	}

	s := analysis.Summarize(traj.Points)
	fmt.Printf("x: [%.4f, %.4f]  y: [%.4f, %.4f]  arc length: %.4f\n\n", s.XMin, s.XMax, s.YMin, s.YMax, s.ArcLength)

	graph := asciigraph.Plot(downsample(traj.Ys(), plotWidth),
		asciigraph.Height(plotHeight/2),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("y along the trajectory"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Print(analysis.TrajectoryToASCII(traj, ec.Rect, plotWidth, plotHeight))
	return nil
}

func solveInterval(cmd *cobra.Command, args []string) error {
	eq, err := registry.Get(equation)
	if err != nil {
		return err
	}
	stepper, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	pts, err := integrators.NewTracer(stepper).Solve(cmd.Context(), eq, solveX0, solveX1, solveY0, solveSteps)
	if len(pts) > 0 {
		first, last := pts[0], pts[len(pts)-1]
		fmt.Printf("f(x, y) = %s\n", eq.Label)
		fmt.Printf("initial: %s\n", first)
		fmt.Printf("final:   %s\n", last)
		if verbose {
			var sb strings.Builder
			for i, p := range pts {
				sb.WriteString(fmt.Sprintf("  %4d  x=%-12.6g y=%.10g\n", i, p.X, p.Y))
			}
			fmt.Print(sb.String())
		}
	}
	return err
}

// downsample keeps at most n evenly spaced values.
func downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	if n == 1 {
		return values[:1]
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}
