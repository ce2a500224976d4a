package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/slopefield/internal/analysis"
	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/integrators"
	"github.com/san-kum/slopefield/internal/storage"
)

// sensitivitySteps caps the steps used for the stability estimate in analyze.
const sensitivitySteps = 100000

func listEquations(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tf(x, y)")
	for _, name := range registry.Names() {
		eq, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", eq.Name, eq.Label)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEQUATION\tTIME\tSIZE\tSEED\tSTEP\tINTEG\tPOINTS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t(%g, %g)\t%g\t%s\t%d\n",
			run.ID,
			run.Equation,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Seed[0], run.Seed[1],
			run.Step,
			run.Integrator,
			run.Steps,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	points, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("run %s: not enough points to analyze", runID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("f(x, y) = %s\n", meta.Label)
	fmt.Printf("points: %d (backward %d, %s; forward %d, %s)\n\n",
		len(points), meta.Backward, meta.BackwardStop, meta.Forward, meta.ForwardStop)

	s := analysis.Summarize(points)
	fmt.Printf("x range:    [%.6f, %.6f]\n", s.XMin, s.XMax)
	fmt.Printf("y range:    [%.6f, %.6f]\n", s.YMin, s.YMax)
	fmt.Printf("arc length: %.6f\n\n", s.ArcLength)

	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	ps := analysis.PowerSpectrum(ys)
	if len(ps) > 1 {
		plotData := ps
		if len(plotData) > 200 {
			plotData = plotData[:200]
		}
		graph := asciigraph.Plot(plotData,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (y)"),
		)
		fmt.Println(graph)
		fmt.Println()

		bin, freq := analysis.DominantFrequency(ps, len(ys))
		if bin > 0 && meta.Step > 0 {
			fmt.Printf("dominant bin: %d (%.6g cycles/step, period %.6g in x)\n", bin, freq, meta.Step/freq)
		}
	}

	eq, err := registry.Get(meta.Equation)
	if err != nil {
		if errors.Is(err, field.ErrUnknownEquation) {
			logger.Warn("equation not registered, skipping sensitivity", "equation", meta.Equation)
			return nil
		}
		return err
	}
	stepper, err := integrators.ByName(meta.Integrator)
	if err != nil {
		return err
	}
	seedPt := integrators.Point{X: meta.Seed[0], Y: meta.Seed[1]}
	steps := min(max(meta.Forward, 1), sensitivitySteps)
	rate, err := analysis.SeedSensitivity(stepper, eq, seedPt, 1e-7, meta.Step, steps)
	if err != nil {
		return err
	}
	verdict := "neighbouring solutions converge"
	if rate > 0 {
		verdict = "neighbouring solutions diverge"
	}
	fmt.Printf("seed sensitivity: %.6f per unit x (%s)\n", rate, verdict)
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "slopefield.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := cfg.Validate(registry); err != nil {
		return err
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
