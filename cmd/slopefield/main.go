package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/slopefield/internal/config"
	"github.com/san-kum/slopefield/internal/field"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	equation     string
	bounds       []float64
	width        int
	height       int
	accuracy     float64
	majorSpacing float64
	compression  string
	integrator   string
	workers      int
	seed         []float64
	step         float64
	maxSteps     int

	figurePath  string
	figureWidth float64
	rawPath     string
	rawScale    int
	svgPath     string
	jsonPath    string
	noStore     bool
	progress    bool
	previewCols int

	solveX0    float64
	solveX1    float64
	solveY0    float64
	solveSteps int

	plotWidth  int
	plotHeight int
	force      bool

	batchOutDir string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "slopefield",
})

var registry = field.NewRegistry()

func main() {
	rootCmd := &cobra.Command{
		Use:           "slopefield",
		Short:         "slope field renderer and trajectory tracer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".slopefield", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the field and trajectory to a figure",
		Args:  cobra.NoArgs,
		RunE:  renderField,
	}
	addRunFlags(renderCmd)
	renderCmd.Flags().StringVarP(&figurePath, "out", "o", "slopefield.png", "figure path (.png, .svg, .pdf)")
	renderCmd.Flags().Float64Var(&figureWidth, "figure-width", 16, "figure width in cm")
	renderCmd.Flags().StringVar(&rawPath, "raw", "", "also write the bare field as png")
	renderCmd.Flags().IntVar(&rawScale, "raw-scale", 1, "integer upscale for --raw")
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "also write the trajectory as svg")
	renderCmd.Flags().StringVar(&jsonPath, "json", "", "also write the trajectory as json")
	renderCmd.Flags().BoolVar(&noStore, "no-store", false, "do not save the run")
	renderCmd.Flags().BoolVar(&progress, "progress", false, "show a progress view")
	renderCmd.Flags().IntVar(&previewCols, "preview", 0, "print a terminal preview this many columns wide")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace the trajectory through the seed",
		Args:  cobra.NoArgs,
		RunE:  traceSeed,
	}
	addRunFlags(traceCmd)
	traceCmd.Flags().IntVar(&plotWidth, "width-chars", 70, "plot width")
	traceCmd.Flags().IntVar(&plotHeight, "height-chars", 20, "plot height")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "integrate over a fixed x interval",
		Args:  cobra.NoArgs,
		RunE:  solveInterval,
	}
	solveCmd.Flags().StringVar(&equation, "equation", config.DefaultEquation, "equation name")
	solveCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator (euler, rk4)")
	solveCmd.Flags().Float64Var(&solveX0, "x0", 0, "initial x")
	solveCmd.Flags().Float64Var(&solveX1, "x1", 1, "final x")
	solveCmd.Flags().Float64Var(&solveY0, "y0", 1, "initial y")
	solveCmd.Flags().IntVar(&solveSteps, "steps", 10, "number of steps")

	equationsCmd := &cobra.Command{
		Use:   "equations",
		Short: "list built-in equations",
		Args:  cobra.NoArgs,
		RunE:  listEquations,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "trajectory statistics and spectrum",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "render every step of a scenario file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", ".", "directory for step figures")
	batchCmd.Flags().BoolVar(&noStore, "no-store", false, "do not save the runs")

	rootCmd.AddCommand(renderCmd, traceCmd, solveCmd, equationsCmd, presetsCmd, listCmd, showCmd, analyzeCmd, configCmd, batchCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Warn("interrupted")
		} else {
			logger.Error(err)
		}
		stop()
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&equation, "equation", config.DefaultEquation, "equation name")
	cmd.Flags().Float64SliceVar(&bounds, "bounds", nil, "x_min,x_max,y_min,y_max")
	cmd.Flags().IntVar(&width, "width", 0, "field width in cells")
	cmd.Flags().IntVar(&height, "height", 0, "field height in cells")
	cmd.Flags().Float64Var(&accuracy, "accuracy", 0, "derive the size from span*e^accuracy")
	cmd.Flags().Float64Var(&majorSpacing, "spacing", 0, "major grid line spacing")
	cmd.Flags().StringVar(&compression, "compression", config.DefaultCompress, "value compression (atan, logistic)")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator (euler, rk4)")
	cmd.Flags().IntVar(&workers, "workers", 0, "rasterizer workers (0 = all cpus)")
	cmd.Flags().Float64SliceVar(&seed, "seed", nil, "seed point x,y")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "integration step")
	cmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "step budget per direction")
}
