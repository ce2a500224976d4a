package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/slopefield/internal/automation"
	"github.com/san-kum/slopefield/internal/figure"
	"github.com/san-kum/slopefield/internal/storage"
)

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return err
	}

	st := storage.New(dataDir)
	if !noStore {
		if err := st.Init(); err != nil {
			return err
		}
	}

	fmt.Printf("scenario: %s (%d steps)\n", sc.Name, len(sc.Steps))
	_, err = automation.RunScenario(cmd.Context(), sc, registry, logger, func(sr automation.StepResult) error {
		name := sr.Step.SaveAs
		if name == "" {
			name = sr.Result.Equation.Name + ".png"
			if sr.Step.Name != "" {
				name = sr.Step.Name + ".png"
			}
		}
		path := filepath.Join(batchOutDir, name)
		if err := figure.Save(sr.Result, path, figure.DefaultCm*vg.Centimeter); err != nil {
			return err
		}
		fmt.Printf("  %s -> %s (%d points, %v)\n", sr.Result.Equation.Label, path, sr.Result.Trajectory.Len(), sr.Result.Elapsed.Round(time.Microsecond))

		if noStore {
			return nil
		}
		_, err := st.Save(sr.Result)
		return err
	})
	return err
}
