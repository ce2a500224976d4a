package experiment

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/slopefield/internal/colormap"
	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
	"github.com/san-kum/slopefield/internal/integrators"
)

// Config is everything a rendering run needs. It is validated as a whole
// before any pixel or step is computed.
type Config struct {
	Equation     field.Equation
	Rect         grid.Rect
	Width        int
	Height       int
	MajorSpacing float64
	Palette      colormap.Palette
	Compression  string
	Integrator   string
	Seed         integrators.Point
	Step         float64
	MaxSteps     int
	Workers      int
}

func (c Config) Validate() error {
	var errs []error

	if err := c.Equation.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Rect.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Width <= 0 {
		errs = append(errs, &field.ContractError{Op: "experiment.Config", Arg: "width", Value: c.Width, Wrapped: grid.ErrResolution})
	}
	if c.Height <= 0 {
		errs = append(errs, &field.ContractError{Op: "experiment.Config", Arg: "height", Value: c.Height, Wrapped: grid.ErrResolution})
	}
	if !(c.MajorSpacing > 0) {
		errs = append(errs, &field.ContractError{Op: "experiment.Config", Arg: "major spacing", Value: c.MajorSpacing, Wrapped: grid.ErrSpacing})
	}
	if err := c.Palette.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := colormap.CompressorByName(c.Compression); err != nil {
		errs = append(errs, err)
	}
	if _, err := integrators.ByName(c.Integrator); err != nil {
		errs = append(errs, err)
	}
	if !(c.Step > 0) || math.IsInf(c.Step, 0) {
		errs = append(errs, &field.ContractError{Op: "experiment.Config", Arg: "step", Value: c.Step, Wrapped: integrators.ErrStep})
	}
	if !isFinite(c.Seed.X) || !isFinite(c.Seed.Y) {
		errs = append(errs, &field.ContractError{Op: "experiment.Config", Arg: "seed", Value: c.Seed, Wrapped: integrators.ErrSeed})
	}
	if c.MaxSteps <= 0 {
		errs = append(errs, &field.ContractError{Op: "experiment.Config", Arg: "max steps", Value: c.MaxSteps, Wrapped: integrators.ErrMaxSteps})
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
