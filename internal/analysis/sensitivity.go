package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/integrators"
)

// SeedSensitivity estimates how fast the solution through seed and one
// started perturb above it separate, as the mean log growth of their
// vertical distance per unit x. The gap is reset to perturb after every
// step. Stepping stops early at an undefined slope.
func SeedSensitivity(
	s integrators.Stepper,
	eq field.Equation,
	seed integrators.Point,
	perturb, h float64,
	steps int,
) (float64, error) {
	if !(perturb > 0) || math.IsInf(perturb, 0) {
		return 0, fmt.Errorf("analysis: perturbation must be positive, got %g", perturb)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		return 0, integrators.ErrStep
	}
	if steps <= 0 {
		return 0, integrators.ErrMaxSteps
	}

	p := seed
	q := integrators.Point{X: seed.X, Y: seed.Y + perturb}

	sumLog := 0.0
	count := 0

	for i := 0; i < steps; i++ {
		var okP, okQ bool
		p, okP = s.Step(eq, p, h)
		q, okQ = s.Step(eq, q, h)
		if !okP || !okQ {
			break
		}

		gap := q.Y - p.Y
		if gap != 0 && !math.IsInf(gap, 0) && !math.IsNaN(gap) {
			sumLog += math.Log(math.Abs(gap) / perturb)
			count++
			q.Y = p.Y + math.Copysign(perturb, gap)
		} else {
			q.Y = p.Y + perturb
		}
	}

	if count == 0 {
		return 0, nil
	}
	return sumLog / (float64(count) * h), nil
}
