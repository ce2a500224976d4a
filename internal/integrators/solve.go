package integrators

import (
	"context"
	"fmt"

	"github.com/san-kum/slopefield/internal/field"
)

// Solve integrates from (x0, y0) to x1 in exactly steps equal steps and
// returns steps+1 points. If the slope becomes undefined on the way, the
// points reached so far are returned with an error wrapping
// ErrUndefinedSlope.
func (t *Tracer) Solve(ctx context.Context, eq field.Equation, x0, x1, y0 float64, steps int) ([]Point, error) {
	if err := eq.Validate(); err != nil {
		return nil, err
	}
	if !isFinite(x0) || !isFinite(x1) || x0 == x1 {
		return nil, &field.ContractError{Op: "integrators.Solve", Arg: "interval", Value: [2]float64{x0, x1}, Wrapped: ErrInterval}
	}
	if !isFinite(y0) {
		return nil, &field.ContractError{Op: "integrators.Solve", Arg: "y0", Value: y0, Wrapped: ErrSeed}
	}
	if steps <= 0 {
		return nil, &field.ContractError{Op: "integrators.Solve", Arg: "steps", Value: steps, Wrapped: ErrMaxSteps}
	}

	h := (x1 - x0) / float64(steps)
	pts := make([]Point, 1, steps+1)
	pts[0] = Point{X: x0, Y: y0}

	p := pts[0]
	for i := 0; i < steps; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return pts, fmt.Errorf("solve canceled after %d steps: %w", i, err)
			}
		}

		next, ok := t.stepper.Step(eq, p, h)
		if !ok {
			return pts, fmt.Errorf("%w at %v after %d steps", ErrUndefinedSlope, p, i)
		}
		pts = append(pts, next)
		p = next
	}

	return pts, nil
}
