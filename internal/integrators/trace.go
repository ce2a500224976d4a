package integrators

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/slopefield/internal/field"
	"github.com/san-kum/slopefield/internal/grid"
)

// checkEvery is how many steps run between context checks.
const checkEvery = 4096

// Trajectory is a polyline through the seed. Points holds the backward half
// (furthest from the seed first), the seed, then the forward half.
type Trajectory struct {
	Points       []Point
	Backward     int
	Forward      int
	BackwardStop StopReason
	ForwardStop  StopReason
}

func (t *Trajectory) Len() int { return len(t.Points) }

// Seed returns the seed point. It is false for an empty trajectory, which
// happens when the seed lies outside the rectangle.
func (t *Trajectory) Seed() (Point, bool) {
	if len(t.Points) == 0 {
		return Point{}, false
	}
	return t.Points[t.Backward], true
}

func (t *Trajectory) Xs() []float64 {
	xs := make([]float64, len(t.Points))
	for i, p := range t.Points {
		xs[i] = p.X
	}
	return xs
}

func (t *Trajectory) Ys() []float64 {
	ys := make([]float64, len(t.Points))
	for i, p := range t.Points {
		ys[i] = p.Y
	}
	return ys
}

type Tracer struct {
	stepper Stepper
}

func NewTracer(s Stepper) *Tracer {
	if s == nil {
		s = NewEuler()
	}
	return &Tracer{stepper: s}
}

func (t *Tracer) Stepper() Stepper { return t.stepper }

// Trace integrates from seed with +step and -step, each half for at most
// maxSteps steps. A half stops before retaining a point outside rect, and
// stops at the first point whose slope is undefined.
func (t *Tracer) Trace(ctx context.Context, eq field.Equation, seed Point, step float64, rect grid.Rect, maxSteps int) (*Trajectory, error) {
	if err := validateTrace(eq, seed, step, rect, maxSteps); err != nil {
		return nil, err
	}

	if !rect.Contains(seed.X, seed.Y) {
		return &Trajectory{BackwardStop: StopBounds, ForwardStop: StopBounds}, nil
	}

	var (
		wg                sync.WaitGroup
		back, fwd         []Point
		backStop, fwdStop StopReason
		backErr, fwdErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		back, backStop, backErr = t.half(ctx, eq, seed, -step, rect, maxSteps)
	}()
	go func() {
		defer wg.Done()
		fwd, fwdStop, fwdErr = t.half(ctx, eq, seed, step, rect, maxSteps)
	}()
	wg.Wait()

	if backErr != nil {
		return nil, backErr
	}
	if fwdErr != nil {
		return nil, fwdErr
	}

	points := make([]Point, 0, len(back)+1+len(fwd))
	for i := len(back) - 1; i >= 0; i-- {
		points = append(points, back[i])
	}
	points = append(points, seed)
	points = append(points, fwd...)

	return &Trajectory{
		Points:       points,
		Backward:     len(back),
		Forward:      len(fwd),
		BackwardStop: backStop,
		ForwardStop:  fwdStop,
	}, nil
}

// half returns the points after seed in the direction of h, nearest first.
func (t *Tracer) half(ctx context.Context, eq field.Equation, seed Point, h float64, rect grid.Rect, maxSteps int) ([]Point, StopReason, error) {
	pts := make([]Point, 0, min(maxSteps, 1<<16))
	p := seed

	for i := 0; i < maxSteps; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, StopCanceled, fmt.Errorf("trace canceled after %d steps: %w", i, err)
			}
		}

		next, ok := t.stepper.Step(eq, p, h)
		if !ok {
			return pts, StopUndefined, nil
		}
		if !rect.Contains(next.X, next.Y) {
			return pts, StopBounds, nil
		}
		pts = append(pts, next)
		p = next
	}

	return pts, StopMaxSteps, nil
}

func validateTrace(eq field.Equation, seed Point, step float64, rect grid.Rect, maxSteps int) error {
	if err := eq.Validate(); err != nil {
		return err
	}
	if err := rect.Validate(); err != nil {
		return err
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return &field.ContractError{Op: "integrators.Trace", Arg: "step", Value: step, Wrapped: ErrStep}
	}
	if maxSteps <= 0 {
		return &field.ContractError{Op: "integrators.Trace", Arg: "max steps", Value: maxSteps, Wrapped: ErrMaxSteps}
	}
	if !isFinite(seed.X) || !isFinite(seed.Y) {
		return &field.ContractError{Op: "integrators.Trace", Arg: "seed", Value: seed, Wrapped: ErrSeed}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
