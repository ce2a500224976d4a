package integrators

import (
	"errors"
	"fmt"

	"github.com/san-kum/slopefield/internal/field"
)

var (
	ErrStep           = errors.New("integrators: step size must be positive and finite")
	ErrMaxSteps       = errors.New("integrators: max steps must be positive")
	ErrSeed           = errors.New("integrators: seed must be finite")
	ErrInterval       = errors.New("integrators: interval must be non-empty and finite")
	ErrUndefinedSlope = errors.New("integrators: slope undefined")
	ErrUnknown        = errors.New("integrators: unknown integrator")
)

type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Stepper advances one fixed step of size h along the field. It reports
// false when the slope is undefined somewhere the step needs it.
type Stepper interface {
	Name() string
	Step(eq field.Equation, p Point, h float64) (Point, bool)
}

func ByName(name string) (Stepper, error) {
	switch name {
	case "", "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
}

// StopReason records why one half of a trajectory ended.
type StopReason int

const (
	StopMaxSteps StopReason = iota
	StopBounds
	StopUndefined
	StopCanceled
)

func (s StopReason) String() string {
	switch s {
	case StopMaxSteps:
		return "max steps"
	case StopBounds:
		return "bounds"
	case StopUndefined:
		return "undefined slope"
	case StopCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("StopReason(%d)", int(s))
	}
}
