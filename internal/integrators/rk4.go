package integrators

import "github.com/san-kum/slopefield/internal/field"

// RK4 is the classic fixed-step fourth order Runge-Kutta method. Any stage
// landing on an undefined slope fails the whole step.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Step(eq field.Equation, p Point, h float64) (Point, bool) {
	half := h * 0.5

	k1, ok := eq.Evaluate(p.X, p.Y).Float()
	if !ok {
		return p, false
	}
	k2, ok := eq.Evaluate(p.X+half, p.Y+half*k1).Float()
	if !ok {
		return p, false
	}
	k3, ok := eq.Evaluate(p.X+half, p.Y+half*k2).Float()
	if !ok {
		return p, false
	}
	k4, ok := eq.Evaluate(p.X+h, p.Y+h*k3).Float()
	if !ok {
		return p, false
	}

	h6 := h / 6.0
	return Point{X: p.X + h, Y: p.Y + h6*(k1+2*k2+2*k3+k4)}, true
}
