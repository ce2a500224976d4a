package integrators

import "github.com/san-kum/slopefield/internal/field"

// Euler is the explicit method: y' = y + h*f(x, y), x' = x + h.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(eq field.Equation, p Point, h float64) (Point, bool) {
	slope, ok := eq.Evaluate(p.X, p.Y).Float()
	if !ok {
		return p, false
	}
	return Point{X: p.X + h, Y: p.Y + h*slope}, true
}
