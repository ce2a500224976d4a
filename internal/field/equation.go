package field

import "math"

// Func is the closed-form right-hand side f(x, y).
type Func func(x, y float64) float64

// Equation binds a Func to the label shown next to the rendered field.
type Equation struct {
	Name  string
	Label string
	Fn    Func
}

func NewEquation(name, label string, fn Func) (Equation, error) {
	eq := Equation{Name: name, Label: label, Fn: fn}
	if err := eq.Validate(); err != nil {
		return Equation{}, err
	}
	return eq, nil
}

func (e Equation) Validate() error {
	if e.Fn == nil {
		return &ContractError{Op: "field.Equation", Arg: "fn", Value: e.Name, Wrapped: ErrNilFunc}
	}
	return nil
}

// Evaluate computes f(x, y). Non-finite results and panics raised by Fn come
// back as Undefined.
func (e Equation) Evaluate(x, y float64) (v Value) {
	defer func() {
		if recover() != nil {
			v = Undefined
		}
	}()
	r := e.Fn(x, y)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Undefined
	}
	return Value{v: r, ok: true}
}

// Spow returns |x|^n carrying the sign of x, so odd roots of negative numbers
// stay real.
func Spow(x, n float64) float64 {
	switch {
	case x > 0:
		return math.Pow(x, n)
	case x < 0:
		return -math.Pow(-x, n)
	default:
		return 0
	}
}
