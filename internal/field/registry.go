package field

import (
	"fmt"
	"math"
	"sort"
)

type Registry struct {
	equations map[string]Equation
}

// NewRegistry returns a registry preloaded with the built-in equations.
func NewRegistry() *Registry {
	r := &Registry{equations: make(map[string]Equation)}

	r.equations["default"] = Equation{
		Name:  "default",
		Label: "sin(x) + cos(y) + atan(x+y)",
		Fn: func(x, y float64) float64 {
			return math.Sin(x) + math.Cos(y) + math.Atan(x+y)
		},
	}
	r.equations["linear"] = Equation{
		Name:  "linear",
		Label: "x + y",
		Fn:    func(x, y float64) float64 { return x + y },
	}
	r.equations["rational"] = Equation{
		Name:  "rational",
		Label: "(x - y^2)/y",
		Fn:    func(x, y float64) float64 { return (x - y*y) / y },
	}
	r.equations["xlogx"] = Equation{
		Name:  "xlogx",
		Label: "y * (x * ln(x))",
		Fn:    func(x, y float64) float64 { return y * (x * math.Log(x)) },
	}
	r.equations["cuberoot"] = Equation{
		Name:  "cuberoot",
		Label: "spow(x, 1/3) - y",
		Fn:    func(x, y float64) float64 { return Spow(x, 1.0/3.0) - y },
	}
	r.equations["logistic"] = Equation{
		Name:  "logistic",
		Label: "y * (1 - y)",
		Fn:    func(x, y float64) float64 { return y * (1 - y) },
	}

	return r
}

func (r *Registry) Register(eq Equation) error {
	if err := eq.Validate(); err != nil {
		return err
	}
	if _, ok := r.equations[eq.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEquation, eq.Name)
	}
	r.equations[eq.Name] = eq
	return nil
}

func (r *Registry) Get(name string) (Equation, error) {
	eq, ok := r.equations[name]
	if !ok {
		return Equation{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownEquation, name, r.Names())
	}
	return eq, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.equations))
	for name := range r.equations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
