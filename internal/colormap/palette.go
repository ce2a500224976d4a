package colormap

import (
	"math"

	"github.com/san-kum/slopefield/internal/field"
)

// Palette holds the ramp bases and accent colors of a rendering.
type Palette struct {
	Negative   Fraction
	Positive   Fraction
	Undefined  RGB
	Trajectory Fraction
	Major      Fraction
	Origin     Fraction
}

func DefaultPalette() Palette {
	return Palette{
		Negative:   Fraction{R: 1, G: 0.1, B: 0.1},
		Positive:   Fraction{R: 0.5, G: 1, B: 0},
		Undefined:  RGB{R: 255, G: 51, B: 255},
		Trajectory: Fraction{R: 0.25, G: 0.25, B: 1},
		Major:      Fraction{R: 0.8, G: 0.8, B: 0.8},
		Origin:     Fraction{R: 1, G: 1, B: 1},
	}
}

func (p Palette) Validate() error {
	for _, f := range [...]Fraction{p.Negative, p.Positive, p.Trajectory, p.Major, p.Origin} {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToColor maps a compressed value to its ramp color. Undefined maps to the
// sentinel. A defined value outside [-1, 1] is a caller bug and is rejected.
func (p Palette) ToColor(c field.Value) (RGB, error) {
	v, ok := c.Float()
	if !ok {
		return p.Undefined, nil
	}
	if !(v >= -1 && v <= 1) {
		return RGB{}, &field.ContractError{Op: "colormap.ToColor", Arg: "compressed value", Value: v, Wrapped: ErrOutOfRange}
	}

	magnitude := int(math.Abs(255 * v))
	if v < 0 {
		return p.Negative.scale(magnitude)
	}
	return p.Positive.scale(magnitude)
}

// Accents returns the integer colors of the trajectory, gridlines and origin
// lines.
func (p Palette) Accents() (trajectory, major, origin RGB, err error) {
	if trajectory, err = ConvertBaseColor(p.Trajectory); err != nil {
		return
	}
	if major, err = ConvertBaseColor(p.Major); err != nil {
		return
	}
	origin, err = ConvertBaseColor(p.Origin)
	return
}
