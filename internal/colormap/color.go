package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/slopefield/internal/field"
)

var (
	ErrOutOfRange = errors.New("colormap: compressed value outside [-1, 1]")
	ErrFraction   = errors.New("colormap: color fraction outside [0, 1]")
	ErrChannel    = errors.New("colormap: channel outside [0, 255]")
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Fraction is a color with each channel in [0, 1].
type Fraction struct {
	R, G, B float64
}

func (f Fraction) Validate() error {
	for _, ch := range [...]float64{f.R, f.G, f.B} {
		if !(ch >= 0 && ch <= 1) {
			return &field.ContractError{Op: "colormap.Fraction", Arg: "channel", Value: ch, Wrapped: ErrFraction}
		}
	}
	return nil
}

// ConvertBaseColor converts a fractional color to 0-255 space with
// ceil(fraction * 255) per channel.
func ConvertBaseColor(f Fraction) (RGB, error) {
	if err := f.Validate(); err != nil {
		return RGB{}, err
	}
	r, err := channel(math.Ceil(f.R * 255))
	if err != nil {
		return RGB{}, err
	}
	g, err := channel(math.Ceil(f.G * 255))
	if err != nil {
		return RGB{}, err
	}
	b, err := channel(math.Ceil(f.B * 255))
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b}, nil
}

// scale floors base * magnitude per channel.
func (f Fraction) scale(magnitude int) (RGB, error) {
	m := float64(magnitude)
	r, err := channel(math.Floor(f.R * m))
	if err != nil {
		return RGB{}, err
	}
	g, err := channel(math.Floor(f.G * m))
	if err != nil {
		return RGB{}, err
	}
	b, err := channel(math.Floor(f.B * m))
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b}, nil
}

func channel(v float64) (uint8, error) {
	if !(v >= 0 && v <= 255) {
		return 0, &field.ContractError{Op: "colormap.channel", Arg: "value", Value: v, Wrapped: ErrChannel}
	}
	return uint8(v), nil
}
