package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/slopefield/internal/field"
)

// SampleGrid holds the linearly spaced sample coordinates of a Rect,
// endpoints included. len(Xs) is the pixel width, len(Ys) the height.
type SampleGrid struct {
	Rect Rect
	Xs   []float64
	Ys   []float64
}

func NewSampleGrid(r Rect, width, height int) (*SampleGrid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, &field.ContractError{Op: "grid.NewSampleGrid", Arg: "width", Value: width, Wrapped: ErrResolution}
	}
	if height <= 0 {
		return nil, &field.ContractError{Op: "grid.NewSampleGrid", Arg: "height", Value: height, Wrapped: ErrResolution}
	}

	return &SampleGrid{
		Rect: r,
		Xs:   Linspace(r.XMin, r.XMax, width),
		Ys:   Linspace(r.YMin, r.YMax, height),
	}, nil
}

func (g *SampleGrid) Width() int  { return len(g.Xs) }
func (g *SampleGrid) Height() int { return len(g.Ys) }

// Linspace returns n evenly spaced values from lo to hi inclusive. A single
// sample sits at lo.
func Linspace(lo, hi float64, n int) []float64 {
	dst := make([]float64, n)
	switch n {
	case 0:
	case 1:
		dst[0] = lo
	default:
		floats.Span(dst, lo, hi)
	}
	return dst
}

// ResolutionFromAccuracy returns ceil(span * e^accuracy), the pixel count the
// classic renderer used for an axis of the given span.
func ResolutionFromAccuracy(span, accuracy float64) int {
	return int(math.Ceil(span * math.Exp(accuracy)))
}
