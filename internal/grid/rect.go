package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/slopefield/internal/field"
)

var (
	ErrEmptyRect    = errors.New("grid: rectangle has no area")
	ErrNonFinite    = errors.New("grid: non-finite coordinate")
	ErrResolution   = errors.New("grid: resolution must be positive")
	ErrSpacing      = errors.New("grid: spacing must be positive")
	ErrTooManyLines = errors.New("grid: spacing yields too many lines")
)

// Rect is the closed evaluation region shared by rasterization and
// integration. Build it with NewRect so the bounds are validated.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

func NewRect(xMin, xMax, yMin, yMax float64) (Rect, error) {
	r := Rect{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	if err := r.Validate(); err != nil {
		return Rect{}, err
	}
	return r, nil
}

func (r Rect) Validate() error {
	for _, v := range [...]float64{r.XMin, r.XMax, r.YMin, r.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &field.ContractError{Op: "grid.Rect", Arg: "bound", Value: v, Wrapped: ErrNonFinite}
		}
	}
	if !(r.XMin < r.XMax) {
		return &field.ContractError{Op: "grid.Rect", Arg: "x range", Value: [2]float64{r.XMin, r.XMax}, Wrapped: ErrEmptyRect}
	}
	if !(r.YMin < r.YMax) {
		return &field.ContractError{Op: "grid.Rect", Arg: "y range", Value: [2]float64{r.YMin, r.YMax}, Wrapped: ErrEmptyRect}
	}
	return nil
}

// Contains reports whether (x, y) lies inside r, bounds included. NaN
// coordinates are never contained.
func (r Rect) Contains(x, y float64) bool {
	return r.XMin <= x && x <= r.XMax && r.YMin <= y && y <= r.YMax
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// MajorLines returns the gridline coordinates for both axes.
func (r Rect) MajorLines(spacing float64) (xs, ys []float64, err error) {
	if xs, err = MajorLines(r.XMin, r.XMax, spacing); err != nil {
		return nil, nil, err
	}
	if ys, err = MajorLines(r.YMin, r.YMax, spacing); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
}
