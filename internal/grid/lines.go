package grid

import (
	"math"

	"github.com/san-kum/slopefield/internal/field"
)

const maxLines = 1 << 16

// MajorLines returns the multiples of spacing lying strictly inside
// (lo, hi), ascending. A multiple equal to lo or hi is excluded.
func MajorLines(lo, hi, spacing float64) ([]float64, error) {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, &field.ContractError{Op: "grid.MajorLines", Arg: "spacing", Value: spacing, Wrapped: ErrSpacing}
	}
	if (hi-lo)/spacing > maxLines {
		return nil, &field.ContractError{Op: "grid.MajorLines", Arg: "spacing", Value: spacing, Wrapped: ErrTooManyLines}
	}

	first := math.Floor(lo / spacing)
	last := math.Ceil(hi / spacing)

	lines := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		v := k * spacing
		if lo < v && v < hi {
			lines = append(lines, v)
		}
	}
	return lines, nil
}
