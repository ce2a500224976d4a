package colormap

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/slopefield/internal/field"
)

var ErrUnknownCompression = errors.New("colormap: unknown compression")

// Compressor maps a field value onto [-1, 1], passing Undefined through.
type Compressor func(v field.Value) field.Value

// Compress maps (-inf, inf) onto (-1, 1) with 2/pi * atan(v).
func Compress(v field.Value) field.Value {
	x, ok := v.Float()
	if !ok {
		return field.Undefined
	}
	return field.Defined(clamp(2 / math.Pi * math.Atan(x)))
}

// CompressLogistic maps with 2/(1+e^-v) - 1. Same shape as Compress, slower.
func CompressLogistic(v field.Value) field.Value {
	x, ok := v.Float()
	if !ok {
		return field.Undefined
	}
	return field.Defined(clamp(2/(1+math.Exp(-x)) - 1))
}

func CompressorByName(name string) (Compressor, error) {
	switch name {
	case "", "atan":
		return Compress, nil
	case "logistic":
		return CompressLogistic, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, name)
	}
}

// clamp absorbs rounding at saturation, where 2/pi * atan(v) can land one
// ulp beyond 1.
func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
