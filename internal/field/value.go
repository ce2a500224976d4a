package field

import (
	"math"
	"strconv"
)

// Value is either a finite real or Undefined. The zero Value is Undefined.
type Value struct {
	v  float64
	ok bool
}

// Undefined marks an evaluation that hit a domain fault.
var Undefined = Value{}

// Defined wraps v without checking it. Use Of for results of arithmetic that
// may have produced NaN or Inf.
func Defined(v float64) Value {
	return Value{v: v, ok: true}
}

// Of returns Undefined for NaN and ±Inf, Defined(v) otherwise.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Undefined
	}
	return Value{v: v, ok: true}
}

func (v Value) Float() (float64, bool) { return v.v, v.ok }
func (v Value) IsUndefined() bool      { return !v.ok }

func (v Value) String() string {
	if !v.ok {
		return "undefined"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}
