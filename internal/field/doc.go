// Package field evaluates the right-hand side of dy/dx = f(x, y).
//
// The package defines the scalar field primitives shared by the rasterizer
// and the trajectory integrator:
//
//   - [Value]: a tagged result, either a finite real or [Undefined]
//   - [Func]: a closed-form two-argument expression
//   - [Equation]: a Func bound to a human-readable label
//   - [Registry]: named built-in equations
//
// # Domain faults
//
// Division by zero, logarithms of non-positive numbers and any other numeric
// fault surface as NaN or Inf in Go float arithmetic. [Equation.Evaluate]
// turns both into [Undefined], and recovers panics raised by user supplied
// functions, so callers never see an error from an evaluation.
//
// # Example
//
//	eq, _ := field.NewRegistry().Get("rational")
//	v := eq.Evaluate(1, 0)
//	if v.IsUndefined() {
//		// paint the sentinel color, stop the trajectory half
//	}
//
// # Thread Safety
//
// Equation values are immutable and safe for concurrent use as long as the
// wrapped Func is pure. A Registry is not safe for concurrent mutation.
package field
