// Package linear implements immutable affine functions f(x) = a*x + b.
package linear

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is returned by Function.Inverse for non-monotonic functions.
var ErrNotInvertible = errors.New("function is not invertible")

// Monotonicity classifies a Function by the sign of its slope.
type Monotonicity uint8

const (
	// Constant is the monotonicity of functions with a zero slope.
	Constant Monotonicity = iota
	// Increasing is the monotonicity of functions with a positive slope.
	Increasing
	// Decreasing is the monotonicity of functions with a negative slope.
	Decreasing
	// Undefined is the monotonicity of functions with a NaN slope.
	Undefined
)

func (m Monotonicity) String() string {
	switch m {
	case Constant:
		return "constant"
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "undefined"
	}
}

// Function is the affine function f(x) = a*x + b. Its monotonicity is
// computed once, by Of. The zero value is Of(0, 0).
type Function struct {
	a, b float64
	kind Monotonicity
}

// Of returns the function f(x) = a*x + b.
// No input is rejected: a NaN slope yields an Undefined function.
func Of(a, b float64) Function {

	var kind Monotonicity

	switch {
	case a == 0:
		kind = Constant
	case a > 0:
		kind = Increasing
	case a < 0:
		kind = Decreasing
	default:
		kind = Undefined
	}

	return Function{a: a, b: b, kind: kind}
}

// Slope returns the angular coefficient a.
func (f Function) Slope() float64 {
	return f.a
}

// Intercept returns the linear coefficient b.
func (f Function) Intercept() float64 {
	return f.b
}

// Monotonicity returns the classification of f.
func (f Function) Monotonicity() Monotonicity {
	return f.kind
}

// Apply returns f(x).
func (f Function) Apply(x float64) float64 {
	return f.a*x + f.b
}

// Root returns the x such that f(x) = 0, that is -b/a.
// For a constant function there is no such x in general and Root returns b.
func (f Function) Root() float64 {
	if f.a == 0 {
		return f.b
	}
	return -f.b / f.a
}

// Compose returns f∘g, the function x -> f(g(x)).
func (f Function) Compose(g Function) Function {
	return Of(f.a*g.a, f.a*g.b+f.b)
}

// Inverse returns the function x -> (x - b) / a.
// Only Increasing and Decreasing functions are invertible.
func (f Function) Inverse() (Function, error) {
	if f.kind != Increasing && f.kind != Decreasing {
		return Function{}, fmt.Errorf("cannot Inverse %s function %s: %w", f.kind, f, ErrNotInvertible)
	}
	return Of(1/f.a, -f.b/f.a), nil
}

// Equal returns true if f and other have bit-identical coefficients.
// All NaNs are equal to each other; 0 and -0 differ.
func (f Function) Equal(other Function) bool {
	return bits(f.a) == bits(other.a) && bits(f.b) == bits(other.b)
}

// bits returns the IEEE 754 bits of x with a single NaN representation.
func bits(x float64) uint64 {
	if math.IsNaN(x) {
		return math.Float64bits(math.NaN())
	}
	return math.Float64bits(x)
}
