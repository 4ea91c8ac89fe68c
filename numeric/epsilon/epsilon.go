// Package epsilon implements approximate comparisons of floating-point values
// that do not depend on their absolute magnitude, and the distance between two
// float64 counted in units in the last place (ULP).
package epsilon

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultTolerance is the tolerance used by NearlyEqual and IsZero.
const DefaultTolerance = 1e-12

// MaxULPDiff is the distance returned by ULPDiff when no finite distance
// exists.
const MaxULPDiff int64 = math.MaxInt64

// NearlyEqualWithin returns true if x and y are equal up to a tolerance
// that scales with their magnitude: |x-y| <= max(tolerance, tolerance*max(|x|, |y|)).
//
// Equal values (including equal infinities) are always nearly equal. NaN is
// never nearly equal to anything, and an infinity is only nearly equal to
// itself.
func NearlyEqualWithin[T constraints.Float](x, y T, tolerance float64) bool {

	if x == y {
		return true
	}

	a, b := float64(x), float64(y)

	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	diff := math.Abs(a - b)
	maxAbs := math.Max(math.Abs(a), math.Abs(b))

	return diff <= math.Max(tolerance, tolerance*maxAbs)
}

// NearlyEqual is NearlyEqualWithin with DefaultTolerance.
func NearlyEqual[T constraints.Float](x, y T) bool {
	return NearlyEqualWithin(x, y, DefaultTolerance)
}

// IsZeroWithin returns true if |x| <= tolerance.
// The tolerance is absolute: zero carries no magnitude to scale it with.
func IsZeroWithin[T constraints.Float](x T, tolerance float64) bool {
	return math.Abs(float64(x)) <= tolerance
}

// IsZero is IsZeroWithin with DefaultTolerance.
func IsZero[T constraints.Float](x T) bool {
	return IsZeroWithin(x, DefaultTolerance)
}
