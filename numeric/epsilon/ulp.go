package epsilon

import (
	"math"
)

// ULPDiff returns the number of representable float64 values between x and y,
// that is, the distance between x and y in units in the last place.
//
// It returns 0 if x == y (so ULPDiff(0, -0) == 0), and MaxULPDiff if either
// value is NaN or infinite. Distances that do not fit in an int64 saturate at
// MaxULPDiff.
func ULPDiff(x, y float64) int64 {

	if math.IsNaN(x) || math.IsNaN(y) {
		return MaxULPDiff
	}

	if x == y {
		return 0
	}

	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return MaxULPDiff
	}

	a, b := ordered(x), ordered(y)

	if a < b {
		a, b = b, a
	}

	// a - b fits in an uint64 since both are int64.
	if diff := uint64(a) - uint64(b); diff <= math.MaxInt64 {
		return int64(diff)
	}

	return MaxULPDiff
}

// NearlyEqualULP returns true if x and y are at most maxULPs representable
// values apart. It is always false if either value is NaN.
func NearlyEqualULP(x, y float64, maxULPs int64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	return ULPDiff(x, y) <= maxULPs
}

// ordered maps the sign-magnitude bits of x onto an int64 that sorts like x.
// Both zeros map to 0.
func ordered(x float64) int64 {
	bits := math.Float64bits(x)
	magnitude := int64(bits &^ (1 << 63))
	if bits>>63 == 1 {
		return -magnitude
	}
	return magnitude
}
