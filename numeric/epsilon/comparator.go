package epsilon

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTolerance is returned when a tolerance is NaN, negative or infinite.
var ErrInvalidTolerance = errors.New("invalid tolerance")

// Comparator carries a fixed tolerance for repeated approximate comparisons.
// A Comparator should be created with NewComparator or DefaultComparator.
type Comparator struct {
	Tolerance float64
}

// NewComparator returns a Comparator using the given tolerance.
func NewComparator(tolerance float64) (Comparator, error) {
	if math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance < 0 {
		return Comparator{}, fmt.Errorf("cannot NewComparator: %w: %v", ErrInvalidTolerance, tolerance)
	}
	return Comparator{Tolerance: tolerance}, nil
}

// DefaultComparator returns a Comparator using DefaultTolerance.
func DefaultComparator() Comparator {
	return Comparator{Tolerance: DefaultTolerance}
}

// NearlyEqual is NearlyEqualWithin with the tolerance of c.
func (c Comparator) NearlyEqual(x, y float64) bool {
	return NearlyEqualWithin(x, y, c.Tolerance)
}

// IsZero is IsZeroWithin with the tolerance of c.
func (c Comparator) IsZero(x float64) bool {
	return IsZeroWithin(x, c.Tolerance)
}
