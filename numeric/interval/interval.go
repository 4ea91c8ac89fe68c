// Package interval implements immutable intervals of the real line with open
// or closed endpoints.
//
// An Interval is either empty or satisfies lower <= upper with no NaN bound,
// and lower == upper only for a closed single point [a, a]. Every other
// degenerate request collapses to the empty interval. Infinite bounds are
// allowed.
package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by the errors returned when an interval
// cannot be created.
var ErrInvalidArgument = errors.New("invalid argument")

// Interval is an immutable interval of the real line.
// The zero value is the empty interval.
type Interval struct {
	lower, upper         float64
	lowerType, upperType BoundType
	bounded              bool
}

// Empty returns the empty interval.
// Its bounds are NaN and both of its endpoint types are BoundTypeOpen.
func Empty() Interval {
	return Interval{lower: math.NaN(), upper: math.NaN()}
}

// New creates the interval between lower and upper with the given endpoint types.
//
// It returns an error wrapping ErrInvalidArgument if a bound is NaN, if
// lower > upper or if an endpoint type is unknown. If lower == upper, the
// result is the point [lower, lower] when both endpoints are closed, and
// the empty interval otherwise.
func New(lower, upper float64, lowerType, upperType BoundType) (Interval, error) {

	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Empty(), fmt.Errorf("cannot create interval: %w: NaN endpoints not allowed", ErrInvalidArgument)
	}

	if lower > upper {
		return Empty(), fmt.Errorf("cannot create interval: %w: lower endpoint %v is greater than upper endpoint %v", ErrInvalidArgument, lower, upper)
	}

	if !lowerType.valid() || !upperType.valid() {
		return Empty(), fmt.Errorf("cannot create interval: %w: unknown endpoint types (%d, %d)", ErrInvalidArgument, lowerType, upperType)
	}

	return newInterval(lower, upper, lowerType, upperType), nil
}

// newInterval assumes lower <= upper and no NaN bound.
func newInterval(lower, upper float64, lowerType, upperType BoundType) Interval {
	if lower == upper && (lowerType != BoundTypeClosed || upperType != BoundTypeClosed) {
		return Empty()
	}
	return Interval{
		lower:     lower,
		upper:     upper,
		lowerType: lowerType,
		upperType: upperType,
		bounded:   true,
	}
}

// Closed returns [lower, upper].
func Closed(lower, upper float64) (Interval, error) {
	return New(lower, upper, BoundTypeClosed, BoundTypeClosed)
}

// Open returns (lower, upper).
func Open(lower, upper float64) (Interval, error) {
	return New(lower, upper, BoundTypeOpen, BoundTypeOpen)
}

// OpenClosed returns (lower, upper].
func OpenClosed(lower, upper float64) (Interval, error) {
	return New(lower, upper, BoundTypeOpen, BoundTypeClosed)
}

// ClosedOpen returns [lower, upper).
func ClosedOpen(lower, upper float64) (Interval, error) {
	return New(lower, upper, BoundTypeClosed, BoundTypeOpen)
}

// Lower returns the lower bound, or NaN if i is empty.
func (i Interval) Lower() float64 {
	if !i.bounded {
		return math.NaN()
	}
	return i.lower
}

// Upper returns the upper bound, or NaN if i is empty.
func (i Interval) Upper() float64 {
	if !i.bounded {
		return math.NaN()
	}
	return i.upper
}

// LowerType returns the type of the lower endpoint (BoundTypeOpen if i is empty).
func (i Interval) LowerType() BoundType {
	return i.lowerType
}

// UpperType returns the type of the upper endpoint (BoundTypeOpen if i is empty).
func (i Interval) UpperType() BoundType {
	return i.upperType
}

// IsEmpty returns true if i contains no point.
func (i Interval) IsEmpty() bool {
	return !i.bounded
}

// IsDegenerate returns true if i is a single point [a, a].
func (i Interval) IsDegenerate() bool {
	return i.bounded && i.lower == i.upper && i.lowerType == BoundTypeClosed && i.upperType == BoundTypeClosed
}

// IsClosedLeft returns true if the lower endpoint belongs to i.
func (i Interval) IsClosedLeft() bool {
	return i.lowerType == BoundTypeClosed
}

// IsClosedRight returns true if the upper endpoint belongs to i.
func (i Interval) IsClosedRight() bool {
	return i.upperType == BoundTypeClosed
}

// IsOpenLeft returns true if the lower endpoint is excluded from i.
func (i Interval) IsOpenLeft() bool {
	return i.lowerType == BoundTypeOpen
}

// IsOpenRight returns true if the upper endpoint is excluded from i.
func (i Interval) IsOpenRight() bool {
	return i.upperType == BoundTypeOpen
}

// Contains returns true if x belongs to i. NaN belongs to no interval.
func (i Interval) Contains(x float64) bool {

	if !i.bounded || math.IsNaN(x) {
		return false
	}

	var left, right bool

	if i.lowerType == BoundTypeClosed {
		left = x >= i.lower
	} else {
		left = x > i.lower
	}

	if i.upperType == BoundTypeClosed {
		right = x <= i.upper
	} else {
		right = x < i.upper
	}

	return left && right
}

// Length returns upper - lower: 0 for the empty interval and for points,
// +Inf if a bound is infinite.
func (i Interval) Length() float64 {

	if !i.bounded {
		return 0
	}

	if math.IsInf(i.lower, 0) || math.IsInf(i.upper, 0) {
		if i.lower == i.upper {
			return 0
		}
		return math.Inf(1)
	}

	// Guards against round-off on the subtraction.
	return math.Max(0, i.upper-i.lower)
}

// MidPoint returns the center of i, or NaN if i is empty or unbounded.
func (i Interval) MidPoint() float64 {

	if !i.bounded || math.IsInf(i.lower, 0) || math.IsInf(i.upper, 0) {
		return math.NaN()
	}

	return i.lower + (i.upper-i.lower)/2
}

// Intersect returns the set of points belonging to both i and other.
//
// When both intervals share an endpoint value, the resulting endpoint is
// closed only if it is closed in both, so [0, 1] ∩ [1, 2] = [1, 1] while
// [0, 1] ∩ (1, 2) = ∅.
func (i Interval) Intersect(other Interval) Interval {

	if !i.bounded || !other.bounded {
		return Empty()
	}

	var lower, upper float64
	var lowerType, upperType BoundType

	switch {
	case i.lower > other.lower:
		lower, lowerType = i.lower, i.lowerType
	case i.lower < other.lower:
		lower, lowerType = other.lower, other.lowerType
	default:
		lower, lowerType = i.lower, meet(i.lowerType, other.lowerType)
	}

	switch {
	case i.upper < other.upper:
		upper, upperType = i.upper, i.upperType
	case i.upper > other.upper:
		upper, upperType = other.upper, other.upperType
	default:
		upper, upperType = i.upper, meet(i.upperType, other.upperType)
	}

	if lower > upper {
		return Empty()
	}

	return newInterval(lower, upper, lowerType, upperType)
}

// Overlaps returns true if i and other have at least one point in common.
func (i Interval) Overlaps(other Interval) bool {
	return !i.Intersect(other).IsEmpty()
}

// Equal returns true if i and other are both empty, or have bit-identical
// bounds and the same endpoint types. In particular [-0, 1] and [0, 1] differ.
func (i Interval) Equal(other Interval) bool {

	if !i.bounded || !other.bounded {
		return !i.bounded && !other.bounded
	}

	return math.Float64bits(i.lower) == math.Float64bits(other.lower) &&
		math.Float64bits(i.upper) == math.Float64bits(other.upper) &&
		i.lowerType == other.lowerType &&
		i.upperType == other.upperType
}
