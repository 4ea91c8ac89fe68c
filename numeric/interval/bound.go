package interval

// BoundType indicates whether an endpoint belongs to the interval ("closed")
// or not ("open").
type BoundType uint8

const (
	// BoundTypeOpen indicates that the endpoint is not part of the interval.
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the endpoint is part of the interval.
	BoundTypeClosed
)

func (b BoundType) String() string {
	switch b {
	case BoundTypeOpen:
		return "open"
	case BoundTypeClosed:
		return "closed"
	default:
		return "invalid"
	}
}

func (b BoundType) valid() bool {
	return b == BoundTypeOpen || b == BoundTypeClosed
}

// meet returns the type of an endpoint shared by two intervals:
// closed only if both of them include it.
func meet(a, b BoundType) BoundType {
	if a == BoundTypeClosed && b == BoundTypeClosed {
		return BoundTypeClosed
	}
	return BoundTypeOpen
}
