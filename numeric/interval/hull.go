package interval

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Hull returns the smallest closed interval containing every value.
// Infinite values are allowed; NaN values and an empty input are not.
func Hull(values []float64) (Interval, error) {

	if len(values) == 0 {
		return Empty(), fmt.Errorf("cannot Hull: %w: no values", ErrInvalidArgument)
	}

	for _, v := range values {
		if math.IsNaN(v) {
			return Empty(), fmt.Errorf("cannot Hull: %w: NaN value", ErrInvalidArgument)
		}
	}

	lower, err := stats.Min(values)
	if err != nil {
		return Empty(), fmt.Errorf("cannot Hull: stats.Min: %w", err)
	}

	upper, err := stats.Max(values)
	if err != nil {
		return Empty(), fmt.Errorf("cannot Hull: stats.Max: %w", err)
	}

	return Closed(lower, upper)
}
