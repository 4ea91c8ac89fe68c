package linear

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ErrInvalidSample is returned by Fit when the points cannot define a line.
var ErrInvalidSample = errors.New("invalid sample")

// Fit returns the least-squares line through the points (xs[i], ys[i]).
// It requires at least two points and xs that are not all equal.
func Fit(xs, ys []float64) (Function, error) {

	if len(xs) != len(ys) {
		return Function{}, fmt.Errorf("cannot Fit: %w: len(xs)=%d != len(ys)=%d", ErrInvalidSample, len(xs), len(ys))
	}

	if len(xs) < 2 {
		return Function{}, fmt.Errorf("cannot Fit: %w: at least 2 points are required", ErrInvalidSample)
	}

	variance, err := stats.SampleVariance(xs)
	if err != nil {
		return Function{}, fmt.Errorf("cannot Fit: stats.SampleVariance: %w", err)
	}

	if variance == 0 {
		return Function{}, fmt.Errorf("cannot Fit: %w: xs have no variance", ErrInvalidSample)
	}

	covariance, err := stats.Covariance(xs, ys)
	if err != nil {
		return Function{}, fmt.Errorf("cannot Fit: stats.Covariance: %w", err)
	}

	meanX, err := stats.Mean(xs)
	if err != nil {
		return Function{}, fmt.Errorf("cannot Fit: stats.Mean: %w", err)
	}

	meanY, err := stats.Mean(ys)
	if err != nil {
		return Function{}, fmt.Errorf("cannot Fit: stats.Mean: %w", err)
	}

	a := covariance / variance

	return Of(a, meanY-a*meanX), nil
}
