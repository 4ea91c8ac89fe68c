package epsilon

import (
	"math"
	"testing"

	"github.com/realline/mathematics/utils/sampling"
	"github.com/stretchr/testify/require"
)

func TestNearlyEqual(t *testing.T) {

	t.Run("LargeMagnitudes/Relative", func(t *testing.T) {
		require.True(t, NearlyEqualWithin(1e16, 1e16+1, 1e-12))
		require.True(t, NearlyEqualWithin(1e13, 1e13+1, 1e-12))
		require.False(t, NearlyEqualWithin(1e11, 1e11+1, 1e-12))
	})

	t.Run("SmallMagnitudes/Absolute", func(t *testing.T) {
		require.True(t, NearlyEqual(0.0, 1e-12))
		require.False(t, NearlyEqual(0.0, 2e-12))
		a, b := 0.1, 0.2
		require.True(t, NearlyEqual(a+b, 0.3))
		require.NotEqual(t, 0.3, a+b)
	})

	t.Run("NaN", func(t *testing.T) {
		require.False(t, NearlyEqualWithin(math.NaN(), 0, 1e-12))
		require.False(t, NearlyEqualWithin(0, math.NaN(), 1e-12))
		require.False(t, NearlyEqual(math.NaN(), math.NaN()))
	})

	t.Run("Infinities", func(t *testing.T) {
		require.True(t, NearlyEqual(math.Inf(1), math.Inf(1)))
		require.True(t, NearlyEqual(math.Inf(-1), math.Inf(-1)))
		require.False(t, NearlyEqual(math.Inf(1), math.Inf(-1)))
		require.False(t, NearlyEqual(math.Inf(1), 1e308))
		require.False(t, NearlyEqualWithin(1e308, math.Inf(1), math.Inf(1)))
	})

	t.Run("SignedZeros", func(t *testing.T) {
		require.True(t, NearlyEqual(0.0, math.Copysign(0, -1)))
	})

	t.Run("Float32", func(t *testing.T) {
		require.True(t, NearlyEqual(float32(1), float32(1)))
		require.True(t, NearlyEqualWithin(float32(1), float32(1.0000001), 1e-6))
		require.False(t, NearlyEqual(float32(1), float32(1.0001)))
	})

	t.Run("Properties/ReflexiveSymmetric", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte("epsilon"))
		require.NoError(t, err)

		for i := 0; i < 4096; i++ {
			x := sampling.Float64Bits(prng)
			y := sampling.Float64Bits(prng)
			tol := sampling.Float64(prng, 0, 1e-3)

			if !math.IsNaN(x) {
				require.True(t, NearlyEqualWithin(x, x, tol), "x=%v", x)
			}
			require.Equal(t, NearlyEqualWithin(x, y, tol), NearlyEqualWithin(y, x, tol), "x=%v y=%v", x, y)
		}
	})
}

func TestIsZero(t *testing.T) {

	t.Run("Within/Subnormal", func(t *testing.T) {
		require.True(t, IsZeroWithin(4.9e-324, 1e-12))
	})

	t.Run("Within/Absolute", func(t *testing.T) {
		require.True(t, IsZeroWithin(-1e-3, 1e-3))
		require.False(t, IsZeroWithin(1e-3, 1e-4))
		require.False(t, IsZeroWithin(math.NaN(), 1))
	})

	// IsZero measures the distance to zero, not to DefaultTolerance:
	// both inputs below are classified the other way by NearlyEqual(x, DefaultTolerance).
	t.Run("Default/DistanceToZero", func(t *testing.T) {
		require.True(t, IsZero(-5e-13))
		require.False(t, NearlyEqual(-5e-13, DefaultTolerance))

		require.False(t, IsZero(1.5e-12))
		require.True(t, NearlyEqual(1.5e-12, DefaultTolerance))

		require.True(t, IsZero(0.0))
		require.True(t, IsZero(float32(0)))
	})
}

func TestULPDiff(t *testing.T) {

	t.Run("Adjacent", func(t *testing.T) {
		require.Equal(t, int64(1), ULPDiff(1.0, math.Nextafter(1.0, 2)))
		require.Equal(t, int64(1), ULPDiff(math.Nextafter(1.0, 2), 1.0))
		require.Equal(t, int64(1), ULPDiff(-1.0, math.Nextafter(-1.0, -2)))
	})

	t.Run("Equal", func(t *testing.T) {
		require.Equal(t, int64(0), ULPDiff(3.25, 3.25))
		require.Equal(t, int64(0), ULPDiff(0, math.Copysign(0, -1)))
		require.Equal(t, int64(0), ULPDiff(math.Inf(1), math.Inf(1)))
	})

	t.Run("AcrossZero", func(t *testing.T) {
		tiny := math.SmallestNonzeroFloat64
		require.Equal(t, int64(2), ULPDiff(-tiny, tiny))
		require.Equal(t, int64(1), ULPDiff(0, tiny))
		require.Equal(t, int64(1), ULPDiff(math.Copysign(0, -1), -tiny))
	})

	t.Run("Sentinel", func(t *testing.T) {
		require.Equal(t, MaxULPDiff, ULPDiff(math.NaN(), 1))
		require.Equal(t, MaxULPDiff, ULPDiff(1, math.NaN()))
		require.Equal(t, MaxULPDiff, ULPDiff(math.NaN(), math.NaN()))
		require.Equal(t, MaxULPDiff, ULPDiff(math.Inf(1), math.MaxFloat64))
		require.Equal(t, MaxULPDiff, ULPDiff(math.Inf(-1), math.Inf(1)))
	})

	t.Run("Saturation", func(t *testing.T) {
		require.Equal(t, MaxULPDiff, ULPDiff(-math.MaxFloat64, math.MaxFloat64))
	})

	t.Run("NearlyEqualULP", func(t *testing.T) {
		a, b := 0.1, 0.2
		x := a + b
		require.True(t, NearlyEqualULP(x, 0.3, 1))
		require.False(t, NearlyEqualULP(x, 0.3, 0))
		require.False(t, NearlyEqualULP(math.NaN(), math.NaN(), MaxULPDiff))
	})
}

func TestComparator(t *testing.T) {

	t.Run("New/Invalid", func(t *testing.T) {
		for _, tol := range []float64{math.NaN(), -1, math.Inf(1)} {
			_, err := NewComparator(tol)
			require.ErrorIs(t, err, ErrInvalidTolerance)
		}
	})

	t.Run("New/Valid", func(t *testing.T) {
		c, err := NewComparator(1e-3)
		require.NoError(t, err)
		require.True(t, c.NearlyEqual(1, 1.0005))
		require.True(t, c.IsZero(-1e-3))
		require.False(t, c.IsZero(2e-3))
	})

	t.Run("Default", func(t *testing.T) {
		c := DefaultComparator()
		require.Equal(t, DefaultTolerance, c.Tolerance)
		require.Equal(t, NearlyEqual(1.0, 1+1e-13), c.NearlyEqual(1, 1+1e-13))
	})
}
