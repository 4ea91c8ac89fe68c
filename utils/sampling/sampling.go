// Package sampling implements deterministic sampling of floating-point
// values from a keyed byte stream.
package sampling

import (
	"encoding/binary"
	"math"
)

// Uint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
// It panics if prng fails to produce 8 bytes.
func Uint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Float64 returns a random float in [min, max).
func Float64(prng PRNG, min, max float64) float64 {
	f := float64(Uint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}

// Float64Bits returns a float64 with uniformly random bits. The result may be
// NaN, an infinity, a subnormal or a signed zero.
func Float64Bits(prng PRNG) float64 {
	return math.Float64frombits(Uint64(prng))
}
