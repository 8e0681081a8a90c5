// Package seed derives reproducible pseudo-random values from a string key.
// A user id always hashes to the same seed, and the same seed+offset always
// yields the same float, so per-user mock data survives reloads without any
// stored PRNG state. Not cryptographic.
package seed

import "math"

// FromString folds each code point into a running signed 32-bit hash
// (h<<5 - h + c) and returns its absolute value.
func FromString(key string) int64 {
	var h int32
	for _, r := range key {
		h = (h << 5) - h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// Float maps seed+offset onto [0, 1) via a sine transform. Distinct offsets
// from the same seed give decorrelated-looking sub-streams, so independent
// fields can be drawn without consuming shared state.
func Float(seed, offset int64) float64 {
	x := math.Sin(float64(seed+offset)) * 10000
	return x - math.Floor(x)
}

// IntN returns a value in [0, n) drawn from the seed+offset sub-stream.
func IntN(seed, offset int64, n int) int {
	return int(Float(seed, offset) * float64(n))
}

// Chance reports whether the seed+offset draw exceeds the threshold.
func Chance(seed, offset int64, threshold float64) bool {
	return Float(seed, offset) > threshold
}
