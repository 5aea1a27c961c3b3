// Package conv provides integer narrowing helpers for the regex engine.
//
// Checked conversions panic on overflow since that indicates a programming
// error (e.g. an automaton larger than StateID can address). Saturating
// conversions clamp instead, for values handed across an API boundary that
// has a narrower integer type.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}

// SaturateUint32 converts a non-negative int to uint32, clamping values
// above math.MaxUint32 to math.MaxUint32. It reports whether clamping
// occurred. Panics if n < 0.
func SaturateUint32(n int) (v uint32, clamped bool) {
	if n < 0 {
		panic("integer overflow: negative value has no uint32 representation")
	}
	if uint(n) > math.MaxUint32 {
		return math.MaxUint32, true
	}
	return uint32(n), false
}
