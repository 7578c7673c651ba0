package vmath

import "math"

// --- Range Helpers ---

// Clamp01 clamps x to [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp clamps x to [lo,hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Wrap01 wraps x into [0,1); used for circular hue dimensions
func Wrap01(x float64) float64 {
	x -= math.Floor(x)
	// Floor of a value like -1e-17 yields -0.0 and x stays 1.0 after the
	// subtraction in edge cases; fold the boundary back
	if x >= 1 {
		x = 0
	}
	return x
}

// Lerp interpolates from a to b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Finite reports whether x is a usable scalar (not NaN, not Inf)
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// --- Randomness ---

// FastRand is a seedable xorshift64 generator
// Deterministic for a given seed; used so engine construction is reproducible under test seeds
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0,1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo,hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
