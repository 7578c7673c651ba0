package vmath

import (
	"math"
	"testing"
)

// TestClamp01 verifies clamping at both bounds and pass-through inside
func TestClamp01(t *testing.T) {
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, want 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, want 1", got)
	}
	if got := Clamp01(0.25); got != 0.25 {
		t.Errorf("Clamp01(0.25) = %v, want 0.25", got)
	}
}

// TestWrap01 verifies circular wrapping including negative inputs
func TestWrap01(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{0.75, 0.75},
		{1.0, 0},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-2.5, 0.5},
	}
	for _, c := range cases {
		if got := Wrap01(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Wrap01(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	// Result must always land in [0,1)
	for x := -3.0; x < 3.0; x += 0.137 {
		got := Wrap01(x)
		if got < 0 || got >= 1 {
			t.Fatalf("Wrap01(%v) = %v out of [0,1)", x, got)
		}
	}
}

// TestFinite rejects NaN and infinities
func TestFinite(t *testing.T) {
	if Finite(math.NaN()) {
		t.Error("Finite(NaN) = true")
	}
	if Finite(math.Inf(1)) || Finite(math.Inf(-1)) {
		t.Error("Finite(Inf) = true")
	}
	if !Finite(0) || !Finite(-1e300) {
		t.Error("Finite rejected a normal value")
	}
}

// TestFastRandDeterminism verifies identical sequences for identical seeds
func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

// TestFastRandFloat64Range verifies Float64 stays in [0,1) and Range respects bounds
func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", f)
		}
		v := r.Range(0.02, 0.05)
		if v < 0.02 || v >= 0.05 {
			t.Fatalf("Range(0.02,0.05) = %v out of bounds", v)
		}
	}
}

// TestFastRandZeroSeed verifies the zero seed is remapped and still generates
func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed produced zero state")
	}
}
