package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/fluxfield/parameter"
)

// TestKeyPressAddsInfluence verifies a mapped key perturbs exactly its
// fan-out set and nothing else
func TestKeyPressAddsInfluence(t *testing.T) {
	e := newTestEngine(t, 61)
	e.HandleKeyPress("q")

	affected := make(map[parameter.Dim]bool)
	for _, entry := range e.keyTable['q'] {
		affected[entry.dim] = true
	}

	touched := 0
	for d := range e.dims {
		inf := e.dims[d].influence
		if affected[parameter.Dim(d)] {
			if inf == 0 {
				// Two entries of opposite sign can cancel on the same slot;
				// only flag slots no entry points at
				continue
			}
			touched++
		} else if inf != 0 {
			t.Errorf("dim %s has influence %v but is not in q's fan-out", parameter.DimNames[d], inf)
		}
	}
	if touched == 0 {
		t.Error("key press left no influence at all")
	}
}

// TestKeyPressCaseAndUnknown verifies uppercase folds to the same entry and
// unmapped keys are ignored
func TestKeyPressCaseAndUnknown(t *testing.T) {
	a := newTestEngine(t, 62)
	b := newTestEngine(t, 62)

	a.HandleKeyPress("G")
	b.HandleKeyPress("g")
	for d := range a.dims {
		if a.dims[d].influence != b.dims[d].influence {
			t.Fatalf("case folding broken on dim %s", parameter.DimNames[d])
		}
	}

	c := newTestEngine(t, 62)
	c.HandleKeyPress("!")
	c.HandleKeyPress("")
	for d := range c.dims {
		if c.dims[d].influence != 0 {
			t.Fatalf("unmapped key injected influence on dim %s", parameter.DimNames[d])
		}
	}
}

// TestStimulusCommutative verifies handler call order between ticks does not
// matter: accumulation is pure addition
func TestStimulusCommutative(t *testing.T) {
	a := newTestEngine(t, 63)
	b := newTestEngine(t, 63)

	a.HandleKeyPress("w")
	a.HandleMouseMove(0.8, 0.2)
	a.HandleAudioInput(0.5, 0.7, 0.3, 0.9)

	b.HandleAudioInput(0.5, 0.7, 0.3, 0.9)
	b.HandleKeyPress("w")
	b.HandleMouseMove(0.8, 0.2)

	for d := range a.dims {
		if math.Abs(a.dims[d].influence-b.dims[d].influence) > 1e-15 {
			t.Fatalf("dim %s influence differs by call order", parameter.DimNames[d])
		}
	}
}

// TestMalformedStimuliDropped verifies NaN and out-of-range payloads never
// reach the accumulator
func TestMalformedStimuliDropped(t *testing.T) {
	e := newTestEngine(t, 64)

	e.HandleMouseMove(math.NaN(), 0.5)
	e.HandleMouseMove(0.5, math.Inf(1))
	e.HandleMouseMove(-0.2, 0.5)
	e.HandleMouseMove(0.5, 1.7)
	e.HandleAudioInput(math.NaN(), 0, 0, 0)
	e.HandleGestureInput(Gesture{PinchScale: math.NaN(), Rotation: math.Inf(-1)})
	e.HandleMotion(math.NaN(), math.NaN(), math.NaN())
	e.HandleFaceFeatures(FaceFeatures{Yaw: math.NaN(), EyeOpen: math.Inf(1)})

	// Sanitized fields may still fan out finite influence; the requirement
	// is that nothing non-finite ever lands in the accumulator
	for d := range e.dims {
		if inf := e.dims[d].influence; math.IsNaN(inf) || math.IsInf(inf, 0) {
			t.Fatalf("dim %s accumulated non-finite influence %v", parameter.DimNames[d], inf)
		}
	}
}

// TestAudioBandsClamped verifies out-of-range bands clamp at the boundary
// rather than scaling influence arbitrarily
func TestAudioBandsClamped(t *testing.T) {
	a := newTestEngine(t, 65)
	b := newTestEngine(t, 65)

	a.HandleAudioInput(5, 5, 5, 5)
	b.HandleAudioInput(1, 1, 1, 1)

	for d := range a.dims {
		if a.dims[d].influence != b.dims[d].influence {
			t.Fatalf("dim %s: over-range bands were not clamped", parameter.DimNames[d])
		}
	}
}

// TestInfluenceCapBounds verifies stacked stimuli cannot grow the
// accumulator past the cap
func TestInfluenceCapBounds(t *testing.T) {
	e := newTestEngine(t, 66)
	for i := 0; i < 10000; i++ {
		e.HandleBlink()
	}
	for d := range e.dims {
		if math.Abs(e.dims[d].influence) > parameter.InfluenceCap+1e-12 {
			t.Fatalf("dim %s influence %v exceeds cap", parameter.DimNames[d], e.dims[d].influence)
		}
	}
}

// TestFaceFeatureFanOut verifies face data touches a broad fixed set
func TestFaceFeatureFanOut(t *testing.T) {
	e := newTestEngine(t, 67)
	e.HandleFaceFeatures(FaceFeatures{
		Yaw: 0.6, Pitch: -0.4, Roll: 0.3,
		EyeOpen: 0.9, GazeX: 0.2, GazeY: -0.1,
		MouthOpen: 0.7, MouthWidth: 0.8,
		BrowRaise: 0.6, BrowFurrow: 0.2,
		Engagement: 0.9,
	})

	touched := 0
	for d := range e.dims {
		if e.dims[d].influence != 0 {
			touched++
		}
	}
	if touched < 20 {
		t.Errorf("face fan-out touched %d dims, want >= 20", touched)
	}
}

// TestTalkingIdleIsNoOp verifies HandleTalking(false) injects nothing
func TestTalkingIdleIsNoOp(t *testing.T) {
	e := newTestEngine(t, 68)
	e.HandleTalking(false)
	for d := range e.dims {
		if e.dims[d].influence != 0 {
			t.Fatalf("talking=false injected influence on dim %s", parameter.DimNames[d])
		}
	}
}
