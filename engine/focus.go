package engine

import (
	"github.com/lixenwraith/fluxfield/parameter"
	"github.com/lixenwraith/fluxfield/vmath"
)

// FocusState identifies the two focus controller states
type FocusState int

const (
	FocusIdle FocusState = iota
	FocusFocused
)

// focusController is the timer-driven two-state machine that periodically
// intensifies the output. Transitions are time-triggered, never event-triggered;
// SetFocusMode is the single external override
type focusController struct {
	state              FocusState
	intensity          float64
	targetIntensity    float64
	nextTransitionTime float64
}

// init starts Idle with a first dwell already scheduled
func (f *focusController) init(now float64, rng *vmath.FastRand) {
	f.state = FocusIdle
	f.intensity = 0
	f.targetIntensity = 0
	f.nextTransitionTime = now + rng.Range(parameter.IdleDwellMin, parameter.IdleDwellMax)
}

// update flips state on schedule and eases intensity toward its target with
// asymmetric rates (fast attack into Focused, slow release back to Idle)
func (f *focusController) update(now, dt float64, rng *vmath.FastRand) {
	if now >= f.nextTransitionTime {
		if f.state == FocusIdle {
			f.state = FocusFocused
			f.targetIntensity = rng.Range(parameter.FocusTargetIntensityMin, parameter.FocusTargetIntensityMax)
			f.nextTransitionTime = now + rng.Range(parameter.FocusDwellMin, parameter.FocusDwellMax)
		} else {
			f.state = FocusIdle
			f.targetIntensity = 0
			f.nextTransitionTime = now + rng.Range(parameter.IdleDwellMin, parameter.IdleDwellMax)
		}
	}

	rate := parameter.FocusReleaseRate
	if f.targetIntensity > f.intensity {
		rate = parameter.FocusAttackRate
	}
	step := vmath.Clamp01(rate * dt)
	f.intensity = vmath.Clamp01(vmath.Lerp(f.intensity, f.targetIntensity, step))
}

// set applies the external override: force a state and target intensity and
// reschedule the next autonomous transition from now
func (f *focusController) set(now float64, active bool, intensity float64, rng *vmath.FastRand) {
	if !vmath.Finite(intensity) {
		return
	}
	if active {
		f.state = FocusFocused
		f.targetIntensity = vmath.Clamp(intensity, parameter.FocusTargetIntensityMin, parameter.FocusTargetIntensityMax)
		f.nextTransitionTime = now + rng.Range(parameter.FocusDwellMin, parameter.FocusDwellMax)
	} else {
		f.state = FocusIdle
		f.targetIntensity = 0
		f.nextTransitionTime = now + rng.Range(parameter.IdleDwellMin, parameter.IdleDwellMax)
	}
}

// SetFocusMode forces focus on (with the given target intensity) or off
// The controller resumes its autonomous schedule after the forced dwell
func (e *Engine) SetFocusMode(active bool, intensity float64) {
	e.focus.set(e.time, active, intensity, e.rng)
}

// FocusIntensity returns the current focus intensity in [0,1]
func (e *Engine) FocusIntensity() float64 {
	return e.focus.intensity
}

// FocusActive reports whether the controller is in the Focused state
func (e *Engine) FocusActive() bool {
	return e.focus.state == FocusFocused
}
