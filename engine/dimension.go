package engine

import (
	"github.com/lixenwraith/fluxfield/parameter"
	"github.com/lixenwraith/fluxfield/vmath"
)

// dimension is one slot of the state vector
// current/target/velocity/influence evolve every tick; smoothing/driftSpeed/
// driftScale are fixed at construction
type dimension struct {
	current    float64
	target     float64
	velocity   float64
	influence  float64
	smoothing  float64
	driftSpeed float64
	driftScale float64
}

// initDimensions fills per-slot constants and neutral starting values
func initDimensions(dims *[parameter.DimCount]dimension, rng *vmath.FastRand) {
	for i := range dims {
		d := &dims[i]
		d.current = 0.5
		d.target = 0.5
		d.smoothing = rng.Range(parameter.SmoothingMin, parameter.SmoothingMax)
		d.driftSpeed = rng.Range(parameter.DriftSpeedMin, parameter.DriftSpeedMax)
		d.driftScale = rng.Range(parameter.DriftScaleMin, parameter.DriftScaleMax)
	}
	// Hue slots start spread around the wheel instead of stacked on 0.5
	for i := 0; i < parameter.HueDimCount; i++ {
		dims[i].current = vmath.Wrap01(float64(i) * 0.27)
		dims[i].target = dims[i].current
	}
}

// commit applies the per-slot range rule: hue slots wrap, everything else clamps
func commit(i parameter.Dim, v float64) float64 {
	if i < parameter.HueDimCount {
		return vmath.Wrap01(v)
	}
	return vmath.Clamp01(v)
}

// Get returns the committed value of a named dimension
// Unknown names read as 0: the caller set is generated from the closed name
// table, so a miss is a programming error caught by tests, not a runtime fault
func (e *Engine) Get(name string) float64 {
	i := parameter.DimIndex(name)
	if i < 0 {
		return 0
	}
	return e.dims[i].current
}

// GetScaled maps a dimension read onto [min,max]
func (e *Engine) GetScaled(name string, min, max float64) float64 {
	return min + e.Get(name)*(max-min)
}

// SetDimensionValue writes current and target together, bypassing the
// smoother; this is the preset path
func (e *Engine) SetDimensionValue(name string, value float64) {
	i := parameter.DimIndex(name)
	if i < 0 || !vmath.Finite(value) {
		return
	}
	v := commit(i, value)
	e.dims[i].current = v
	e.dims[i].target = v
	e.dims[i].velocity = 0
}

// LockDimension pins the committed value of a dimension until unlocked
// Internal dynamics (drift, connections, influence) keep evolving underneath
func (e *Engine) LockDimension(name string, value float64) {
	i := parameter.DimIndex(name)
	if i < 0 || !vmath.Finite(value) {
		return
	}
	e.locked[i] = true
	e.lockValue[i] = commit(i, value)
	e.dims[i].current = e.lockValue[i]
}

// UnlockDimension releases a lock; the dimension resumes from the locked value
func (e *Engine) UnlockDimension(name string) {
	i := parameter.DimIndex(name)
	if i < 0 {
		return
	}
	e.locked[i] = false
	e.dims[i].velocity = 0
}

// value reads a slot by index on the hot path (no string hashing)
func (e *Engine) value(i parameter.Dim) float64 {
	return e.dims[i].current
}

// scaled maps an indexed read onto [min,max]
func (e *Engine) scaled(i parameter.Dim, min, max float64) float64 {
	return min + e.dims[i].current*(max-min)
}
