package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/fluxfield/parameter"
	"github.com/lixenwraith/fluxfield/vmath"
)

// Engine is the parameter simulation core: a 64-slot continuous state vector
// evolving under autonomous drift, a sparse connection graph, injected
// stimuli, a velocity-capped smoother, focus mode, and pendulum oscillators.
//
// Single-threaded by contract: the host loop calls Update once per frame and
// Update is not reentrant. Stimulus handlers only add to the influence
// accumulator, so any number of calls between ticks commute; for genuinely
// concurrent producers use events.StimulusQueue and drain it before Update.
// SetDimensionValue/LockDimension/UnlockDimension are single-writer (UI)
// operations and must not race with Update.
type Engine struct {
	dims        [parameter.DimCount]dimension
	connections []Connection
	connScratch [parameter.DimCount]float64
	keyTable    map[rune][]influenceEntry
	pendulums   [parameter.PendulumAxisCount]pendulumAxis
	focus       focusController
	locked      [parameter.DimCount]bool
	lockValue   [parameter.DimCount]float64
	rng         *vmath.FastRand
	time        float64
}

// New constructs an engine; all tables (dimensions, connections, key fan-out,
// pendulum axes) are built here and immutable afterwards. A malformed curated
// connection table is a construction failure, never a silent degrade
func New(cfg Config) (*Engine, error) {
	e := &Engine{
		rng: vmath.NewFastRand(cfg.Seed),
	}

	initDimensions(&e.dims, e.rng)

	conns, err := buildConnections(e.rng, cfg.randomConnectionCount(parameter.RandomConnectionCount))
	if err != nil {
		return nil, fmt.Errorf("connection graph: %w", err)
	}
	e.connections = conns

	e.keyTable = buildKeyTable(e.rng)
	initPendulums(&e.pendulums, e.rng)
	e.focus.init(0, e.rng)

	return e, nil
}

// Update advances the simulation by dt seconds
// Order per frame: pendulums, focus, drift, connections, influence apply,
// smoother, commit (clamp/wrap/locks), influence decay
func (e *Engine) Update(dt float64) {
	if !vmath.Finite(dt) || dt <= 0 {
		return
	}
	e.time += dt

	frameScale := dt * parameter.TickRate
	moveScale := math.Min(frameScale, parameter.MaxFrameScale)

	e.updatePendulums(frameScale)
	e.focus.update(e.time, dt, e.rng)
	e.applyDrift(dt)
	e.propagateConnections(dt)
	e.applyInfluence(dt)
	e.smooth(moveScale)
	e.commitAll()
	e.decayInfluence(frameScale)
}

// smooth runs the velocity-capped critically-damped integrator
// The velocity clamp is the engine's defining invariant: no dimension can
// move more than MaxVelocity in one nominal frame, however large the drift
// or influence push was
func (e *Engine) smooth(moveScale float64) {
	for i := range e.dims {
		d := &e.dims[i]
		diff := d.target - d.current
		if parameter.Dim(i) < parameter.HueDimCount {
			// Shortest way around the hue wheel
			diff -= math.Round(diff)
		}
		accel := (1 - d.smoothing) * parameter.AccelScale
		d.velocity = d.velocity*parameter.VelocityMomentum + diff*accel
		d.velocity = vmath.Clamp(d.velocity, -parameter.MaxVelocity, parameter.MaxVelocity)
		d.current += d.velocity * moveScale
	}
}

// commitAll applies range rules and lock pins, and keeps targets from
// walking far outside the valid range
func (e *Engine) commitAll() {
	for i := range e.dims {
		d := &e.dims[i]
		di := parameter.Dim(i)
		d.current = commit(di, d.current)
		if di < parameter.HueDimCount {
			d.target = vmath.Wrap01(d.target)
		} else {
			d.target = vmath.Clamp(d.target, -0.25, 1.25)
		}
		if e.locked[i] {
			d.current = e.lockValue[i]
		}
	}
}

// Time returns accumulated simulation time in seconds
func (e *Engine) Time() float64 {
	return e.time
}
