package engine

import (
	"fmt"

	"github.com/lixenwraith/fluxfield/parameter"
	"github.com/lixenwraith/fluxfield/vmath"
)

// Connection is a directed weighted edge: source's displacement from 0.5
// nudges target's target value
type Connection struct {
	Source   parameter.Dim
	Target   parameter.Dim
	Strength float64
}

// curatedConnections is the fixed domain wiring, established once at
// construction and immutable afterwards
var curatedConnections = []Connection{
	// Energy feeds motion
	{parameter.DimEnergy, parameter.DimDisplacementStrength, 0.12},
	{parameter.DimEnergy, parameter.DimWaveAmplitude, 0.10},
	{parameter.DimEnergy, parameter.DimParticleSpeed, 0.08},
	{parameter.DimEnergy, parameter.DimFlowSpeed, 0.08},

	// Intensity brightens and blooms
	{parameter.DimIntensity, parameter.DimBrightness, 0.10},
	{parameter.DimIntensity, parameter.DimBloom, 0.12},
	{parameter.DimIntensity, parameter.DimEdgeGlow, 0.08},
	{parameter.DimIntensity, parameter.DimDroneLowVolume, 0.06},

	// Calm pulls the opposite way
	{parameter.DimCalm, parameter.DimTurbulence, -0.12},
	{parameter.DimCalm, parameter.DimGrain, -0.08},
	{parameter.DimCalm, parameter.DimDisplacementSpeed, -0.10},
	{parameter.DimCalm, parameter.DimReverbAmount, 0.09},

	// Color chases itself around the wheel
	{parameter.DimHueBase, parameter.DimHueSecondary, 0.08},
	{parameter.DimHueSecondary, parameter.DimHueAccent, 0.06},
	{parameter.DimHueShift, parameter.DimPaletteDrift, 0.07},

	// Waves ripple outward
	{parameter.DimWaveAmplitude, parameter.DimRippleStrength, 0.10},
	{parameter.DimWaveSpeed, parameter.DimRippleSpeed, 0.08},
	{parameter.DimTurbulence, parameter.DimNoiseScale, 0.09},
	{parameter.DimTurbulence, parameter.DimChromaticAberration, 0.06},

	// Displacement couples into depth and feedback
	{parameter.DimDisplacementStrength, parameter.DimFeedbackAmount, 0.07},
	{parameter.DimDisplacementRadius, parameter.DimVignette, -0.05},

	// Audio cross-wiring
	{parameter.DimDroneLowVolume, parameter.DimSubBassAmount, 0.10},
	{parameter.DimDroneHighVolume, parameter.DimShimmerAmount, 0.09},
	{parameter.DimFilterCutoff, parameter.DimDroneHighVolume, 0.06},
	{parameter.DimTremoloDepth, parameter.DimWaveAmplitude, 0.05},
}

// validateConnections rejects malformed curated tables at construction
func validateConnections(conns []Connection) error {
	for n, c := range conns {
		if c.Source < 0 || c.Source >= parameter.DimCount {
			return fmt.Errorf("connection %d: source index %d out of range", n, c.Source)
		}
		if c.Target < 0 || c.Target >= parameter.DimCount {
			return fmt.Errorf("connection %d: target index %d out of range", n, c.Target)
		}
		if c.Source == c.Target {
			return fmt.Errorf("connection %d: self-loop on index %d", n, c.Source)
		}
		if !vmath.Finite(c.Strength) {
			return fmt.Errorf("connection %d: non-finite strength", n)
		}
	}
	return nil
}

// buildConnections assembles the curated set plus seeded weak random extras
func buildConnections(rng *vmath.FastRand, randomCount int) ([]Connection, error) {
	if err := validateConnections(curatedConnections); err != nil {
		return nil, err
	}

	conns := make([]Connection, len(curatedConnections), len(curatedConnections)+randomCount)
	copy(conns, curatedConnections)

	for n := 0; n < randomCount; n++ {
		src := parameter.Dim(rng.Intn(int(parameter.DimCount)))
		dst := parameter.Dim(rng.Intn(int(parameter.DimCount)))
		if src == dst {
			dst = (dst + 1) % parameter.DimCount
		}
		strength := rng.Range(parameter.RandomConnectionStrengthMin, parameter.RandomConnectionStrengthMax)
		if rng.Intn(2) == 0 {
			strength = -strength
		}
		conns = append(conns, Connection{Source: src, Target: dst, Strength: strength})
	}

	return conns, nil
}

// propagateConnections accumulates all edge deltas into a scratch buffer and
// applies the sum afterwards, so no edge reads another edge's delta within a
// tick and evaluation order never matters
func (e *Engine) propagateConnections(dt float64) {
	for i := range e.connScratch {
		e.connScratch[i] = 0
	}
	for _, c := range e.connections {
		delta := (e.dims[c.Source].current - 0.5) * c.Strength * dt * parameter.ConnectionRate
		e.connScratch[c.Target] += delta
	}
	for i := range e.dims {
		e.dims[i].target += e.connScratch[i]
	}
}
