package engine

import (
	"math"

	"github.com/lixenwraith/fluxfield/parameter"
	"github.com/lixenwraith/fluxfield/vmath"
)

// pendulumAxis is one weakly damped harmonic oscillator, continuously forced
// by a tiny sine field plus stochastic jitter so it never comes to rest
type pendulumAxis struct {
	angle           float64
	angularVelocity float64
	target          float64
	forcingPhase    float64 // fixed per axis, decorrelates the four axes
	forcingRate     float64
}

// pendulum axis order: x, y, rotation, scale
// Their swing feeds the gradient-offset and rotation/zoom targets
var pendulumTargets = [parameter.PendulumAxisCount]parameter.Dim{
	parameter.DimGradientOffsetX,
	parameter.DimGradientOffsetY,
	parameter.DimRotation,
	parameter.DimZoom,
}

// initPendulums gives each axis a distinct phase and forcing rate
func initPendulums(axes *[parameter.PendulumAxisCount]pendulumAxis, rng *vmath.FastRand) {
	for i := range axes {
		axes[i].angle = rng.Range(-math.Pi, math.Pi)
		axes[i].target = 0.5
		axes[i].forcingPhase = rng.Range(0, 2*math.Pi)
		axes[i].forcingRate = rng.Range(0.05, 0.22)
	}
}

// updatePendulums integrates each axis and blends its swing into the paired
// dimension target; this keeps the system perpetually, gently moving even
// with zero drift and zero external input
func (e *Engine) updatePendulums(frameScale float64) {
	damping := math.Pow(parameter.PendulumDamping, frameScale)
	blend := vmath.Clamp01(parameter.PendulumBlend * frameScale)

	for i := range e.pendulums {
		p := &e.pendulums[i]

		forcing := (math.Sin(e.time*p.forcingRate+p.forcingPhase)*0.6 +
			math.Sin(e.time*p.forcingRate*2.3+p.angle)*0.4) * parameter.PendulumForcingScale
		forcing += (e.rng.Float64()*2 - 1) * parameter.PendulumJitterScale

		spring := (p.target - 0.5 - math.Sin(p.angle)*0.3) * parameter.PendulumStiffness

		p.angularVelocity += (forcing + spring) * frameScale
		p.angularVelocity *= damping
		p.angle += p.angularVelocity * frameScale

		swing := 0.5 + math.Sin(p.angle)*parameter.PendulumSwing
		d := &e.dims[pendulumTargets[i]]
		d.target = vmath.Lerp(d.target, swing, blend)
	}
}
