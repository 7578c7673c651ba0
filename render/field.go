package render

import (
	"math"

	"github.com/lixenwraith/fluxfield/engine"
)

// Cell aspect correction: terminal cells are roughly twice as tall as wide
const aspectRatio = 2.1

// shadeRamp orders glyphs by visual weight for the intensity pass
var shadeRamp = []rune(" .:-=+*#%@")

// CellSample is one evaluated point of the field: scalar intensity plus the
// hue selected for it
type CellSample struct {
	Value float64 // [0,1] after tone mapping
	Hue   float64 // [0,1) around the wheel
}

// Sample evaluates the field at normalized coordinates (x,y in [0,1])
// Pure function of the snapshot, so the drawing loop and the tests share it
func Sample(x, y float64, v engine.VisualSnapshot) CellSample {
	// Displacement warp bends space toward the center
	dx := (x - v.DisplacementX) * aspectRatio
	dy := y - v.DisplacementY
	dist := math.Hypot(dx, dy)

	warp := v.DisplacementStrength * math.Exp(-dist/(v.DisplacementRadius+0.05))
	wx := x + dx*warp
	wy := y + dy*warp

	// Base interference pattern
	t := v.Time
	freq := v.WaveFrequency
	val := math.Sin(wx*freq*math.Pi+t*v.WaveSpeed*2)*0.5 +
		math.Sin(wy*freq*math.Pi*0.8-t*v.WaveSpeed*1.3)*0.3 +
		math.Sin((wx+wy)*freq*math.Pi*0.5+t*v.FlowSpeed)*0.2

	// Secondary ripples from the orbital origins
	val += ripple(x, y, v.Ripple1X, v.Ripple1Y, v, t)
	val += ripple(x, y, v.Ripple2X, v.Ripple2Y, v, t*0.8)

	val = val*v.WaveAmplitude*0.5 + 0.5

	// Focus vignette pulls the edges down as intensity rises
	edge := math.Hypot((x-0.5)*aspectRatio, y-0.5)
	val -= edge * (v.Vignette*0.4 + v.FocusIntensity*0.2)

	val = val*v.Contrast + (val-0.5)*(1-v.Contrast)*0.5 + 0.5*(v.Brightness-0.5)

	if val < 0 {
		val = 0
	} else if val > 1 {
		val = 1
	}

	// Blend between base and secondary hue by field value
	hue := v.HueBase
	if val > 0.66 {
		hue = v.HueAccent
	} else if val > 0.45 {
		hue = v.HueSecondary
	}
	hue += v.HueShift * 0.15 * math.Sin(wx*3+wy*2)
	hue -= math.Floor(hue)

	return CellSample{Value: val, Hue: hue}
}

// ripple adds a ring wave emanating from an orbital origin
func ripple(x, y, ox, oy float64, v engine.VisualSnapshot, t float64) float64 {
	d := math.Hypot((x-ox)*aspectRatio, y-oy)
	return math.Sin(d*v.RippleDensity*40-t*v.RippleSpeed*4) *
		v.RippleStrength * 0.3 * math.Exp(-d*2.5)
}

// ShadeRune maps an intensity to its glyph
func ShadeRune(val float64) rune {
	idx := int(val * float64(len(shadeRamp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(shadeRamp) {
		idx = len(shadeRamp) - 1
	}
	return shadeRamp[idx]
}
