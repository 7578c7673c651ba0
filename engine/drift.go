package engine

import "math"

// applyDrift moves every target with a fixed-frequency multi-sine field:
// continuous, bounded in [-1,1], and deterministic given time and index.
// The three incommensurate frequencies approximate smooth value noise
// without a lookup table
func (e *Engine) applyDrift(dt float64) {
	for i := range e.dims {
		d := &e.dims[i]
		noiseTime := e.time * d.driftSpeed
		fi := float64(i)
		drift := math.Sin(noiseTime+fi*100)*0.5 +
			math.Sin(noiseTime*1.7+fi*30)*0.3 +
			math.Sin(noiseTime*0.4+fi*70)*0.2
		d.target += drift * d.driftScale * dt
	}
}
