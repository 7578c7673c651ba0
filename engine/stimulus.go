package engine

import (
	"math"

	"github.com/lixenwraith/fluxfield/parameter"
	"github.com/lixenwraith/fluxfield/vmath"
)

// Stimuli never write dimension state directly: every handler only adds into
// the influence accumulator, which the next Update folds into targets and the
// smoother rate-limits. Call order between ticks is therefore commutative.

// Gesture carries one pinch/rotate/swipe sample from the gesture collaborator
type Gesture struct {
	PinchScale float64 // 1.0 = neutral
	Rotation   float64 // radians, signed
	SwipeVX    float64 // normalized velocity, signed
	SwipeVY    float64
}

// FaceFeatures carries one frame of face landmarks, already smoothed and
// decayed by the tracking collaborator before injection
type FaceFeatures struct {
	Yaw        float64 // signed, ~[-1,1]
	Pitch      float64
	Roll       float64
	EyeOpen    float64 // [0,1]
	GazeX      float64 // signed, ~[-1,1]
	GazeY      float64
	MouthOpen  float64 // [0,1]
	MouthWidth float64 // [0,1]
	BrowRaise  float64 // [0,1]
	BrowFurrow float64 // [0,1]
	Engagement float64 // [0,1]
}

// influenceEntry is one (dimension, weight) pair in a key's fan-out
type influenceEntry struct {
	dim    parameter.Dim
	weight float64
}

// keyStimulusRunes is the closed key set; the fan-out table is generated once
// at construction from the seeded RNG and never regenerated
const keyStimulusRunes = "abcdefghijklmnopqrstuvwxyz0123456789"

// buildKeyTable assigns each key 5-13 dimensions with small signed weights
func buildKeyTable(rng *vmath.FastRand) map[rune][]influenceEntry {
	table := make(map[rune][]influenceEntry, len(keyStimulusRunes))
	for _, r := range keyStimulusRunes {
		fanOut := parameter.KeyFanOutMin + rng.Intn(parameter.KeyFanOutMax-parameter.KeyFanOutMin+1)
		entries := make([]influenceEntry, 0, fanOut)
		for n := 0; n < fanOut; n++ {
			w := rng.Range(parameter.KeyWeightMin, parameter.KeyWeightMax)
			if rng.Intn(2) == 0 {
				w = -w
			}
			entries = append(entries, influenceEntry{
				dim:    parameter.Dim(rng.Intn(int(parameter.DimCount))),
				weight: w,
			})
		}
		table[r] = entries
	}
	return table
}

// addInfluence accumulates one perturbation, dropping non-finite input and
// capping the accumulator so stacked stimuli stay bounded
func (e *Engine) addInfluence(i parameter.Dim, amount float64) {
	if !vmath.Finite(amount) {
		return
	}
	e.dims[i].influence = vmath.Clamp(e.dims[i].influence+amount,
		-parameter.InfluenceCap, parameter.InfluenceCap)
}

// applyInfluence folds accumulated influence into targets at a dt-scaled rate
func (e *Engine) applyInfluence(dt float64) {
	for i := range e.dims {
		e.dims[i].target += e.dims[i].influence * parameter.InfluenceApplyRate * dt
	}
}

// decayInfluence relaxes every accumulator geometrically toward zero,
// frame-rate independent, regardless of external activity
func (e *Engine) decayInfluence(frameScale float64) {
	decay := math.Pow(parameter.InfluenceDecay, frameScale)
	for i := range e.dims {
		e.dims[i].influence *= decay
	}
}

// --- Injection Handlers ---

// HandleKeyPress fans a key press out over its fixed dimension set
// Keys outside the closed table are ignored
func (e *Engine) HandleKeyPress(key string) {
	if key == "" {
		return
	}
	r := []rune(key)[0]
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for _, entry := range e.keyTable[r] {
		e.addInfluence(entry.dim, entry.weight)
	}
}

// HandleMouseMove nudges displacement center and a couple of color slots
// Coordinates are normalized [0,1]; out-of-range samples are dropped
func (e *Engine) HandleMouseMove(x, y float64) {
	if !vmath.Finite(x) || !vmath.Finite(y) || x < 0 || x > 1 || y < 0 || y > 1 {
		return
	}
	e.addInfluence(parameter.DimDisplacementX, (x-0.5)*parameter.PointerDisplacementWeight)
	e.addInfluence(parameter.DimDisplacementY, (y-0.5)*parameter.PointerDisplacementWeight)
	e.addInfluence(parameter.DimHueShift, (x-0.5)*parameter.PointerHueWeight)
	e.addInfluence(parameter.DimGradientOffsetX, (x-0.5)*parameter.PointerGradientWeight)
	e.addInfluence(parameter.DimGradientOffsetY, (y-0.5)*parameter.PointerGradientWeight)
}

// HandleGestureInput maps pinch into radius/strength, rotation into rotation,
// and swipe into offset/hue, proportional to gesture magnitude
func (e *Engine) HandleGestureInput(g Gesture) {
	if vmath.Finite(g.PinchScale) && g.PinchScale > 0 {
		pinch := vmath.Clamp(g.PinchScale-1, -1, 1)
		e.addInfluence(parameter.DimDisplacementRadius, pinch*parameter.GesturePinchRadiusWeight)
		e.addInfluence(parameter.DimDisplacementStrength, pinch*parameter.GesturePinchStrengthWeight)
	}
	if vmath.Finite(g.Rotation) {
		rot := vmath.Clamp(g.Rotation, -1, 1)
		e.addInfluence(parameter.DimRotation, rot*parameter.GestureRotationWeight)
	}
	if vmath.Finite(g.SwipeVX) && vmath.Finite(g.SwipeVY) {
		vx := vmath.Clamp(g.SwipeVX, -1, 1)
		vy := vmath.Clamp(g.SwipeVY, -1, 1)
		e.addInfluence(parameter.DimGradientOffsetX, vx*parameter.GestureSwipeOffsetWeight)
		e.addInfluence(parameter.DimGradientOffsetY, vy*parameter.GestureSwipeOffsetWeight)
		e.addInfluence(parameter.DimHueBase, (vx+vy)*parameter.GestureSwipeHueWeight)
	}
}

// HandleAudioInput nudges intensity plus the band-facing drone and filter slots
// Bands are [0,1]; out-of-range samples are clamped at the boundary
func (e *Engine) HandleAudioInput(volume, bass, mid, treble float64) {
	if !vmath.Finite(volume) || !vmath.Finite(bass) || !vmath.Finite(mid) || !vmath.Finite(treble) {
		return
	}
	volume = vmath.Clamp01(volume)
	bass = vmath.Clamp01(bass)
	mid = vmath.Clamp01(mid)
	treble = vmath.Clamp01(treble)

	e.addInfluence(parameter.DimIntensity, volume*parameter.AudioVolumeIntensityWeight)
	e.addInfluence(parameter.DimEnergy, volume*parameter.AudioVolumeIntensityWeight*0.5)
	e.addInfluence(parameter.DimDroneLowVolume, bass*parameter.AudioBassWeight)
	e.addInfluence(parameter.DimSubBassAmount, bass*parameter.AudioBassWeight*0.6)
	e.addInfluence(parameter.DimDroneMidVolume, mid*parameter.AudioMidWeight)
	e.addInfluence(parameter.DimWaveAmplitude, mid*parameter.AudioMidWeight*0.5)
	e.addInfluence(parameter.DimDroneHighVolume, treble*parameter.AudioTrebleWeight)
	e.addInfluence(parameter.DimShimmerAmount, treble*parameter.AudioTrebleWeight*0.6)
	e.addInfluence(parameter.DimFilterCutoff, (treble-bass)*parameter.AudioFilterWeight)
}

// HandleFaceFeatures fans face data out over a broad fixed dimension set
func (e *Engine) HandleFaceFeatures(f FaceFeatures) {
	yaw := signedSample(f.Yaw)
	pitch := signedSample(f.Pitch)
	roll := signedSample(f.Roll)
	gx := signedSample(f.GazeX)
	gy := signedSample(f.GazeY)
	eye := unitSample(f.EyeOpen)
	mouthOpen := unitSample(f.MouthOpen)
	mouthWidth := unitSample(f.MouthWidth)
	browRaise := unitSample(f.BrowRaise)
	browFurrow := unitSample(f.BrowFurrow)
	engagement := unitSample(f.Engagement)

	// Head pose steers displacement, rotation, and gradient
	e.addInfluence(parameter.DimDisplacementX, yaw*parameter.FaceYawWeight)
	e.addInfluence(parameter.DimGradientOffsetX, yaw*parameter.FaceYawWeight*0.6)
	e.addInfluence(parameter.DimHueShift, yaw*parameter.FaceYawWeight*0.3)
	e.addInfluence(parameter.DimDisplacementY, pitch*parameter.FacePitchWeight)
	e.addInfluence(parameter.DimGradientOffsetY, pitch*parameter.FacePitchWeight*0.6)
	e.addInfluence(parameter.DimZoom, pitch*parameter.FacePitchWeight*0.4)
	e.addInfluence(parameter.DimRotation, roll*parameter.FaceRollWeight)
	e.addInfluence(parameter.DimGradientAngle, roll*parameter.FaceRollWeight*0.7)

	// Eyes and gaze
	e.addInfluence(parameter.DimBrightness, (eye-0.5)*parameter.FaceEyeWeight)
	e.addInfluence(parameter.DimBloom, (eye-0.5)*parameter.FaceEyeWeight*0.6)
	e.addInfluence(parameter.DimVignette, (0.5-eye)*parameter.FaceEyeWeight*0.5)
	e.addInfluence(parameter.DimDisplacementX, gx*parameter.FaceGazeWeight)
	e.addInfluence(parameter.DimDisplacementY, gy*parameter.FaceGazeWeight)

	// Mouth drives waves and the mid drone
	e.addInfluence(parameter.DimWaveAmplitude, mouthOpen*parameter.FaceMouthOpenWeight)
	e.addInfluence(parameter.DimDroneMidVolume, mouthOpen*parameter.FaceMouthOpenWeight*0.7)
	e.addInfluence(parameter.DimRippleStrength, mouthOpen*parameter.FaceMouthOpenWeight*0.5)
	e.addInfluence(parameter.DimColorBlend, (mouthWidth-0.5)*parameter.FaceMouthWidthWeight)
	e.addInfluence(parameter.DimSaturation, (mouthWidth-0.5)*parameter.FaceMouthWidthWeight*0.6)

	// Brows shade contrast and turbulence
	e.addInfluence(parameter.DimContrast, browRaise*parameter.FaceBrowWeight)
	e.addInfluence(parameter.DimEdgeGlow, browRaise*parameter.FaceBrowWeight*0.5)
	e.addInfluence(parameter.DimTurbulence, browFurrow*parameter.FaceBrowWeight)
	e.addInfluence(parameter.DimGrain, browFurrow*parameter.FaceBrowWeight*0.4)

	// Engagement lifts the whole field
	e.addInfluence(parameter.DimIntensity, engagement*parameter.FaceEngagementWeight)
	e.addInfluence(parameter.DimEnergy, engagement*parameter.FaceEngagementWeight*0.8)
	e.addInfluence(parameter.DimCalm, -engagement*parameter.FaceEngagementWeight*0.5)
	e.addInfluence(parameter.DimParticleDensity, engagement*parameter.FaceEngagementWeight*0.6)
}

// HandleBlink injects a short ripple pulse
func (e *Engine) HandleBlink() {
	e.addInfluence(parameter.DimRippleStrength, parameter.BlinkRippleWeight)
	e.addInfluence(parameter.DimBloom, parameter.BlinkBloomWeight)
}

// HandleTalking nudges wave and drone slots while speech is active
func (e *Engine) HandleTalking(active bool) {
	if !active {
		return
	}
	e.addInfluence(parameter.DimWaveAmplitude, parameter.TalkingWaveWeight)
	e.addInfluence(parameter.DimDroneMidVolume, parameter.TalkingDroneWeight)
	e.addInfluence(parameter.DimTremoloDepth, parameter.TalkingDroneWeight*0.5)
}

// HandleMotion maps device tilt and shake into displacement and turbulence
func (e *Engine) HandleMotion(tiltX, tiltY, shake float64) {
	if vmath.Finite(tiltX) {
		e.addInfluence(parameter.DimDisplacementX, vmath.Clamp(tiltX, -1, 1)*parameter.MotionTiltWeight)
	}
	if vmath.Finite(tiltY) {
		e.addInfluence(parameter.DimDisplacementY, vmath.Clamp(tiltY, -1, 1)*parameter.MotionTiltWeight)
	}
	if vmath.Finite(shake) && shake > 0 {
		s := vmath.Clamp01(shake)
		e.addInfluence(parameter.DimTurbulence, s*parameter.MotionShakeWeight)
		e.addInfluence(parameter.DimGrain, s*parameter.MotionShakeWeight*0.5)
		e.addInfluence(parameter.DimEnergy, s*parameter.MotionShakeWeight*0.6)
	}
}

// signedSample sanitizes a nominally [-1,1] input, dropping non-finite values
func signedSample(v float64) float64 {
	if !vmath.Finite(v) {
		return 0
	}
	return vmath.Clamp(v, -1, 1)
}

// unitSample sanitizes a nominally [0,1] input
func unitSample(v float64) float64 {
	if !vmath.Finite(v) {
		return 0
	}
	return vmath.Clamp01(v)
}
