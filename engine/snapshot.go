package engine

import (
	"math"

	"github.com/lixenwraith/fluxfield/parameter"
)

// VisualSnapshot is the immutable per-frame view the rendering collaborator
// consumes as shader uniforms. Field names mirror the dimension table except
// where a scaled or derived value is exposed
type VisualSnapshot struct {
	Time float64

	// Color
	HueBase         float64
	HueShift        float64
	HueSecondary    float64
	HueAccent       float64
	Saturation      float64
	Brightness      float64
	Contrast        float64
	ColorBlend      float64
	GradientOffsetX float64
	GradientOffsetY float64
	GradientAngle   float64
	PaletteDrift    float64

	// Displacement (strength/radius are focus-adjusted)
	DisplacementX        float64
	DisplacementY        float64
	DisplacementStrength float64
	DisplacementRadius   float64
	DisplacementSpeed    float64
	RippleStrength       float64
	RippleSpeed          float64
	RippleDensity        float64

	// Derived orbital origins for the two secondary ripples
	Ripple1X float64
	Ripple1Y float64
	Ripple2X float64
	Ripple2Y float64

	// Shape / wave
	WaveFrequency float64 // scaled to cycles
	WaveAmplitude float64
	WaveSpeed     float64
	ShapeMorph    float64
	Symmetry      int // scaled fold count
	Rotation      float64
	RotationSpeed float64 // scaled rad/s
	Zoom          float64 // scaled
	Turbulence    float64
	FlowSpeed     float64

	// Texture / particle
	ParticleDensity float64
	ParticleSize    float64
	ParticleSpeed   float64
	TrailLength     float64 // scaled frames
	NoiseScale      float64
	NoiseSpeed      float64
	EdgeGlow        float64
	DepthFade       float64

	// Post-processing
	Bloom               float64
	Vignette            float64
	Grain               float64
	ChromaticAberration float64
	FeedbackAmount      float64
	BlurAmount          float64
	ScanlineAmount      float64
	Pixelation          float64

	FocusIntensity float64
}

// AudioSnapshot is the immutable per-frame view the audio collaborator
// consumes as synthesis parameters
type AudioSnapshot struct {
	DroneLowVolume  float64
	DroneLowPitch   float64 // Hz
	DroneMidVolume  float64
	DroneMidPitch   float64 // Hz
	DroneHighVolume float64
	DroneHighPitch  float64 // Hz
	FilterCutoff    float64 // Hz
	FilterResonance float64
	ReverbAmount    float64
	DelayAmount     float64
	DelayFeedback   float64
	TremoloDepth    float64
	TremoloRate     float64 // Hz
	SubBassAmount   float64
	ShimmerAmount   float64
	MasterLevel     float64
}

// VisualState projects current dimension values into a visual snapshot
// Pure read: repeated calls between ticks return identical structures
func (e *Engine) VisualState() VisualSnapshot {
	focus := e.focus.intensity
	boost := 1 + focus*parameter.FocusDisplacementBoost

	cx := e.value(parameter.DimDisplacementX)
	cy := e.value(parameter.DimDisplacementY)
	radius := e.value(parameter.DimDisplacementRadius) * boost
	orbitR := radius * parameter.OrbitalRadiusScale

	a1 := e.time*parameter.OrbitalBaseSpeed + parameter.OrbitalPhaseStep
	a2 := e.time*parameter.OrbitalBaseSpeed/2 + 2*parameter.OrbitalPhaseStep

	return VisualSnapshot{
		Time: e.time,

		HueBase:         e.value(parameter.DimHueBase),
		HueShift:        e.value(parameter.DimHueShift),
		HueSecondary:    e.value(parameter.DimHueSecondary),
		HueAccent:       e.value(parameter.DimHueAccent),
		Saturation:      e.value(parameter.DimSaturation),
		Brightness:      e.value(parameter.DimBrightness),
		Contrast:        e.value(parameter.DimContrast),
		ColorBlend:      e.value(parameter.DimColorBlend),
		GradientOffsetX: e.value(parameter.DimGradientOffsetX),
		GradientOffsetY: e.value(parameter.DimGradientOffsetY),
		GradientAngle:   e.value(parameter.DimGradientAngle),
		PaletteDrift:    e.value(parameter.DimPaletteDrift),

		DisplacementX:        cx,
		DisplacementY:        cy,
		DisplacementStrength: e.value(parameter.DimDisplacementStrength) * boost,
		DisplacementRadius:   radius,
		DisplacementSpeed:    e.value(parameter.DimDisplacementSpeed),
		RippleStrength:       e.value(parameter.DimRippleStrength),
		RippleSpeed:          e.value(parameter.DimRippleSpeed),
		RippleDensity:        e.value(parameter.DimRippleDensity),

		Ripple1X: cx + math.Cos(a1)*orbitR,
		Ripple1Y: cy + math.Sin(a1)*orbitR,
		Ripple2X: cx + math.Cos(a2)*orbitR,
		Ripple2Y: cy + math.Sin(a2)*orbitR,

		WaveFrequency: e.scaled(parameter.DimWaveFrequency, parameter.WaveFrequencyMin, parameter.WaveFrequencyMax),
		WaveAmplitude: e.value(parameter.DimWaveAmplitude),
		WaveSpeed:     e.value(parameter.DimWaveSpeed),
		ShapeMorph:    e.value(parameter.DimShapeMorph),
		Symmetry: parameter.SymmetryMin + int(math.Round(
			e.value(parameter.DimSymmetry)*float64(parameter.SymmetryMax-parameter.SymmetryMin))),
		Rotation:      e.value(parameter.DimRotation),
		RotationSpeed: e.value(parameter.DimRotationSpeed) * parameter.RotationSpeedMax,
		Zoom:          e.scaled(parameter.DimZoom, parameter.ZoomMin, parameter.ZoomMax),
		Turbulence:    e.value(parameter.DimTurbulence),
		FlowSpeed:     e.value(parameter.DimFlowSpeed),

		ParticleDensity: e.value(parameter.DimParticleDensity),
		ParticleSize:    e.value(parameter.DimParticleSize),
		ParticleSpeed:   e.value(parameter.DimParticleSpeed),
		TrailLength:     e.value(parameter.DimTrailLength) * parameter.TrailLengthMax,
		NoiseScale:      e.value(parameter.DimNoiseScale),
		NoiseSpeed:      e.value(parameter.DimNoiseSpeed),
		EdgeGlow:        e.value(parameter.DimEdgeGlow),
		DepthFade:       e.value(parameter.DimDepthFade),

		Bloom:               e.value(parameter.DimBloom),
		Vignette:            e.value(parameter.DimVignette),
		Grain:               e.value(parameter.DimGrain),
		ChromaticAberration: e.value(parameter.DimChromaticAberration),
		FeedbackAmount:      e.value(parameter.DimFeedbackAmount),
		BlurAmount:          e.value(parameter.DimBlurAmount),
		ScanlineAmount:      e.value(parameter.DimScanlineAmount),
		Pixelation:          e.value(parameter.DimPixelation),

		FocusIntensity: focus,
	}
}

// AudioState projects current dimension values into an audio snapshot
// Pure read, same guarantee as VisualState
func (e *Engine) AudioState() AudioSnapshot {
	return AudioSnapshot{
		DroneLowVolume:  e.value(parameter.DimDroneLowVolume),
		DroneLowPitch:   e.scaled(parameter.DimDroneLowPitch, parameter.DroneLowPitchMin, parameter.DroneLowPitchMax),
		DroneMidVolume:  e.value(parameter.DimDroneMidVolume),
		DroneMidPitch:   e.scaled(parameter.DimDroneMidPitch, parameter.DroneMidPitchMin, parameter.DroneMidPitchMax),
		DroneHighVolume: e.value(parameter.DimDroneHighVolume),
		DroneHighPitch:  e.scaled(parameter.DimDroneHighPitch, parameter.DroneHighPitchMin, parameter.DroneHighPitchMax),
		FilterCutoff:    e.scaled(parameter.DimFilterCutoff, parameter.FilterCutoffMin, parameter.FilterCutoffMax),
		FilterResonance: e.value(parameter.DimFilterResonance),
		ReverbAmount:    e.value(parameter.DimReverbAmount),
		DelayAmount:     e.value(parameter.DimDelayAmount),
		DelayFeedback:   e.value(parameter.DimDelayFeedback),
		TremoloDepth:    e.value(parameter.DimTremoloDepth),
		TremoloRate:     e.scaled(parameter.DimTremoloRate, parameter.TremoloRateMin, parameter.TremoloRateMax),
		SubBassAmount:   e.value(parameter.DimSubBassAmount),
		ShimmerAmount:   e.value(parameter.DimShimmerAmount),
		MasterLevel:     0.4 + e.value(parameter.DimIntensity)*0.6,
	}
}
