package parameter

// Dim indexes one slot of the 64-dimension state vector
type Dim int

// Dimension indices, grouped by concern
// Indices 0-3 are circular hue values that wrap in [0,1); everything else clamps to [0,1]
const (
	// Hue group (circular)
	DimHueBase Dim = iota
	DimHueShift
	DimHueSecondary
	DimHueAccent

	// Color
	DimSaturation
	DimBrightness
	DimContrast
	DimColorBlend
	DimGradientOffsetX
	DimGradientOffsetY
	DimGradientAngle
	DimPaletteDrift

	// Displacement
	DimDisplacementX
	DimDisplacementY
	DimDisplacementStrength
	DimDisplacementRadius
	DimDisplacementSpeed
	DimRippleStrength
	DimRippleSpeed
	DimRippleDensity

	// Shape / wave
	DimWaveFrequency
	DimWaveAmplitude
	DimWaveSpeed
	DimShapeMorph
	DimSymmetry
	DimRotation
	DimRotationSpeed
	DimZoom
	DimTurbulence
	DimFlowSpeed

	// Texture / particle
	DimParticleDensity
	DimParticleSize
	DimParticleSpeed
	DimTrailLength
	DimNoiseScale
	DimNoiseSpeed
	DimEdgeGlow
	DimDepthFade

	// Post-processing
	DimBloom
	DimVignette
	DimGrain
	DimChromaticAberration
	DimFeedbackAmount
	DimBlurAmount
	DimScanlineAmount
	DimPixelation

	// Audio-facing
	DimDroneLowVolume
	DimDroneLowPitch
	DimDroneMidVolume
	DimDroneMidPitch
	DimDroneHighVolume
	DimDroneHighPitch
	DimFilterCutoff
	DimFilterResonance
	DimReverbAmount
	DimDelayAmount
	DimDelayFeedback
	DimTremoloDepth
	DimTremoloRate
	DimSubBassAmount
	DimShimmerAmount

	// Global
	DimIntensity
	DimEnergy
	DimCalm

	DimCount
)

// HueDimCount is the number of leading circular dimensions
const HueDimCount = 4

// DimNames maps each index to its external name
// Order must match the Dim constants above
var DimNames = [DimCount]string{
	"hueBase", "hueShift", "hueSecondary", "hueAccent",
	"saturation", "brightness", "contrast", "colorBlend",
	"gradientOffsetX", "gradientOffsetY", "gradientAngle", "paletteDrift",
	"displacementX", "displacementY", "displacementStrength", "displacementRadius",
	"displacementSpeed", "rippleStrength", "rippleSpeed", "rippleDensity",
	"waveFrequency", "waveAmplitude", "waveSpeed", "shapeMorph",
	"symmetry", "rotation", "rotationSpeed", "zoom",
	"turbulence", "flowSpeed",
	"particleDensity", "particleSize", "particleSpeed", "trailLength",
	"noiseScale", "noiseSpeed", "edgeGlow", "depthFade",
	"bloom", "vignette", "grain", "chromaticAberration",
	"feedbackAmount", "blurAmount", "scanlineAmount", "pixelation",
	"droneLowVolume", "droneLowPitch", "droneMidVolume", "droneMidPitch",
	"droneHighVolume", "droneHighPitch", "filterCutoff", "filterResonance",
	"reverbAmount", "delayAmount", "delayFeedback", "tremoloDepth",
	"tremoloRate", "subBassAmount", "shimmerAmount",
	"intensity", "energy", "calm",
}

// DimIndex resolves an external name to its slot index
// Returns -1 for unknown names; callers treat that as the zero-value read (see engine.Get)
func DimIndex(name string) Dim {
	if d, ok := dimIndexTable[name]; ok {
		return d
	}
	return -1
}

var dimIndexTable = buildDimIndexTable()

func buildDimIndexTable() map[string]Dim {
	t := make(map[string]Dim, DimCount)
	for i, name := range DimNames {
		t[name] = Dim(i)
	}
	return t
}
