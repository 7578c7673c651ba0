package parameter

// Engine Timing
const (
	// TickRate is the nominal host frame rate the dt-scaling terms normalize to
	TickRate = 60.0

	// MaxFrameScale caps dt*TickRate so a stalled frame cannot integrate more
	// than one nominal frame of velocity
	MaxFrameScale = 1.0
)

// Smoother
const (
	// VelocityMomentum carries velocity across frames (critically damped feel)
	VelocityMomentum = 0.995

	// AccelScale converts (1 - smoothing) into acceleration gain
	AccelScale = 0.3

	// MaxVelocity bounds per-frame movement of any dimension; this is the
	// no-popping guarantee, independent of injected influence magnitude
	MaxVelocity = 0.003
)

// Per-dimension defaults, randomized once at construction within these bounds
const (
	SmoothingMin = 0.995
	SmoothingMax = 0.999

	DriftSpeedMin = 0.02
	DriftSpeedMax = 0.15

	DriftScaleMin = 0.008
	DriftScaleMax = 0.035
)

// Influence
const (
	// InfluenceDecay is the per-nominal-frame geometric decay factor; applied
	// as InfluenceDecay^(dt*TickRate) so decay speed is frame-rate independent
	InfluenceDecay = 0.98

	// InfluenceApplyRate scales accumulated influence into target movement per second
	InfluenceApplyRate = 1.0

	// InfluenceCap bounds the accumulator so stacked stimuli cannot build an
	// arbitrarily large pending push
	InfluenceCap = 0.5
)

// Connection Graph
const (
	// ConnectionRate scales edge propagation per second
	ConnectionRate = 0.5

	// RandomConnectionCount is how many weak random edges supplement the curated set
	RandomConnectionCount = 30

	RandomConnectionStrengthMin = 0.01
	RandomConnectionStrengthMax = 0.06
)

// Key Stimulus Table
const (
	KeyFanOutMin = 5
	KeyFanOutMax = 13

	KeyWeightMin = 0.02
	KeyWeightMax = 0.05
)

// Focus Mode
const (
	FocusDwellMin = 8.0
	FocusDwellMax = 20.0

	IdleDwellMin = 15.0
	IdleDwellMax = 45.0

	FocusTargetIntensityMin = 0.6
	FocusTargetIntensityMax = 1.0

	// Asymmetric easing: focus arrives faster than it releases
	FocusAttackRate  = 2.5
	FocusReleaseRate = 0.7

	// FocusDisplacementBoost scales displacement strength/radius at full intensity
	FocusDisplacementBoost = 0.6
)

// Pendulum Oscillators
const (
	PendulumAxisCount = 4

	PendulumForcingScale = 1.2e-5
	PendulumStiffness    = 3.0e-5
	PendulumDamping      = 0.998
	PendulumJitterScale  = 4.0e-6

	// PendulumSwing maps sin(angle) into dimension space around 0.5
	PendulumSwing = 0.28

	// PendulumBlend is the per-nominal-frame lerp of pendulum output into targets
	PendulumBlend = 0.02
)
