package parameter

// Pointer Stimulus
const (
	PointerDisplacementWeight = 0.04
	PointerHueWeight          = 0.01
	PointerGradientWeight     = 0.02
)

// Gesture Stimulus
const (
	GesturePinchRadiusWeight   = 0.05
	GesturePinchStrengthWeight = 0.03
	GestureRotationWeight      = 0.04
	GestureSwipeOffsetWeight   = 0.03
	GestureSwipeHueWeight      = 0.012
)

// Audio Band Stimulus
const (
	AudioVolumeIntensityWeight = 0.03
	AudioBassWeight            = 0.045
	AudioMidWeight             = 0.035
	AudioTrebleWeight          = 0.03
	AudioFilterWeight          = 0.025
)

// Face Feature Stimulus
// Face data arrives pre-smoothed by the landmark collaborator; these weights
// only shape the fan-out, not the temporal response
const (
	FaceYawWeight        = 0.035
	FacePitchWeight      = 0.03
	FaceRollWeight       = 0.025
	FaceEyeWeight        = 0.03
	FaceGazeWeight       = 0.02
	FaceMouthOpenWeight  = 0.04
	FaceMouthWidthWeight = 0.025
	FaceBrowWeight       = 0.03
	FaceEngagementWeight = 0.035
)

// Discrete Event Stimulus
const (
	BlinkRippleWeight = 0.06
	BlinkBloomWeight  = 0.03

	TalkingWaveWeight  = 0.025
	TalkingDroneWeight = 0.02

	MotionTiltWeight  = 0.04
	MotionShakeWeight = 0.05
)
