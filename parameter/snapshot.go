package parameter

// Visual Output Ranges
// Scaled reads map a [0,1] dimension onto the range its consumer expects
const (
	WaveFrequencyMin = 1.0
	WaveFrequencyMax = 12.0

	SymmetryMin = 1
	SymmetryMax = 8

	ZoomMin = 0.5
	ZoomMax = 2.5

	RotationSpeedMax = 0.8 // rad/s at full scale

	TrailLengthMax = 48.0 // frames

	// Orbital ripple origins
	OrbitalRadiusScale = 0.35
	OrbitalBaseSpeed   = 0.4 // rad/s for the first orbital, halved per index
	OrbitalPhaseStep   = 2.4 // phase offset between orbitals, radians
)

// Audio Output Ranges
const (
	DroneLowPitchMin = 40.0 // Hz
	DroneLowPitchMax = 90.0

	DroneMidPitchMin = 90.0
	DroneMidPitchMax = 220.0

	DroneHighPitchMin = 220.0
	DroneHighPitchMax = 600.0

	FilterCutoffMin = 200.0 // Hz
	FilterCutoffMax = 6000.0

	TremoloRateMin = 0.5 // Hz
	TremoloRateMax = 8.0
)
