package events

import "github.com/lixenwraith/fluxfield/engine"

// StimulusType discriminates queued stimulus payloads
type StimulusType int

const (
	// StimulusKeyPress carries Key
	StimulusKeyPress StimulusType = iota

	// StimulusPointerMove carries X, Y normalized to [0,1]
	StimulusPointerMove

	// StimulusGesture carries Gesture
	StimulusGesture

	// StimulusAudioBands carries Volume, Bass, Mid, Treble in [0,1]
	StimulusAudioBands

	// StimulusFaceFeatures carries Face
	StimulusFaceFeatures

	// StimulusBlink has no payload
	StimulusBlink

	// StimulusTalking carries Active
	StimulusTalking

	// StimulusMotion carries X (tiltX), Y (tiltY), Shake
	StimulusMotion
)

// Stimulus is one queued injection event
// A flat value type so ring-buffer slots need no allocation per push
type Stimulus struct {
	Type    StimulusType
	Key     string
	X, Y    float64
	Shake   float64
	Volume  float64
	Bass    float64
	Mid     float64
	Treble  float64
	Active  bool
	Gesture engine.Gesture
	Face    engine.FaceFeatures
}

// Apply injects the stimulus into the engine through its boundary-sanitizing
// handlers
func (s Stimulus) Apply(e *engine.Engine) {
	switch s.Type {
	case StimulusKeyPress:
		e.HandleKeyPress(s.Key)
	case StimulusPointerMove:
		e.HandleMouseMove(s.X, s.Y)
	case StimulusGesture:
		e.HandleGestureInput(s.Gesture)
	case StimulusAudioBands:
		e.HandleAudioInput(s.Volume, s.Bass, s.Mid, s.Treble)
	case StimulusFaceFeatures:
		e.HandleFaceFeatures(s.Face)
	case StimulusBlink:
		e.HandleBlink()
	case StimulusTalking:
		e.HandleTalking(s.Active)
	case StimulusMotion:
		e.HandleMotion(s.X, s.Y, s.Shake)
	}
}
