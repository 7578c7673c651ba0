package audio

import "math"

// droneVoice is one continuously sounding band: a sine pair (fundamental plus
// slight detune for movement) with slewed frequency and gain so parameter
// updates from the snapshot never zipper
type droneVoice struct {
	phase       float64
	detunePhase float64
	freq        float64 // current, slewed
	targetFreq  float64
	gain        float64 // current, slewed
	targetGain  float64
	detuneRatio float64
}

// slew rates per sample; gain moves faster than pitch
const (
	freqSlew = 0.0008
	gainSlew = 0.002
)

func newDroneVoice(freq, detuneRatio float64) *droneVoice {
	return &droneVoice{
		freq:        freq,
		targetFreq:  freq,
		detuneRatio: detuneRatio,
	}
}

// set updates the voice targets from the latest snapshot
func (v *droneVoice) set(freq, gain float64) {
	if freq > 0 {
		v.targetFreq = freq
	}
	if gain >= 0 && gain <= 1 {
		v.targetGain = gain
	}
}

// sample produces one mono sample at the given rate
func (v *droneVoice) sample(sampleRate float64) float64 {
	v.freq += (v.targetFreq - v.freq) * freqSlew
	v.gain += (v.targetGain - v.gain) * gainSlew

	inc := v.freq / sampleRate
	v.phase += inc
	if v.phase >= 1 {
		v.phase -= 1
	}
	v.detunePhase += inc * v.detuneRatio
	if v.detunePhase >= 1 {
		v.detunePhase -= 1
	}

	s := math.Sin(2*math.Pi*v.phase)*0.7 + math.Sin(2*math.Pi*v.detunePhase)*0.3
	return s * v.gain
}

// onePole is a single-pole low-pass filter tracking the snapshot cutoff
type onePole struct {
	state  float64
	cutoff float64 // Hz, slewed
	target float64
}

func newOnePole(cutoff float64) *onePole {
	return &onePole{cutoff: cutoff, target: cutoff}
}

func (f *onePole) set(cutoff float64) {
	if cutoff > 0 {
		f.target = cutoff
	}
}

func (f *onePole) sample(in, sampleRate float64) float64 {
	f.cutoff += (f.target - f.cutoff) * freqSlew
	alpha := 1 - math.Exp(-2*math.Pi*f.cutoff/sampleRate)
	f.state += (in - f.state) * alpha
	return f.state
}
