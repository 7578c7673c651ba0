package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fluxfield/engine"
)

// DroneEngine renders the engine's audio snapshot as three continuous drone
// bands through a shared low-pass filter and tremolo. It implements
// beep.Streamer; the host pushes fresh parameters once per frame via Update
type DroneEngine struct {
	mu sync.Mutex

	cfg *AudioConfig

	low  *droneVoice
	mid  *droneVoice
	high *droneVoice
	sub  *droneVoice

	filter *onePole

	tremoloPhase float64
	tremoloDepth float64
	tremoloRate  float64
	masterLevel  float64

	volume  *effects.Volume
	started bool
}

// NewDroneEngine builds the synth graph; playback starts on Start
func NewDroneEngine(cfg *AudioConfig) *DroneEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	d := &DroneEngine{
		cfg:         cfg,
		low:         newDroneVoice(60, 1.004),
		mid:         newDroneVoice(140, 1.006),
		high:        newDroneVoice(320, 1.009),
		sub:         newDroneVoice(35, 1.002),
		filter:      newOnePole(1200),
		masterLevel: 0.5,
	}
	d.volume = &effects.Volume{
		Streamer: d,
		Base:     2,
		Volume:   volumeFromLinear(cfg.MasterVolume),
		Silent:   cfg.MasterVolume <= 0,
	}
	return d
}

// volumeFromLinear maps a 0..1 level onto beep's exponential volume scale
func volumeFromLinear(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return math.Log2(v)
}

// Start initializes the speaker and begins playback
func (d *DroneEngine) Start() error {
	if !d.cfg.Enabled {
		return nil
	}
	sr := beep.SampleRate(d.cfg.SampleRate)
	bufLen := sr.N(time.Duration(d.cfg.BufferSizeMs) * time.Millisecond)
	if err := speaker.Init(sr, bufLen); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(d.volume)
	d.started = true
	return nil
}

// Stop silences and tears down playback
func (d *DroneEngine) Stop() {
	if !d.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	d.started = false
}

// Update pushes the latest snapshot into the synth
// Called once per frame from the host loop; safe against the audio goroutine
func (d *DroneEngine) Update(s engine.AudioSnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.low.set(s.DroneLowPitch, s.DroneLowVolume)
	d.mid.set(s.DroneMidPitch, s.DroneMidVolume)
	d.high.set(s.DroneHighPitch, s.DroneHighVolume*(0.5+s.ShimmerAmount*0.5))
	d.sub.set(s.DroneLowPitch/2, s.SubBassAmount*0.8)
	d.filter.set(s.FilterCutoff)
	d.tremoloDepth = s.TremoloDepth
	d.tremoloRate = s.TremoloRate
	d.masterLevel = s.MasterLevel
}

// Stream fills the sample buffer; part of beep.Streamer
// Drones are endless: always returns len(samples), true
func (d *DroneEngine) Stream(samples [][2]float64) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sampleRate := float64(d.cfg.SampleRate)
	for i := range samples {
		s := d.low.sample(sampleRate) +
			d.mid.sample(sampleRate)*0.8 +
			d.high.sample(sampleRate)*0.6 +
			d.sub.sample(sampleRate)*0.9

		s = d.filter.sample(s, sampleRate)

		d.tremoloPhase += d.tremoloRate / sampleRate
		if d.tremoloPhase >= 1 {
			d.tremoloPhase -= 1
		}
		trem := 1 - d.tremoloDepth*0.5*(1+math.Sin(2*math.Pi*d.tremoloPhase))*0.5

		s *= trem * d.masterLevel * 0.3 // headroom across four voices

		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	return len(samples), true
}

// Err is part of beep.Streamer; the drone graph cannot fail mid-stream
func (d *DroneEngine) Err() error {
	return nil
}
