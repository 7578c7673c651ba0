package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/fluxfield/engine"
)

// TestStreamBounded verifies output samples stay within [-1,1] under full
// drive
func TestStreamBounded(t *testing.T) {
	d := NewDroneEngine(DefaultAudioConfig())
	d.Update(engine.AudioSnapshot{
		DroneLowVolume: 1, DroneLowPitch: 90,
		DroneMidVolume: 1, DroneMidPitch: 220,
		DroneHighVolume: 1, DroneHighPitch: 600,
		FilterCutoff: 6000, TremoloDepth: 1, TremoloRate: 8,
		SubBassAmount: 1, ShimmerAmount: 1, MasterLevel: 1,
	})

	buf := make([][2]float64, 4096)
	n, ok := d.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream returned (%d,%v), want (%d,true)", n, ok, len(buf))
	}
	for i, frame := range buf {
		for ch := 0; ch < 2; ch++ {
			if math.IsNaN(frame[ch]) || frame[ch] < -1 || frame[ch] > 1 {
				t.Fatalf("sample %d ch %d = %v out of range", i, ch, frame[ch])
			}
		}
	}
}

// TestStreamSilentAtZeroVolume verifies zero drone volumes settle to silence
func TestStreamSilentAtZeroVolume(t *testing.T) {
	d := NewDroneEngine(DefaultAudioConfig())
	d.Update(engine.AudioSnapshot{
		DroneLowPitch: 60, DroneMidPitch: 140, DroneHighPitch: 320,
		FilterCutoff: 1200, MasterLevel: 1,
	})

	// Gains start at zero and targets are zero; a long run must stay quiet
	buf := make([][2]float64, 8192)
	d.Stream(buf)
	d.Stream(buf)

	for i, frame := range buf {
		if math.Abs(frame[0]) > 0.01 {
			t.Fatalf("sample %d = %v, want near silence", i, frame[0])
		}
	}
}

// TestStreamSlewsGain verifies a gain step ramps instead of jumping
func TestStreamSlewsGain(t *testing.T) {
	d := NewDroneEngine(DefaultAudioConfig())
	d.Update(engine.AudioSnapshot{
		DroneLowVolume: 1, DroneLowPitch: 60,
		FilterCutoff: 2000, MasterLevel: 1,
	})

	buf := make([][2]float64, 64)
	d.Stream(buf)

	// Within the first 64 samples the slewed gain is still far from full
	var peak float64
	for _, frame := range buf {
		if a := math.Abs(frame[0]); a > peak {
			peak = a
		}
	}
	if peak > 0.1 {
		t.Errorf("early peak %v, want slewed ramp below 0.1", peak)
	}
}

// TestErrAlwaysNil verifies the streamer never reports failure
func TestErrAlwaysNil(t *testing.T) {
	d := NewDroneEngine(nil)
	if err := d.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

// TestDefaultAudioConfig verifies defaults are sane for beep
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	if cfg.SampleRate <= 0 || cfg.BufferSizeMs <= 0 {
		t.Errorf("invalid defaults: %+v", cfg)
	}
	if cfg.MasterVolume < 0 || cfg.MasterVolume > 1 {
		t.Errorf("master volume %v outside [0,1]", cfg.MasterVolume)
	}
}
