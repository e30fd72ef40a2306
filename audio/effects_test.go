package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 || total > 48000*5 {
			return total, peak
		}
	}
}

// TestOscillatorLength verifies a tone ends after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 {
		t.Errorf("Expected samples within [-1, 1], peak %f", peak)
	}
}

// TestOscillatorSquare verifies square wave only takes two values
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestOscillatorNoise verifies noise stays in range and is not a constant
func TestOscillatorNoise(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveNoise, beep.SampleRate(48000))
	samples := make([][2]float64, 480)
	n, _ := osc.Stream(samples)
	if n != 480 {
		t.Fatalf("Expected 480 samples, got %d", n)
	}
	distinct := make(map[float64]bool)
	for i := 0; i < n; i++ {
		v := samples[i][0]
		if v < -1 || v > 1 {
			t.Fatalf("Noise sample %d out of range: %f", i, v)
		}
		distinct[v] = true
	}
	if len(distinct) < 10 {
		t.Errorf("Expected varied noise samples, got %d distinct values", len(distinct))
	}
}

// TestEnvelopeFades verifies the first and last samples are attenuated
func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected envelope to cut at 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full gain mid-sustain, got %f", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("Expected release to fade, got %f then %f", buf[90][0], buf[99][0])
	}
}

func TestEffectsRespectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %s", st)
		}
		n, peak := drain(s)
		if n == 0 {
			t.Errorf("Expected %s to produce samples", st)
		}
		if peak == 0 {
			t.Errorf("Expected %s to be audible", st)
		}
	}

	cfg.EffectVolumes[SoundError] = 0
	if _, peak := drain(CreateErrorSound(cfg)); peak != 0 {
		t.Errorf("Expected silent error sound at zero volume, peak %f", peak)
	}
}

func TestSetEffectVolumes(t *testing.T) {
	cfg := DefaultAudioConfig()
	vols, err := ParseEffectVolumes(`{"tap":0.25,"mint":2}`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := cfg.SetEffectVolumes(vols); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.EffectVolumes[SoundTap] != 0.25 {
		t.Errorf("Expected tap 0.25, got %f", cfg.EffectVolumes[SoundTap])
	}
	if cfg.EffectVolumes[SoundMint] != 1 {
		t.Errorf("Expected mint clamped to 1, got %f", cfg.EffectVolumes[SoundMint])
	}
	if err := cfg.SetEffectVolumes(map[string]float64{"bell": 1}); err == nil {
		t.Error("Expected unknown sound rejected")
	}
	if _, err := ParseEffectVolumes("{"); err == nil {
		t.Error("Expected malformed JSON rejected")
	}
}
