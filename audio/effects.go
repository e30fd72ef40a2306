package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/abcedion/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone whose frequency moves linearly from
// startFreq to endFreq; equal values give a steady tone
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	length    int
	pos       int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a steady tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a tone gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: from,
		endFreq:   to,
		length:    rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case WaveSaw:
			v = 2*o.phase - 1
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(o.pos) / float64(o.length)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = total - att
		if rel < 0 {
			att, rel = total, 0
		}
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if remaining := e.total - e.pos; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		gain := 1.0
		switch {
		case e.attack > 0 && e.pos < e.attack:
			gain = float64(e.pos) / float64(e.attack)
		case e.release > 0 && e.pos >= releaseStart:
			gain = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; log2 of zero is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped steady note
func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CreateTapSound generates a short click
func CreateTapSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	click := tone(1200, constants.TapSoundDuration, constants.TapSoundAttack, constants.TapSoundRelease, WaveSine, rate)
	return newVolume(click, cfg.volumeFor(SoundTap))
}

// CreateErrorSound generates a low buzz with a short noise burst on the attack
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := tone(110, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease, WaveSaw, rate)
	burst := tone(0, constants.ErrorNoiseDuration, 0, constants.ErrorNoiseDuration, WaveNoise, rate)
	mixed := beep.Mix(newVolume(buzz, 0.8), newVolume(burst, 0.2))
	return newVolume(mixed, cfg.volumeFor(SoundError))
}

// CreateCollectSound generates a bell with an octave overtone
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.CollectSoundDuration

	fund := tone(1318.51, d, constants.CollectSoundAttack, constants.CollectSoundFundamentalRelease, WaveSine, rate)
	over := tone(2637.02, d, constants.CollectSoundAttack, constants.CollectSoundOvertoneRelease, WaveSine, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	return newVolume(mixed, cfg.volumeFor(SoundCollect))
}

// CreateBuySound generates a two-note chime
func CreateBuySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(987.77, constants.BuySoundNote1Duration, constants.BuySoundAttack, constants.BuySoundNote1Release, WaveSquare, rate)
	n2 := tone(1318.51, constants.BuySoundNote2Duration, constants.BuySoundAttack, constants.BuySoundNote2Release, WaveSquare, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volumeFor(SoundBuy))
}

// CreateMintSound generates a rising arpeggio over an upward sweep
func CreateMintSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.MintSoundNoteDuration

	notes := []float64{1046.50, 1318.51, 1567.98, 2093.00}
	arpeggio := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		arpeggio[i] = tone(f, d, constants.MintSoundAttack, constants.MintSoundRelease, WaveSine, rate)
	}
	sweep := NewEnvelope(
		NewSweep(300, 1200, constants.MintSweepDuration, WaveSaw, rate),
		constants.MintSweepDuration, constants.MintSoundAttack, constants.MintSweepDuration/2, rate,
	)
	mixed := beep.Mix(newVolume(beep.Seq(arpeggio...), 0.8), newVolume(sweep, 0.2))

	return newVolume(mixed, cfg.volumeFor(SoundMint))
}

// GetSoundEffect returns the streamer for the given type
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundTap:
		return CreateTapSound(cfg)
	case SoundCollect:
		return CreateCollectSound(cfg)
	case SoundBuy:
		return CreateBuySound(cfg)
	case SoundError:
		return CreateErrorSound(cfg)
	case SoundMint:
		return CreateMintSound(cfg)
	default:
		return nil
	}
}
