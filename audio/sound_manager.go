// Package audio synthesizes and plays the game's sound cues.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/status"
)

// SoundManager plays cues through a single mixer on the speaker
// Every method is safe to call when the device could not be opened
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	log   *zap.Logger
	stats *status.Registry

	// speakerInit and speakerPlay are replaced in tests
	speakerInit func(beep.SampleRate, int) error
	speakerPlay func(...beep.Streamer)
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger, stats *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		cfg:         cfg,
		mixer:       &beep.Mixer{},
		log:         logger.Named("audio"),
		stats:       stats,
		speakerInit: speaker.Init,
		speakerPlay: speaker.Play,
	}
}

// Initialize opens the speaker and starts the mixer
// Returns nil without touching the device when audio is disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.speakerInit(rate, rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}
	sm.speakerPlay(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still queued
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a sound; failures and muted state drop it silently
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.stats.Inc(status.SoundsPlayed)
}

// HandleCue plays the sound mapped to an engine cue
func (sm *SoundManager) HandleCue(c engine.Cue) {
	if st, ok := SoundForCue(c); ok {
		sm.Play(st)
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			sm.log.Info("mute toggled", zap.Bool("muted", !old))
			return !old
		}
	}
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(m bool) {
	sm.muted.Store(m)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Active reports whether the speaker is open
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
