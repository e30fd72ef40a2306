package constants

import "time"

// Speaker
const (
	// SampleRate is the output sample rate for synthesized cues
	SampleRate = 48000

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond

	// DefaultMasterVolume matches the 0.3 clip volume of the web build
	DefaultMasterVolume = 0.3
)

// Tap Sound Timing
const (
	TapSoundDuration = 60 * time.Millisecond
	TapSoundAttack   = 2 * time.Millisecond
	TapSoundRelease  = 40 * time.Millisecond
)

// Error Sound Timing
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
	ErrorNoiseDuration = 15 * time.Millisecond
)

// Collect Sound Timing
const (
	CollectSoundDuration           = 600 * time.Millisecond
	CollectSoundAttack             = 5 * time.Millisecond
	CollectSoundFundamentalRelease = 550 * time.Millisecond
	CollectSoundOvertoneRelease    = 200 * time.Millisecond
)

// Buy Sound Timing
const (
	BuySoundNote1Duration = 80 * time.Millisecond
	BuySoundNote2Duration = 280 * time.Millisecond
	BuySoundAttack        = 5 * time.Millisecond
	BuySoundNote1Release  = 40 * time.Millisecond
	BuySoundNote2Release  = 200 * time.Millisecond
)

// Mint Sound Timing
const (
	MintSoundNoteDuration = 90 * time.Millisecond
	MintSoundAttack       = 5 * time.Millisecond
	MintSoundRelease      = 60 * time.Millisecond
	MintSweepDuration     = 300 * time.Millisecond
)
