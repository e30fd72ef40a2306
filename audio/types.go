package audio

import (
	"github.com/lixenwraith/abcedion/engine"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundTap     SoundType = iota // Tap, tab switch, dialog buttons
	SoundCollect                  // Mote collected, task claimed
	SoundBuy                      // Upgrade bought
	SoundError                    // Rejected action
	SoundMint                     // Mint, wallet connected, payment settled
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"tap", "collect", "buy", "error", "mint"}

// String returns the name used in volume maps
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a volume map key to a SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// SoundForCue maps an engine cue to its sound
func SoundForCue(c engine.Cue) (SoundType, bool) {
	switch c {
	case engine.CueTap:
		return SoundTap, true
	case engine.CueCollect:
		return SoundCollect, true
	case engine.CueBuy:
		return SoundBuy, true
	case engine.CueError:
		return SoundError, true
	case engine.CueMint:
		return SoundMint, true
	default:
		return 0, false
	}
}
