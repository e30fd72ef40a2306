package audio

import (
	"encoding/json"
	"fmt"

	"github.com/lixenwraith/abcedion/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns settings with every cue at full relative volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.SampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundTap:     0.6,
			SoundCollect: 1.0,
			SoundBuy:     0.9,
			SoundError:   0.8,
			SoundMint:    1.0,
		},
	}
}

// SetEffectVolumes overrides per-sound volumes from a name keyed map
// Unknown names are reported; values are clamped to 0-1
func (c *AudioConfig) SetEffectVolumes(volumes map[string]float64) error {
	for name, v := range volumes {
		st, ok := ParseSoundType(name)
		if !ok {
			return fmt.Errorf("unknown sound %q", name)
		}
		c.EffectVolumes[st] = clampUnit(v)
	}
	return nil
}

// ParseEffectVolumes decodes a JSON object such as {"tap":0.5,"error":0}
func ParseEffectVolumes(raw string) (map[string]float64, error) {
	var volumes map[string]float64
	if err := json.Unmarshal([]byte(raw), &volumes); err != nil {
		return nil, fmt.Errorf("parse effect volumes: %w", err)
	}
	return volumes, nil
}

// volumeFor returns the effective linear volume of a sound
func (c *AudioConfig) volumeFor(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
