package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/abcedion/constants"
)

// Mote is a short-lived collectible on the home view
// Position is in percent of the play area so it survives terminal resizes
type Mote struct {
	ID        uint64
	X, Y      float64
	Value     float64
	CreatedAt time.Time
}

// Expired reports whether the mote has outlived its lifespan
func (m Mote) Expired(now time.Time) bool {
	return now.Sub(m.CreatedAt) >= constants.MoteLifespan
}

// ClickEffect is the "+N" marker drawn at a tap location
type ClickEffect struct {
	ID        uint64
	X, Y      int
	Value     int64
	CreatedAt time.Time
}

// Expired reports whether the marker should no longer be drawn
func (e ClickEffect) Expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) >= constants.ClickEffectDuration
}

// MoteReward is the value of a mote spawned at the given tap power
func MoteReward(tapPower int64) float64 {
	return math.Ceil(float64(tapPower) * constants.MoteRewardFactor)
}

// newMote places a mote at a pseudo-random position inside the spawn bounds
func newMote(id uint64, rng *rand.Rand, tapPower int64, now time.Time) Mote {
	return Mote{
		ID:        id,
		X:         constants.MoteMinXPercent + rng.Float64()*constants.MoteSpanXPercent,
		Y:         constants.MoteMinYPercent + rng.Float64()*constants.MoteSpanYPercent,
		Value:     MoteReward(tapPower),
		CreatedAt: now,
	}
}

// pruneMotes drops expired motes in place and returns how many were dropped
func pruneMotes(motes []Mote, now time.Time) ([]Mote, int) {
	kept := motes[:0]
	for _, m := range motes {
		if !m.Expired(now) {
			kept = append(kept, m)
		}
	}
	return kept, len(motes) - len(kept)
}

// pruneEffects drops expired click markers in place
func pruneEffects(effects []ClickEffect, now time.Time) []ClickEffect {
	kept := effects[:0]
	for _, e := range effects {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	return kept
}
