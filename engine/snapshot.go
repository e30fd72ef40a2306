package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/constants"
)

// Snapshot is a copy of everything the renderer draws
// It shares no memory with the owner
type Snapshot struct {
	Now   time.Time
	State GameState

	Motes   []Mote
	Effects []ClickEffect
	View    View

	Connecting  bool
	Purchase    PurchasePhase
	PendingItem *catalog.ShopItem

	// Pulsing is true for a short time after the integer part of the balance changes
	Pulsing bool

	// TaskAvailable maps task id to claimability at Now
	TaskAvailable map[string]bool

	ConversionRate float64
}

// Snapshot returns a copy of the current state with expired transients removed
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.time.Now()
	g.effects = pruneEffects(g.effects, now)

	snap := Snapshot{
		Now:            now,
		State:          g.state.Clone(),
		View:           g.view,
		Connecting:     g.connecting,
		Purchase:       g.purchase,
		Pulsing:        now.Before(g.pulseUntil),
		TaskAvailable:  make(map[string]bool, len(catalog.Tasks)),
		ConversionRate: g.rate,
	}
	for _, m := range g.motes {
		if !m.Expired(now) {
			snap.Motes = append(snap.Motes, m)
		}
	}
	snap.Effects = append(snap.Effects, g.effects...)
	if g.pending != nil {
		item := *g.pending
		snap.PendingItem = &item
	}
	for _, t := range catalog.Tasks {
		snap.TaskAvailable[t.ID] = TaskAvailable(g.state, t.ID, now, g.sched)
	}
	return snap
}

// MintReady reports whether at least one unit can be minted
func (s Snapshot) MintReady() bool {
	return s.ConversionRate > 0 && s.State.Balance >= s.ConversionRate
}

// MintProgress is the fraction of the next unit already accumulated, in [0,1)
func (s Snapshot) MintProgress() float64 {
	return MintProgress(s.State.Balance, s.ConversionRate)
}

// MintProgress returns (balance mod rate) / rate
func MintProgress(balance, rate float64) float64 {
	if rate <= 0 || balance <= 0 {
		return 0
	}
	return math.Mod(balance, rate) / rate
}

// SimulatedUsers fakes a community size from lifetime earnings
func SimulatedUsers(totalEarned float64) int64 {
	return int64(math.Floor(totalEarned*0.5 + constants.SimulatedUserBase))
}

// MilestonePercent is progress toward the community milestone, capped at 100
func MilestonePercent(users int64) float64 {
	return math.Min(100, float64(users)/constants.MilestoneUsers*100)
}
