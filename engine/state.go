package engine

import (
	"time"

	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/locale"
)

// GameState is the single persisted record
// Every transition produces a new value; the owner replaces its copy whole
type GameState struct {
	Balance            float64         `toml:"balance"`
	TotalEarned        float64         `toml:"total_earned"`
	Energy             float64         `toml:"energy"`
	MaxEnergy          float64         `toml:"max_energy"`
	TapPower           int64           `toml:"tap_power"`
	PassiveIncome      float64         `toml:"passive_income"`
	Level              int             `toml:"level"`
	LastUpdate         time.Time       `toml:"last_update"`
	Language           locale.Language `toml:"language"`
	WalletAddress      string          `toml:"wallet_address,omitempty"`
	ObsidianBalance    int64           `toml:"obsidian_balance"`
	CustomObsidianIcon string          `toml:"custom_obsidian_icon,omitempty"`

	UpgradeCounts map[string]int       `toml:"upgrade_counts,omitempty"`
	TaskClaims    map[string]time.Time `toml:"task_claims,omitempty"`
	InviteCode    string               `toml:"invite_code,omitempty"`
	Receipts      []Receipt            `toml:"receipts,omitempty"`
}

// Receipt records one settled simulated payment
type Receipt struct {
	ID         string    `toml:"id"`
	ItemID     string    `toml:"item_id"`
	PriceTon   float64   `toml:"price_ton"`
	Reward     float64   `toml:"reward"`
	ResolvedAt time.Time `toml:"resolved_at"`
}

// DefaultState returns the state of a fresh install
func DefaultState(now time.Time) GameState {
	return GameState{
		Balance:         0,
		TotalEarned:     0,
		Energy:          constants.InitialEnergy,
		MaxEnergy:       constants.InitialEnergy,
		TapPower:        1,
		PassiveIncome:   0,
		Level:           1,
		LastUpdate:      now,
		Language:        locale.Default,
		ObsidianBalance: 0,
	}
}

// Normalize repairs a loaded record whose fields are missing or out of range
// Stored values that are valid are kept as-is
func (s GameState) Normalize(now time.Time) GameState {
	if s.MaxEnergy <= 0 {
		s.MaxEnergy = constants.InitialEnergy
	}
	s.Energy = clamp(s.Energy, 0, s.MaxEnergy)
	if s.TapPower < 1 {
		s.TapPower = 1
	}
	if s.PassiveIncome < 0 {
		s.PassiveIncome = 0
	}
	if s.Balance < 0 {
		s.Balance = 0
	}
	if s.TotalEarned < 0 {
		s.TotalEarned = 0
	}
	if s.Level < 1 {
		s.Level = 1
	}
	if s.ObsidianBalance < 0 {
		s.ObsidianBalance = 0
	}
	if s.LastUpdate.IsZero() || s.LastUpdate.After(now) {
		s.LastUpdate = now
	}
	s.Language = locale.Normalize(s.Language)
	return s
}

// Clone returns a deep copy; maps and slices are not shared with the receiver
func (s GameState) Clone() GameState {
	if s.UpgradeCounts != nil {
		counts := make(map[string]int, len(s.UpgradeCounts))
		for k, v := range s.UpgradeCounts {
			counts[k] = v
		}
		s.UpgradeCounts = counts
	}
	if s.TaskClaims != nil {
		claims := make(map[string]time.Time, len(s.TaskClaims))
		for k, v := range s.TaskClaims {
			claims[k] = v
		}
		s.TaskClaims = claims
	}
	if s.Receipts != nil {
		s.Receipts = append([]Receipt(nil), s.Receipts...)
	}
	return s
}

// HasWallet reports whether a simulated wallet is connected
func (s GameState) HasWallet() bool {
	return s.WalletAddress != ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
