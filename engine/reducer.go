package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/constants"
)

// Reducers are pure: they take the latest state by value and return the next one
// On error the returned state is the input unchanged

// Advance accrues passive income and regenerates energy for the time since LastUpdate
// A clock that moved backwards accrues nothing but still re-anchors LastUpdate
func Advance(s GameState, now time.Time) GameState {
	elapsed := now.Sub(s.LastUpdate).Seconds()
	if elapsed > 0 {
		gain := s.PassiveIncome * elapsed
		s.Balance += gain
		s.TotalEarned += gain
		s.Energy = math.Min(s.MaxEnergy, s.Energy+constants.EnergyRegenRate*elapsed)
	}
	s.Energy = clamp(s.Energy, 0, s.MaxEnergy)
	s.LastUpdate = now
	return s
}

// Tap credits one tap worth of points and spends one unit of energy
func Tap(s GameState) (GameState, error) {
	if s.Energy < constants.TapEnergyCost {
		return s, ErrOutOfEnergy
	}
	gain := float64(s.TapPower)
	s.Balance += gain
	s.TotalEarned += gain
	s.Energy = math.Max(0, s.Energy-constants.TapEnergyCost)
	return s, nil
}

// Credit adds earned points to both balance and lifetime total
func Credit(s GameState, amount float64) GameState {
	if amount <= 0 {
		return s
	}
	s.Balance += amount
	s.TotalEarned += amount
	return s
}

// PurchaseUpgrade spends the upgrade cost and raises exactly one stat
func PurchaseUpgrade(s GameState, u catalog.Upgrade) (GameState, error) {
	if u.Kind != catalog.UpgradeTap && u.Kind != catalog.UpgradePassive {
		return s, ErrUnknownItem
	}
	if s.Balance < u.Cost {
		return s, ErrInsufficientBalance
	}

	s = s.Clone()
	s.Balance -= u.Cost
	switch u.Kind {
	case catalog.UpgradeTap:
		s.TapPower += int64(u.Increase)
	case catalog.UpgradePassive:
		s.PassiveIncome += u.Increase
	}
	if s.UpgradeCounts == nil {
		s.UpgradeCounts = make(map[string]int)
	}
	s.UpgradeCounts[u.ID]++
	return s, nil
}

// Mint converts as many whole units of balance as possible into obsidian
// Returns the number of units minted
func Mint(s GameState, rate float64) (GameState, int64, error) {
	if rate <= 0 || s.Balance < rate {
		return s, 0, ErrInsufficientBalance
	}
	units := int64(math.Floor(s.Balance / rate))
	s.Balance -= float64(units) * rate
	s.ObsidianBalance += units
	return s, units, nil
}

// ToggleLanguage switches to the other supported locale
func ToggleLanguage(s GameState) GameState {
	s.Language = s.Language.Toggle()
	return s
}

// ConnectWallet stores a generated wallet address; an existing address is never replaced
func ConnectWallet(s GameState, address string) (GameState, error) {
	if s.HasWallet() {
		return s, ErrWalletConnected
	}
	s.WalletAddress = address
	return s, nil
}

// SettlePurchase credits the item reward, when any, and records the receipt
func SettlePurchase(s GameState, item catalog.ShopItem, r Receipt) GameState {
	s = s.Clone()
	if item.Reward > 0 {
		s.Balance += item.Reward
	}
	s.Receipts = append(s.Receipts, r)
	if n := len(s.Receipts); n > constants.MaxReceipts {
		s.Receipts = append([]Receipt(nil), s.Receipts[n-constants.MaxReceipts:]...)
	}
	return s
}

// ClaimTask credits a daily task reward once per reset window
func ClaimTask(s GameState, task catalog.Task, now time.Time, sched ResetSchedule) (GameState, error) {
	if !TaskAvailable(s, task.ID, now, sched) {
		return s, ErrTaskClaimed
	}
	s = Credit(s.Clone(), task.Reward)
	if s.TaskClaims == nil {
		s.TaskClaims = make(map[string]time.Time)
	}
	s.TaskClaims[task.ID] = now
	return s, nil
}

// SetCustomIcon records the reference to a generated logo
func SetCustomIcon(s GameState, ref string) GameState {
	s.CustomObsidianIcon = ref
	return s
}

// EnsureInviteCode assigns an invite code once; later calls keep the first one
func EnsureInviteCode(s GameState, code string) GameState {
	if s.InviteCode == "" {
		s.InviteCode = code
	}
	return s
}
