package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/locale"
)

var baseTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// TestAdvancePassiveIncome verifies income accrues exactly per elapsed second
func TestAdvancePassiveIncome(t *testing.T) {
	s := DefaultState(baseTime)
	s.PassiveIncome = 10

	next := Advance(s, baseTime.Add(2*time.Second))

	if next.Balance != 20 {
		t.Errorf("Expected balance 20, got %v", next.Balance)
	}
	if next.TotalEarned != 20 {
		t.Errorf("Expected totalEarned 20, got %v", next.TotalEarned)
	}
	if !next.LastUpdate.Equal(baseTime.Add(2 * time.Second)) {
		t.Errorf("Expected LastUpdate re-anchored, got %v", next.LastUpdate)
	}
}

// TestAdvanceEnergyClamped verifies regen never exceeds the cap
func TestAdvanceEnergyClamped(t *testing.T) {
	s := DefaultState(baseTime)
	s.Energy = 999.5

	next := Advance(s, baseTime.Add(5*time.Second))

	if next.Energy != next.MaxEnergy {
		t.Errorf("Expected energy %v, got %v", next.MaxEnergy, next.Energy)
	}
}

// TestAdvanceBackwardsClock verifies a negative elapsed accrues nothing
func TestAdvanceBackwardsClock(t *testing.T) {
	s := DefaultState(baseTime)
	s.PassiveIncome = 10
	s.Energy = 500
	earlier := baseTime.Add(-time.Minute)

	next := Advance(s, earlier)

	if next.Balance != 0 || next.Energy != 500 {
		t.Errorf("Expected no accrual, got balance %v energy %v", next.Balance, next.Energy)
	}
	if !next.LastUpdate.Equal(earlier) {
		t.Errorf("Expected LastUpdate %v, got %v", earlier, next.LastUpdate)
	}
}

func TestTapRequiresEnergy(t *testing.T) {
	s := DefaultState(baseTime)
	s.Energy = 0.5

	next, err := Tap(s)
	if !errors.Is(err, ErrOutOfEnergy) {
		t.Fatalf("Expected ErrOutOfEnergy, got %v", err)
	}
	if !reflect.DeepEqual(next, s) {
		t.Errorf("Expected state unchanged, got %+v", next)
	}
}

func TestTapCreditsTapPower(t *testing.T) {
	s := DefaultState(baseTime)
	s.TapPower = 3
	s.Energy = 10

	next, err := Tap(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if next.Balance != 3 || next.TotalEarned != 3 {
		t.Errorf("Expected balance and totalEarned 3, got %v and %v", next.Balance, next.TotalEarned)
	}
	if next.Energy != 9 {
		t.Errorf("Expected energy 9, got %v", next.Energy)
	}
}

// TestTapEnergyFloor verifies energy between 1 and 2 cannot go negative
func TestTapEnergyFloor(t *testing.T) {
	s := DefaultState(baseTime)
	s.Energy = 1

	next, err := Tap(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if next.Energy != 0 {
		t.Errorf("Expected energy 0, got %v", next.Energy)
	}
	if _, err := Tap(next); !errors.Is(err, ErrOutOfEnergy) {
		t.Errorf("Expected second tap rejected, got %v", err)
	}
}

func TestPurchaseUpgradeSingleField(t *testing.T) {
	tests := []struct {
		id          string
		wantTap     int64
		wantPassive float64
	}{
		{"strong_fingers", 2, 0},
		{"auto_clicker", 1, 2},
		{"mega_tap", 6, 0},
		{"gold_farm", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			u, ok := catalog.UpgradeByID(tt.id)
			if !ok {
				t.Fatalf("Upgrade %s missing", tt.id)
			}
			s := DefaultState(baseTime)
			s.Balance = u.Cost + 7

			next, err := PurchaseUpgrade(s, u)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if next.Balance != 7 {
				t.Errorf("Expected balance 7, got %v", next.Balance)
			}
			if next.TapPower != tt.wantTap {
				t.Errorf("Expected tapPower %d, got %d", tt.wantTap, next.TapPower)
			}
			if next.PassiveIncome != tt.wantPassive {
				t.Errorf("Expected passiveIncome %v, got %v", tt.wantPassive, next.PassiveIncome)
			}
			if next.UpgradeCounts[tt.id] != 1 {
				t.Errorf("Expected count 1, got %d", next.UpgradeCounts[tt.id])
			}
			if s.UpgradeCounts != nil {
				t.Errorf("Expected input state untouched, got counts %v", s.UpgradeCounts)
			}
		})
	}
}

func TestPurchaseUpgradeInsufficient(t *testing.T) {
	u, _ := catalog.UpgradeByID("boink_drill")
	s := DefaultState(baseTime)
	s.Balance = u.Cost - 1

	next, err := PurchaseUpgrade(s, u)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
	}
	if !reflect.DeepEqual(next, s) {
		t.Errorf("Expected state unchanged")
	}
}

// TestPurchaseUpgradeRepeatable verifies cost stays fixed across purchases
func TestPurchaseUpgradeRepeatable(t *testing.T) {
	u, _ := catalog.UpgradeByID("strong_fingers")
	s := DefaultState(baseTime)
	s.Balance = u.Cost * 3

	var err error
	for i := 0; i < 3; i++ {
		s, err = PurchaseUpgrade(s, u)
		if err != nil {
			t.Fatalf("Purchase %d failed: %v", i, err)
		}
	}
	if s.Balance != 0 || s.TapPower != 4 || s.UpgradeCounts[u.ID] != 3 {
		t.Errorf("Expected balance 0 tapPower 4 count 3, got %v %d %d", s.Balance, s.TapPower, s.UpgradeCounts[u.ID])
	}
}

func TestMint(t *testing.T) {
	s := DefaultState(baseTime)
	s.Balance = 25000

	next, units, err := Mint(s, constants.ConversionRate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if units != 2 {
		t.Errorf("Expected 2 units, got %d", units)
	}
	if next.Balance != 5000 {
		t.Errorf("Expected balance 5000, got %v", next.Balance)
	}
	if next.ObsidianBalance != 2 {
		t.Errorf("Expected obsidian 2, got %d", next.ObsidianBalance)
	}
}

func TestMintBelowRate(t *testing.T) {
	s := DefaultState(baseTime)
	s.Balance = constants.ConversionRate - 0.5

	next, units, err := Mint(s, constants.ConversionRate)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("Expected ErrInsufficientBalance, got %v", err)
	}
	if units != 0 || !reflect.DeepEqual(next, s) {
		t.Errorf("Expected no change, got units %d", units)
	}
}

func TestToggleLanguageAlternates(t *testing.T) {
	s := DefaultState(baseTime)
	seen := map[locale.Language]int{}
	for i := 0; i < 6; i++ {
		s = ToggleLanguage(s)
		seen[s.Language]++
	}
	if len(seen) != 2 || seen[locale.Arabic] != 3 || seen[locale.English] != 3 {
		t.Errorf("Expected alternation over two values, got %v", seen)
	}
	if s.Language != locale.Default {
		t.Errorf("Expected even toggles to return to %s, got %s", locale.Default, s.Language)
	}
}

func TestConnectWalletKeepsExisting(t *testing.T) {
	s := DefaultState(baseTime)
	s.WalletAddress = "UQfirst"

	next, err := ConnectWallet(s, "UQsecond")
	if !errors.Is(err, ErrWalletConnected) {
		t.Fatalf("Expected ErrWalletConnected, got %v", err)
	}
	if next.WalletAddress != "UQfirst" {
		t.Errorf("Expected address kept, got %s", next.WalletAddress)
	}
}

func TestSettlePurchase(t *testing.T) {
	pack, _ := catalog.ShopItemByID("starter_pack")
	s := DefaultState(baseTime)
	s.TotalEarned = 10

	next := SettlePurchase(s, pack, Receipt{ID: "r1", ItemID: pack.ID})
	if next.Balance != pack.Reward {
		t.Errorf("Expected balance %v, got %v", pack.Reward, next.Balance)
	}
	if next.TotalEarned != 10 {
		t.Errorf("Expected totalEarned untouched, got %v", next.TotalEarned)
	}
	if len(next.Receipts) != 1 || len(s.Receipts) != 0 {
		t.Errorf("Expected one receipt on the new state only")
	}
}

func TestSettlePurchaseZeroReward(t *testing.T) {
	item, _ := catalog.ShopItemByID("infinite_energy")
	s := DefaultState(baseTime)
	s.Balance = 42

	next := SettlePurchase(s, item, Receipt{ID: "r1"})
	if next.Balance != 42 {
		t.Errorf("Expected balance 42, got %v", next.Balance)
	}
}

func TestSettlePurchaseReceiptCap(t *testing.T) {
	item, _ := catalog.ShopItemByID("infinite_energy")
	s := DefaultState(baseTime)
	for i := 0; i < constants.MaxReceipts+5; i++ {
		s = SettlePurchase(s, item, Receipt{ID: string(rune('a' + i))})
	}
	if len(s.Receipts) != constants.MaxReceipts {
		t.Fatalf("Expected %d receipts, got %d", constants.MaxReceipts, len(s.Receipts))
	}
	if s.Receipts[0].ID != string(rune('a'+5)) {
		t.Errorf("Expected oldest receipts dropped, first is %s", s.Receipts[0].ID)
	}
}

func TestNormalizeRepairsZeroFields(t *testing.T) {
	s := GameState{Balance: 50, Energy: 5000}
	next := s.Normalize(baseTime)

	if next.MaxEnergy != constants.InitialEnergy || next.Energy != constants.InitialEnergy {
		t.Errorf("Expected energy capped at %d, got %v/%v", constants.InitialEnergy, next.Energy, next.MaxEnergy)
	}
	if next.TapPower != 1 || next.Level != 1 {
		t.Errorf("Expected tapPower and level 1, got %d and %d", next.TapPower, next.Level)
	}
	if next.Language != locale.Default {
		t.Errorf("Expected language %s, got %s", locale.Default, next.Language)
	}
	if next.TotalEarned != 0 || next.Balance != 50 {
		t.Errorf("Expected balance 50 and totalEarned 0 kept, got %v and %v", next.Balance, next.TotalEarned)
	}
	if !next.LastUpdate.Equal(baseTime) {
		t.Errorf("Expected LastUpdate %v, got %v", baseTime, next.LastUpdate)
	}
}

// TestNormalizeKeepsValidFields verifies a well-formed record passes through unchanged
func TestNormalizeKeepsValidFields(t *testing.T) {
	s := DefaultState(baseTime)
	s.Balance = 50000
	s.TotalEarned = 1200
	s.TapPower = 4
	s.PassiveIncome = 7
	s.Energy = 300
	s.ObsidianBalance = 2
	s.LastUpdate = baseTime.Add(-time.Hour)

	next := s.Normalize(baseTime)
	if next.Balance != s.Balance || next.TotalEarned != s.TotalEarned {
		t.Errorf("Expected balance %v and totalEarned %v, got %v and %v", s.Balance, s.TotalEarned, next.Balance, next.TotalEarned)
	}
	if next.TapPower != 4 || next.PassiveIncome != 7 || next.Energy != 300 || next.ObsidianBalance != 2 {
		t.Errorf("Expected stored fields kept, got %+v", next)
	}
	if !next.LastUpdate.Equal(s.LastUpdate) {
		t.Errorf("Expected LastUpdate %v, got %v", s.LastUpdate, next.LastUpdate)
	}
}

func TestMoteReward(t *testing.T) {
	if got := MoteReward(1); got != 5 {
		t.Errorf("Expected 5, got %v", got)
	}
	if got := MoteReward(7); got != 35 {
		t.Errorf("Expected 35, got %v", got)
	}
}

func TestMilestoneMath(t *testing.T) {
	if got := SimulatedUsers(1000); got != 4_200_500 {
		t.Errorf("Expected 4200500 users, got %d", got)
	}
	if got := MilestonePercent(5_000_000); got != 50 {
		t.Errorf("Expected 50%%, got %v", got)
	}
	if got := MilestonePercent(20_000_000); got != 100 {
		t.Errorf("Expected cap at 100, got %v", got)
	}
	if got := MintProgress(25000, 10000); got != 0.5 {
		t.Errorf("Expected mint progress 0.5, got %v", got)
	}
}
