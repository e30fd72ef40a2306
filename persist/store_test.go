package persist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/locale"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.toml"))

	s, err := store.Load(now)
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultState(now), s)
	assert.False(t, store.Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "save.toml"))

	s := engine.DefaultState(now)
	s.Balance = 12345.5
	s.TotalEarned = 20000
	s.TapPower = 6
	s.PassiveIncome = 52
	s.Language = locale.English
	s.WalletAddress = "UQ0123456789abcdef0123456789abcdef01234567"
	s.ObsidianBalance = 3
	s.CustomObsidianIcon = "/data/logo.png"
	s.UpgradeCounts = map[string]int{"strong_fingers": 2, "gold_farm": 1}
	s.TaskClaims = map[string]time.Time{"follow_tg": now.Add(-time.Hour)}
	s.InviteCode = "abc123"
	s.Receipts = []engine.Receipt{{ID: "r1", ItemID: "starter_pack", PriceTon: 0.5, Reward: 50000, ResolvedAt: now}}

	require.NoError(t, store.Save(s))
	require.True(t, store.Exists())

	got, err := store.Load(now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, s.Balance, got.Balance)
	assert.Equal(t, s.TapPower, got.TapPower)
	assert.Equal(t, s.PassiveIncome, got.PassiveIncome)
	assert.Equal(t, s.Language, got.Language)
	assert.Equal(t, s.WalletAddress, got.WalletAddress)
	assert.Equal(t, s.ObsidianBalance, got.ObsidianBalance)
	assert.Equal(t, s.CustomObsidianIcon, got.CustomObsidianIcon)
	assert.Equal(t, s.UpgradeCounts, got.UpgradeCounts)
	assert.Equal(t, s.InviteCode, got.InviteCode)
	assert.True(t, s.LastUpdate.Equal(got.LastUpdate))
	assert.True(t, s.TaskClaims["follow_tg"].Equal(got.TaskClaims["follow_tg"]))
	require.Len(t, got.Receipts, 1)
	assert.Equal(t, "starter_pack", got.Receipts[0].ItemID)
}

// TestSettledPurchaseKeepsTotalEarned verifies a shop reward credited to the
// balance alone survives a reload without inflating lifetime earnings
func TestSettledPurchaseKeepsTotalEarned(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.toml"))

	item, ok := catalog.ShopItemByID("starter_pack")
	require.True(t, ok)
	s := engine.SettlePurchase(engine.DefaultState(now), item, engine.Receipt{ID: "r1", ItemID: item.ID, Reward: item.Reward, ResolvedAt: now})
	require.Greater(t, s.Balance, s.TotalEarned)

	require.NoError(t, store.Save(s))
	got, err := store.Load(now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, s.Balance, got.Balance)
	assert.Equal(t, s.TotalEarned, got.TotalEarned)
}

// TestSaveLeavesNoTempFiles verifies the atomic rename cleans up after itself
func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "save.toml"))

	for i := 0; i < 3; i++ {
		s := engine.DefaultState(now)
		s.Balance = float64(i)
		require.NoError(t, store.Save(s))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "save.toml", entries[0].Name())
}

func TestLoadOlderRecordFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	old := "key = \"abcedion_game_state_v7\"\n\n[state]\nbalance = 300.0\ntotal_earned = 300.0\n"
	require.NoError(t, os.WriteFile(path, []byte(old), 0o644))

	s, err := NewStore(path).Load(now)
	require.NoError(t, err)
	assert.Equal(t, 300.0, s.Balance)
	assert.Equal(t, int64(1), s.TapPower)
	assert.Equal(t, 1000.0, s.MaxEnergy)
	assert.Equal(t, locale.Default, s.Language)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	require.NoError(t, os.WriteFile(path, []byte("balance = [[["), 0o644))

	s, err := NewStore(path).Load(now)
	assert.Error(t, err)
	assert.Equal(t, engine.DefaultState(now), s)
}

func TestLoadForeignKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.toml")
	require.NoError(t, os.WriteFile(path, []byte("key = \"other\"\n"), 0o644))

	_, err := NewStore(path).Load(now)
	assert.ErrorIs(t, err, ErrForeignSave)
}

func TestDefaultPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "abcedion", "save.toml"), DefaultPath())
}
