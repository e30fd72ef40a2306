package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/locale"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func testSnapshot(lang locale.Language, view engine.View) engine.Snapshot {
	s := engine.DefaultState(testNow)
	s.Language = lang
	avail := make(map[string]bool)
	for _, t := range catalog.Tasks {
		avail[t.ID] = true
	}
	return engine.Snapshot{
		Now:            testNow,
		State:          s,
		View:           view,
		TaskAvailable:  avail,
		ConversionRate: 10000,
	}
}

func drawTest(t *testing.T, snap engine.Snapshot, frame Frame) (*HitMap, string) {
	t.Helper()
	screen := newTestScreen(t, 80, 24)
	r := NewRenderer(screen, true)
	hits := r.Draw(snap, frame)
	return hits, screenText(screen)
}

func TestDrawHome(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewHome)
	snap.State.Balance = 12345
	snap.Motes = []engine.Mote{{ID: 9, X: 50, Y: 50, Value: 5, CreatedAt: testNow}}

	hits, text := drawTest(t, snap, Frame{Selected: -1})
	assert.Contains(t, text, "Level 1")
	assert.Contains(t, text, "12,345")
	assert.Contains(t, text, "Abcedion Points")
	assert.NotContains(t, text, "Out of Energy!")

	_, ok := hits.Find(TargetIcon)
	assert.True(t, ok)
	_, ok = hits.Find(TargetMint)
	assert.True(t, ok)

	area := ComputeLayout(80, 24).Content
	x, y := MoteCell(snap.Motes[0], area)
	tgt, ok := hits.At(x, y)
	require.True(t, ok)
	assert.Equal(t, TargetMote, tgt.Kind)
	assert.Equal(t, uint64(9), tgt.Mote)

	tgt, ok = hits.At(x+1, y)
	require.True(t, ok)
	assert.Equal(t, TargetMote, tgt.Kind, "mote hit box is wider than its glyph")
}

func TestDrawHomeOutOfEnergy(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewHome)
	snap.State.Energy = 0
	_, text := drawTest(t, snap, Frame{Selected: -1})
	assert.Contains(t, text, "Out of Energy!")
}

func TestDrawHomeMintReady(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewHome)
	_, text := drawTest(t, snap, Frame{Selected: -1})
	assert.NotContains(t, text, "Ready to Mint")

	snap.State.Balance = 25000
	_, text = drawTest(t, snap, Frame{Selected: -1})
	assert.Contains(t, text, locale.Lookup(locale.English).MintReady)
	assert.Contains(t, text, "50.00%")
}

func TestHeaderMirrorsInRTL(t *testing.T) {
	hits, _ := drawTest(t, testSnapshot(locale.English, engine.ViewHome), Frame{Selected: -1})
	lang, ok := hits.Find(TargetLanguage)
	require.True(t, ok)
	assert.Greater(t, lang.X, 40, "language button trails on the right in ltr")

	hits, _ = drawTest(t, testSnapshot(locale.Arabic, engine.ViewHome), Frame{Selected: -1})
	lang, ok = hits.Find(TargetLanguage)
	require.True(t, ok)
	assert.Less(t, lang.X, 40, "language button trails on the left in rtl")
}

func TestNavTabs(t *testing.T) {
	hits, _ := drawTest(t, testSnapshot(locale.English, engine.ViewHome), Frame{Selected: -1})
	tgt, ok := hits.At(1, 23)
	require.True(t, ok)
	assert.Equal(t, TargetTab, tgt.Kind)
	assert.Equal(t, engine.ViewHome, tgt.View)

	tgt, ok = hits.At(79, 23)
	require.True(t, ok)
	assert.Equal(t, engine.ViewInvite, tgt.View)

	hits, _ = drawTest(t, testSnapshot(locale.Arabic, engine.ViewHome), Frame{Selected: -1})
	tgt, ok = hits.At(1, 23)
	require.True(t, ok)
	assert.Equal(t, engine.ViewInvite, tgt.View, "tabs run right to left")
}

func TestWalletButton(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewHome)
	hits, text := drawTest(t, snap, Frame{Selected: -1})
	_, ok := hits.Find(TargetWallet)
	assert.True(t, ok)
	assert.Contains(t, text, "Connect Wallet")

	snap.State.WalletAddress = "UQ" + strings.Repeat("0", 37) + "abc"
	hits, text = drawTest(t, snap, Frame{Selected: -1})
	_, ok = hits.Find(TargetWallet)
	assert.False(t, ok, "connected wallet is not clickable")
	assert.Contains(t, text, "UQ00...abc")
}

func TestDrawUpgrades(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewUpgrades)
	snap.State.UpgradeCounts = map[string]int{"mega_tap": 2}

	hits, text := drawTest(t, snap, Frame{Selected: 0})
	rows := hits.Rows(engine.ViewUpgrades)
	require.Len(t, rows, len(catalog.Upgrades))
	for i, u := range catalog.Upgrades {
		assert.Equal(t, TargetUpgrade, rows[i].Kind)
		assert.Equal(t, u.ID, rows[i].ID)
	}
	assert.Contains(t, text, "Strong Fingers")
	assert.Contains(t, text, "Mega Tap ×2")
	assert.Contains(t, text, "1,500")
}

func TestDrawShopAndTasks(t *testing.T) {
	hits, text := drawTest(t, testSnapshot(locale.English, engine.ViewShop), Frame{Selected: -1})
	require.Len(t, hits.Rows(engine.ViewShop), len(catalog.ShopItems))
	assert.Contains(t, text, "0.5 TON")
	assert.Contains(t, text, "+50,000 Points")
	assert.Contains(t, text, "BOOST")

	snap := testSnapshot(locale.English, engine.ViewTasks)
	snap.TaskAvailable["follow_tg"] = false
	hits, text = drawTest(t, snap, Frame{Selected: -1})
	require.Len(t, hits.Rows(engine.ViewTasks), len(catalog.Tasks))
	assert.Contains(t, text, "✓ Done")
	assert.Contains(t, text, "Play")
}

func TestDrawEriDrop(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewEriDrop)
	snap.State.TotalEarned = 1_000_000
	_, text := drawTest(t, snap, Frame{Selected: -1})
	assert.Contains(t, text, "4,700,000 Users")
	assert.Contains(t, text, "47.00%")
	assert.Contains(t, text, "10,000,000")
}

func TestDrawInvite(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewInvite)
	hits, text := drawTest(t, snap, Frame{Selected: -1})
	_, ok := hits.Find(TargetInvite)
	assert.True(t, ok)
	assert.NotContains(t, text, "https://")

	_, text = drawTest(t, snap, Frame{Selected: -1, InviteLink: "https://t.me/x?start=abc"})
	assert.Contains(t, text, "https://t.me/x?start=abc")
}

func TestDrawModal(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewShop)
	item, _ := catalog.ShopItemByID("starter_pack")
	snap.PendingItem = &item
	snap.Purchase = engine.PhasePending

	hits, text := drawTest(t, snap, Frame{Selected: -1})
	assert.Contains(t, text, "Starter Pack")

	tgt, ok := hits.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, TargetBlocked, tgt.Kind, "modal blocks the header")

	confirm, ok := hits.Find(TargetConfirm)
	require.True(t, ok)
	tgt, _ = hits.At(confirm.X, confirm.Y)
	assert.Equal(t, TargetConfirm, tgt.Kind)
	_, ok = hits.Find(TargetCancel)
	assert.True(t, ok)

	snap.Purchase = engine.PhaseProcessing
	hits, _ = drawTest(t, snap, Frame{Selected: -1})
	_, ok = hits.Find(TargetConfirm)
	assert.False(t, ok, "no buttons while processing")
	_, ok = hits.Find(TargetCancel)
	assert.False(t, ok)
}

func TestDrawTooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	hits := NewRenderer(screen, false).Draw(testSnapshot(locale.English, engine.ViewHome), Frame{Selected: -1})
	assert.Contains(t, screenText(screen), "terminal too small")
	_, ok := hits.Find(TargetIcon)
	assert.False(t, ok)
}

func TestStatusLine(t *testing.T) {
	snap := testSnapshot(locale.English, engine.ViewHome)
	_, text := drawTest(t, snap, Frame{Selected: -1, Muted: true})
	assert.Contains(t, text, "♪✕")

	_, text = drawTest(t, snap, Frame{Selected: -1, Message: "saved"})
	assert.Contains(t, text, "saved")

	_, text = drawTest(t, snap, Frame{Selected: -1, Overlay: []string{"taps=3"}})
	assert.Contains(t, text, "taps=3")
}
