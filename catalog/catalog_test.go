package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpgradesWellFormed verifies every upgrade has a cost, an increase and a known kind
func TestUpgradesWellFormed(t *testing.T) {
	ids := map[string]bool{}
	for _, u := range Upgrades {
		assert.False(t, ids[u.ID], "duplicate upgrade id %s", u.ID)
		ids[u.ID] = true
		assert.Greater(t, u.Cost, 0.0, u.ID)
		assert.Greater(t, u.Increase, 0.0, u.ID)
		assert.Contains(t, []UpgradeKind{UpgradeTap, UpgradePassive}, u.Kind, u.ID)
		assert.NotEmpty(t, u.Name.AR, u.ID)
		assert.NotEmpty(t, u.Name.EN, u.ID)
	}
}

func TestLookups(t *testing.T) {
	u, ok := UpgradeByID("mega_tap")
	require.True(t, ok)
	assert.Equal(t, UpgradeTap, u.Kind)
	assert.Equal(t, 1500.0, u.Cost)

	_, ok = UpgradeByID("missing")
	assert.False(t, ok)

	it, ok := ShopItemByID("infinite_energy")
	require.True(t, ok)
	assert.Zero(t, it.Reward)

	task, ok := TaskByID("watch_video")
	require.True(t, ok)
	assert.Equal(t, 10000.0, task.Reward)

	_, ok = TaskByID("")
	assert.False(t, ok)
}
