// Package catalog lists the fixed game content: upgrades, shop items and daily tasks.
package catalog

import "github.com/lixenwraith/abcedion/locale"

// UpgradeKind selects which stat an upgrade raises
type UpgradeKind string

const (
	UpgradeTap     UpgradeKind = "tap"
	UpgradePassive UpgradeKind = "passive"
)

// Upgrade is a repeatable, fixed-cost stat increase
type Upgrade struct {
	ID          string
	Name        locale.Text
	Description locale.Text
	Cost        float64
	Increase    float64
	Kind        UpgradeKind
	Icon        rune
}

// Upgrades is the upgrade list in display order
var Upgrades = []Upgrade{
	{
		ID:          "strong_fingers",
		Name:        locale.Text{AR: "أصابع قوية", EN: "Strong Fingers"},
		Description: locale.Text{AR: "زيادة قوة النقر بمقدار +1", EN: "Increase tapping power by +1"},
		Cost:        100,
		Increase:    1,
		Kind:        UpgradeTap,
		Icon:        '☝',
	},
	{
		ID:          "auto_clicker",
		Name:        locale.Text{AR: "خنزير صغير", EN: "Baby Piggy"},
		Description: locale.Text{AR: "يولد +2 نقطة في الثانية", EN: "Generates +2 points per second"},
		Cost:        500,
		Increase:    2,
		Kind:        UpgradePassive,
		Icon:        '♣',
	},
	{
		ID:          "boink_drill",
		Name:        locale.Text{AR: "حفار النقاط", EN: "Points Drill"},
		Description: locale.Text{AR: "يولد +10 نقاط في الثانية", EN: "Generates +10 points per second"},
		Cost:        2500,
		Increase:    10,
		Kind:        UpgradePassive,
		Icon:        '⚙',
	},
	{
		ID:          "mega_tap",
		Name:        locale.Text{AR: "نقرة خارقة", EN: "Mega Tap"},
		Description: locale.Text{AR: "قفزة هائلة +5 في قوة النقر", EN: "Massive +5 jump in tap power"},
		Cost:        1500,
		Increase:    5,
		Kind:        UpgradeTap,
		Icon:        '⚡',
	},
	{
		ID:          "gold_farm",
		Name:        locale.Text{AR: "مزرعة ذهبية", EN: "Golden Farm"},
		Description: locale.Text{AR: "تولد +50 نقطة في الثانية", EN: "Generates +50 points per second"},
		Cost:        10000,
		Increase:    50,
		Kind:        UpgradePassive,
		Icon:        '♜',
	},
}

// UpgradeByID finds an upgrade by identifier
func UpgradeByID(id string) (Upgrade, bool) {
	for _, u := range Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}
