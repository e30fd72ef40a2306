package catalog

import "github.com/lixenwraith/abcedion/locale"

// ShopItem is a simulated real-currency purchase; Reward is credited to balance on settlement
type ShopItem struct {
	ID       string
	Name     locale.Text
	PriceTon float64
	Reward   float64
	Icon     rune
}

// ShopItems is the shop list in display order
var ShopItems = []ShopItem{
	{
		ID:       "starter_pack",
		Name:     locale.Text{AR: "باقة المبتدئين", EN: "Starter Pack"},
		PriceTon: 0.5,
		Reward:   50000,
		Icon:     '▣',
	},
	{
		ID:       "boink_vault",
		Name:     locale.Text{AR: "خزنة النقاط", EN: "Points Vault"},
		PriceTon: 2.0,
		Reward:   250000,
		Icon:     '◆',
	},
	{
		ID:       "infinite_energy",
		Name:     locale.Text{AR: "طاقة لا نهائية (ساعة)", EN: "Infinite Energy (1h)"},
		PriceTon: 1.5,
		Reward:   0,
		Icon:     '⚡',
	},
}

// ShopItemByID finds a shop item by identifier
func ShopItemByID(id string) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}
