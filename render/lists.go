package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/engine"
)

// listItem is one two-row entry of a list view
type listItem struct {
	target Target
	icon   rune
	title  string
	detail string
	action string
	style  tcell.Style // action style
}

// drawList draws items below the header rows starting at top, scrolled so the
// selected item stays visible; every item is registered for keyboard selection
func drawList(c *ctx, view engine.View, top int, items []listItem) {
	area := c.layout.Content
	const rowsPer = 2
	visible := (area.Y + area.H - top) / rowsPer
	if visible < 1 {
		visible = 1
	}
	first := 0
	if sel := c.frame.Selected; sel >= visible {
		first = sel - visible + 1
	}

	for i, it := range items {
		c.hits.AddRow(view, it.target)
		if i < first || i >= first+visible {
			continue
		}
		y := top + (i-first)*rowsPer
		rect := Rect{X: area.X, Y: y, W: area.W, H: rowsPer}
		base := c.pal.Base
		if i == c.frame.Selected {
			base = c.pal.Selected
			fill(c.screen, Rect{X: area.X, Y: y, W: area.W, H: 1}, ' ', base)
		}

		head := c.line(Rect{X: area.X + 1, Y: y, W: area.W - 2, H: 1})
		action := head.Mirrored().Draw(it.action, AlignStart, it.style)
		titleW := area.W - 4 - action.W
		head.Draw(Truncate(fmt.Sprintf("%c %s", it.icon, it.title), titleW), AlignStart, base)
		if it.detail != "" {
			c.line(Rect{X: area.X + 3, Y: y + 1, W: area.W - 6, H: 1}).Draw(it.detail, AlignStart, c.pal.Muted)
		}
		c.hits.Add(rect, it.target)
	}
}

func drawTitle(c *ctx, title string) int {
	area := c.layout.Content
	c.line(Rect{X: area.X + 1, Y: area.Y, W: area.W - 2, H: 1}).Draw(title, AlignStart, c.pal.Accent.Bold(true))
	return area.Y + 2
}

// drawUpgrades lists upgrades with owned count and affordability
func drawUpgrades(c *ctx) {
	s := c.snap.State
	top := drawTitle(c, c.text.Upgrades)
	items := make([]listItem, 0, len(catalog.Upgrades))
	for _, u := range catalog.Upgrades {
		title := u.Name.In(c.lang)
		if n := s.UpgradeCounts[u.ID]; n > 0 {
			title = fmt.Sprintf("%s ×%d", title, n)
		}
		style := c.pal.Button
		if s.Balance < u.Cost {
			style = c.pal.Muted
		}
		items = append(items, listItem{
			target: Target{Kind: TargetUpgrade, ID: u.ID},
			icon:   u.Icon,
			title:  title,
			detail: u.Description.In(c.lang),
			action: button("◉ " + FormatPoints(u.Cost)),
			style:  style,
		})
	}
	drawList(c, engine.ViewUpgrades, top, items)
}

// drawShop lists the simulated purchases under the wallet line
func drawShop(c *ctx) {
	area := c.layout.Content
	s := c.snap.State
	top := drawTitle(c, c.text.Shop)

	walletRow := c.line(Rect{X: area.X + 1, Y: area.Y, W: area.W - 2, H: 1}).Mirrored()
	switch {
	case s.HasWallet():
		walletRow.Draw("● "+c.text.WalletConnected+" "+ShortWallet(s.WalletAddress), AlignStart, c.pal.Success)
	case c.snap.Connecting:
		walletRow.Draw(button(c.text.ConnectWallet+" "+c.text.Connecting), AlignStart, c.pal.Muted)
	default:
		r := walletRow.Draw(button(c.text.ConnectWallet), AlignStart, c.pal.Button)
		c.hits.Add(r, Target{Kind: TargetWallet})
	}

	items := make([]listItem, 0, len(catalog.ShopItems))
	for _, it := range catalog.ShopItems {
		detail := c.text.Boost
		if it.Reward > 0 {
			detail = fmt.Sprintf("+%s %s", FormatPoints(it.Reward), c.text.Points)
		}
		items = append(items, listItem{
			target: Target{Kind: TargetShopItem, ID: it.ID},
			icon:   it.Icon,
			title:  it.Name.In(c.lang),
			detail: detail,
			action: button(FormatTon(it.PriceTon)),
			style:  c.pal.Button,
		})
	}
	drawList(c, engine.ViewShop, top, items)
}

// drawTasks lists daily tasks; claimed ones show a done marker until reset
func drawTasks(c *ctx) {
	top := drawTitle(c, c.text.DailyTasks)
	items := make([]listItem, 0, len(catalog.Tasks))
	for _, t := range catalog.Tasks {
		action, style := button(c.text.Claim), c.pal.Button
		if t.Action == catalog.ActionPlay {
			action = button("▶ " + c.text.Play)
		}
		if !c.snap.TaskAvailable[t.ID] {
			action, style = "✓ "+c.text.Claimed, c.pal.Success
		}
		items = append(items, listItem{
			target: Target{Kind: TargetTask, ID: t.ID},
			icon:   '★',
			title:  t.Title.In(c.lang),
			detail: fmt.Sprintf("+%s %s", FormatPoints(t.Reward), c.text.Points),
			action: action,
			style:  style,
		})
	}
	drawList(c, engine.ViewTasks, top, items)
}
