package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abcedion/engine"
)

// drawHeader draws level and obsidian on the reading-start side, wallet and
// language buttons on the other
func drawHeader(c *ctx) {
	s := c.snap.State
	hdr := c.layout.Header
	fill(c.screen, hdr, ' ', c.pal.Panel)

	lead := c.line(Rect{X: hdr.X + 1, Y: hdr.Y, W: hdr.W - 2, H: 1})
	lead.Row(0, 2,
		[]string{
			fmt.Sprintf("%s %d", c.text.Level, s.Level),
			fmt.Sprintf("◆ %s", FormatInt(s.ObsidianBalance)),
		},
		[]tcell.Style{c.pal.Accent, c.pal.Gold},
	)

	var wallet string
	walletStyle := c.pal.Button
	switch {
	case s.HasWallet():
		wallet = "● " + ShortWallet(s.WalletAddress)
		walletStyle = c.pal.Success
	case c.snap.Connecting:
		wallet = button(c.text.ConnectWallet + " " + c.text.Connecting)
	default:
		wallet = button(c.text.ConnectWallet)
	}
	lang := button(c.text.LangBadge)

	// Trailing side: mirror of the leading row
	trail := lead.Mirrored()
	rects := trail.Row(0, 1, []string{lang, wallet}, []tcell.Style{c.pal.Button, walletStyle})
	c.hits.Add(rects[0], Target{Kind: TargetLanguage})
	if !s.HasWallet() {
		c.hits.Add(rects[1], Target{Kind: TargetWallet})
	}
}

type tab struct {
	view  engine.View
	icon  string
	label func(c *ctx) string
}

var tabs = []tab{
	{engine.ViewHome, "⌂", func(c *ctx) string { return c.text.Home }},
	{engine.ViewUpgrades, "⚒", func(c *ctx) string { return c.text.Upgrades }},
	{engine.ViewShop, "₮", func(c *ctx) string { return c.text.Shop }},
	{engine.ViewTasks, "✓", func(c *ctx) string { return c.text.Tasks }},
	{engine.ViewEriDrop, "✦", func(c *ctx) string { return c.text.EriDrop }},
	{engine.ViewInvite, "☺", func(c *ctx) string { return c.text.Squad }},
}

// drawNav draws the tab bar; tabs run right to left in RTL locales
func drawNav(c *ctx) {
	nav := c.layout.Nav
	sep := strings.Repeat("─", nav.W)
	drawText(c.screen, nav.X, nav.Y, c.pal.Muted, sep)

	y := nav.Y + 1
	n := len(tabs)
	for i, t := range tabs {
		slot := i
		if c.rtl {
			slot = n - 1 - i
		}
		x0 := nav.X + slot*nav.W/n
		x1 := nav.X + (slot+1)*nav.W/n
		cell := Rect{X: x0, Y: y, W: x1 - x0, H: 1}

		style := c.pal.Muted
		if c.snap.View == t.view {
			style = c.pal.Accent.Underline(true)
		}
		label := fmt.Sprintf("%d%s %s", i+1, t.icon, t.label(c))
		newLine(c.screen, cell, c.rtl).Draw(label, AlignCenter, style)
		c.hits.Add(Rect{X: x0, Y: nav.Y, W: cell.W, H: 2}, Target{Kind: TargetTab, View: t.view})
	}
}

// drawStatus shows the last message, or the key help when there is none
func drawStatus(c *ctx) {
	st := c.layout.Status
	msg, style := c.frame.Message, c.pal.Muted
	if msg == "" {
		msg = c.text.Help
		if c.frame.Muted {
			msg = "♪✕  " + msg
		}
	} else if c.frame.Error {
		style = c.pal.Danger
	} else {
		style = c.pal.Success
	}
	c.line(Rect{X: st.X + 1, Y: st.Y, W: st.W - 2, H: 1}).Draw(msg, AlignCenter, style)
}

// drawOverlay draws the status counters in a box over the content area
func drawOverlay(c *ctx) {
	area := c.layout.Content
	width := 0
	for _, l := range c.frame.Overlay {
		if w := TextWidth(l); w > width {
			width = w
		}
	}
	width += 4
	if width > area.W {
		width = area.W
	}
	height := len(c.frame.Overlay) + 2
	if height > area.H {
		height = area.H
	}
	box := Rect{X: area.X + area.W - width, Y: area.Y, W: width, H: height}
	drawBox(c, box, c.pal.Panel)
	for i, l := range c.frame.Overlay {
		if i+1 >= box.H-1 {
			break
		}
		drawText(c.screen, box.X+2, box.Y+1+i, c.pal.Panel, Truncate(l, box.W-4))
	}
}

// drawBox fills r and outlines it with light box-drawing lines
func drawBox(c *ctx, r Rect, style tcell.Style) {
	fill(c.screen, r, ' ', style)
	if r.W < 2 || r.H < 2 {
		return
	}
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		c.screen.SetContent(x, r.Y, '─', nil, style)
		c.screen.SetContent(x, r.Y+r.H-1, '─', nil, style)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		c.screen.SetContent(r.X, y, '│', nil, style)
		c.screen.SetContent(r.X+r.W-1, y, '│', nil, style)
	}
	c.screen.SetContent(r.X, r.Y, '┌', nil, style)
	c.screen.SetContent(r.X+r.W-1, r.Y, '┐', nil, style)
	c.screen.SetContent(r.X, r.Y+r.H-1, '└', nil, style)
	c.screen.SetContent(r.X+r.W-1, r.Y+r.H-1, '┘', nil, style)
}
