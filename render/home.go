package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abcedion/constants"
)

// drawHome draws balance, tappable icon, energy and the mint panel, then motes
// and click markers on top
func drawHome(c *ctx, icon *Icon) {
	area := c.layout.Content
	s := c.snap.State
	row := func(y int) Line { return c.line(Rect{X: area.X, Y: y, W: area.W, H: 1}) }

	y := area.Y
	row(y).Draw(c.text.TotalPoints, AlignCenter, c.pal.Muted)
	balanceStyle := c.pal.Gold
	if c.snap.Pulsing {
		balanceStyle = c.pal.Pulse
	}
	row(y+1).Draw(" "+FormatPoints(s.Balance)+" ", AlignCenter, balanceStyle)
	row(y+2).Draw(fmt.Sprintf("+%s %s", FormatPoints(s.PassiveIncome), c.text.PassiveIncome), AlignCenter, c.pal.Muted)

	bottom := area.Y + area.H
	energyY := bottom - 3
	mintY := bottom - 2
	mintBarY := bottom - 1

	iconTop := y + 4
	iconRows := energyY - 1 - iconTop
	iconRect := drawIcon(c, icon, area, iconTop, iconRows)
	c.hits.Add(iconRect, Target{Kind: TargetIcon})
	if s.Energy < constants.TapEnergyCost && !iconRect.Empty() {
		mid := iconRect.Y + iconRect.H/2
		c.line(Rect{X: area.X, Y: mid, W: area.W, H: 1}).Draw(" "+c.text.OutOfEnergy+" ", AlignCenter, c.pal.Danger.Reverse(true))
	}

	drawEnergy(c, area, energyY)
	drawMint(c, area, mintY, mintBarY)

	for _, m := range c.snap.Motes {
		x, my := MoteCell(m, area)
		style := c.pal.Mote
		if c.snap.Now.Sub(m.CreatedAt) > constants.MoteLifespan*3/4 {
			style = c.pal.Fading
		}
		c.screen.SetContent(x, my, '✦', nil, style)
		c.hits.Add(Rect{X: x - 1, Y: my, W: 3, H: 1}, Target{Kind: TargetMote, Mote: m.ID})
	}

	for _, e := range c.snap.Effects {
		age := float64(c.snap.Now.Sub(e.CreatedAt)) / float64(constants.ClickEffectDuration)
		rise := int(math.Floor(age * 3))
		label := "+" + FormatInt(e.Value)
		drawText(c.screen, e.X-TextWidth(label)/2, e.Y-1-rise, c.pal.Gold, label)
	}
}

// drawIcon centers icon horizontally and crops it vertically to rows
func drawIcon(c *ctx, icon *Icon, area Rect, top, rows int) Rect {
	if icon == nil || icon.Width == 0 || rows <= 0 {
		return Rect{}
	}
	h := icon.Height
	skip := 0
	if h > rows {
		skip = (h - rows) / 2
		h = rows
	}
	x0 := area.X + (area.W-icon.Width)/2
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < icon.Width; dx++ {
			cell := icon.At(dx, dy+skip)
			style := c.pal.Base
			if !c.pal.Mono {
				style = style.Foreground(cell.Fg).Background(cell.Bg)
			}
			c.screen.SetContent(x0+dx, top+dy, cell.Rune, nil, style)
		}
	}
	return Rect{X: x0, Y: top, W: icon.Width, H: h}
}

func drawEnergy(c *ctx, area Rect, y int) {
	s := c.snap.State
	label := fmt.Sprintf("⚡ %s %s/%s", c.text.Energy, FormatPoints(s.Energy), FormatPoints(s.MaxEnergy))
	barW := area.W - TextWidth(label) - 3
	if barW > constants.BarMaxWidth {
		barW = constants.BarMaxWidth
	}
	total := TextWidth(label) + 1 + barW
	x0 := area.X + (area.W-total)/2

	line := c.line(Rect{X: x0, Y: y, W: total, H: 1})
	r := line.Draw(label, AlignStart, c.pal.Energy)

	barX := r.X + r.W + 1
	if c.rtl {
		barX = x0
	}
	progress := 0.0
	if s.MaxEnergy > 0 {
		progress = s.Energy / s.MaxEnergy
	}
	drawBar(c.screen, Rect{X: barX, Y: y, W: barW, H: 1}, progress, c.pal, c.rtl, c.pal.Energy)
}

func drawMint(c *ctx, area Rect, y, barY int) {
	ready := c.snap.MintReady()
	caption := c.text.PointsToObs
	captionStyle := c.pal.Muted
	if ready {
		caption = c.text.MintReady
		captionStyle = c.pal.Success
	}
	btnStyle := c.pal.Button
	if !ready {
		btnStyle = c.pal.Muted.Reverse(true)
	}

	items := []string{button("◆ " + c.text.Mint), caption}
	width := TextWidth(items[0]) + 2 + TextWidth(items[1])
	x0 := area.X + (area.W-width)/2
	rects := c.line(Rect{X: x0, Y: y, W: width, H: 1}).Row(0, 2, items, []tcell.Style{btnStyle, captionStyle})
	c.hits.Add(rects[0], Target{Kind: TargetMint})

	barW := area.W
	if barW > constants.BarMaxWidth {
		barW = constants.BarMaxWidth
	}
	label := fmt.Sprintf(" %s", percentLabel(c.snap.MintProgress()*100))
	barW -= TextWidth(label)
	bx := area.X + (area.W-barW-TextWidth(label))/2
	drawBar(c.screen, Rect{X: bx, Y: barY, W: barW, H: 1}, c.snap.MintProgress(), c.pal, c.rtl, c.pal.Accent)
	drawText(c.screen, bx+barW, barY, c.pal.Muted, label)
}
