package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/engine"
)

// drawModal draws the payment dialog for the pending item
// A blocking region covers the screen so clicks outside the buttons do nothing
func drawModal(c *ctx) {
	item := c.snap.PendingItem
	c.hits.Add(Rect{X: 0, Y: 0, W: c.layout.Width, H: c.layout.Height}, Target{Kind: TargetBlocked})

	area := c.layout.Content
	w := constants.ModalWidth
	if w > area.W {
		w = area.W
	}
	h := 9
	if h > area.H {
		h = area.H
	}
	box := Rect{X: area.X + (area.W-w)/2, Y: area.Y + (area.H-h)/2, W: w, H: h}
	drawBox(c, box, c.pal.Panel)

	row := func(i int) Line { return c.line(Rect{X: box.X + 2, Y: box.Y + 1 + i, W: box.W - 4, H: 1}) }
	row(0).Draw(c.text.ConfirmPayment, AlignCenter, c.pal.Accent.Bold(true))
	row(2).Draw(fmt.Sprintf("%c %s", item.Icon, item.Name.In(c.lang)), AlignStart, c.pal.Panel)
	row(3).Draw(c.text.Price, AlignStart, c.pal.Panel)
	row(3).Mirrored().Draw(FormatTon(item.PriceTon), AlignStart, c.pal.Gold)
	row(4).Draw(c.text.SendTo, AlignStart, c.pal.Panel)
	newLine(c.screen, Rect{X: box.X + 2, Y: box.Y + 6, W: box.W - 4, H: 1}, false).Draw(constants.OwnerWallet, AlignCenter, c.pal.Muted)

	if c.snap.Purchase == engine.PhaseProcessing {
		row(6).Draw("⟳ "+c.text.Processing, AlignCenter, c.pal.Accent)
		return
	}
	items := []string{button(c.text.PayWithTon), button(c.text.Cancel)}
	width := TextWidth(items[0]) + 2 + TextWidth(items[1])
	if width > box.W-4 {
		width = box.W - 4
	}
	span := Rect{X: box.X + (box.W-width)/2, Y: box.Y + 7, W: width, H: 1}
	rects := c.line(span).Row(0, 2, items, []tcell.Style{c.pal.Button, c.pal.Muted.Reverse(true)})
	c.hits.Add(rects[0], Target{Kind: TargetConfirm})
	c.hits.Add(rects[1], Target{Kind: TargetCancel})
}
