package render

import (
	"fmt"

	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/engine"
)

// drawEriDrop shows the simulated community size against the milestone
func drawEriDrop(c *ctx) {
	area := c.layout.Content
	users := engine.SimulatedUsers(c.snap.State.TotalEarned)
	pct := engine.MilestonePercent(users)
	row := func(y int) Line { return c.line(Rect{X: area.X + 1, Y: y, W: area.W - 2, H: 1}) }

	y := area.Y
	row(y).Draw("✦ "+c.text.EriDropTitle+" ✦", AlignCenter, c.pal.Gold.Bold(true))
	row(y+1).Draw(c.text.EriDropSlogan, AlignCenter, c.pal.Accent)
	row(y+3).Draw(c.text.EriDropDesc, AlignCenter, c.pal.Base)

	row(y+5).Draw(c.text.EriDropProgress, AlignStart, c.pal.Muted)
	row(y+5).Mirrored().Draw(percentLabel(pct), AlignStart, c.pal.Gold)

	barW := area.W - 2
	if barW > constants.BarMaxWidth*2 {
		barW = constants.BarMaxWidth * 2
	}
	drawBar(c.screen, Rect{X: area.X + (area.W-barW)/2, Y: y + 6, W: barW, H: 1}, pct/100, c.pal, c.rtl, c.pal.Accent)

	row(y+7).Draw(fmt.Sprintf("%s %s", FormatInt(users), c.text.Users), AlignStart, c.pal.Base)
	row(y+7).Mirrored().Draw(fmt.Sprintf("%s: %s", c.text.Milestone, FormatInt(constants.MilestoneUsers)), AlignStart, c.pal.Muted)
}

// drawInvite shows the invite button and, once shared, the link itself
func drawInvite(c *ctx) {
	area := c.layout.Content
	row := func(y int) Line { return c.line(Rect{X: area.X + 1, Y: y, W: area.W - 2, H: 1}) }

	y := area.Y + area.H/4
	row(y).Draw("☺ "+c.text.InviteFriends, AlignCenter, c.pal.Accent.Bold(true))
	row(y+2).Draw(c.text.InviteDesc, AlignCenter, c.pal.Muted)

	btn := row(y+4).Draw(button(c.text.InviteBtn), AlignCenter, c.pal.Button)
	c.hits.Add(btn, Target{Kind: TargetInvite})
	c.hits.AddRow(engine.ViewInvite, Target{Kind: TargetInvite})

	if c.frame.InviteLink != "" {
		row(y+6).Draw(c.text.InviteManual, AlignCenter, c.pal.Muted)
		// URLs stay left to right in both locales
		newLine(c.screen, Rect{X: area.X + 1, Y: y + 7, W: area.W - 2, H: 1}, false).Draw(c.frame.InviteLink, AlignCenter, c.pal.Gold)
	}
}
