package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions, obsidian-and-indigo theme
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 18)    // Near-black obsidian
	RgbPanel      = tcell.NewRGBColor(24, 22, 40)    // Raised panel
	RgbText       = tcell.NewRGBColor(230, 230, 240) // Primary text
	RgbMuted      = tcell.NewRGBColor(130, 130, 160) // Secondary text
	RgbIndigo     = tcell.NewRGBColor(99, 102, 241)  // Accent
	RgbPurple     = tcell.NewRGBColor(168, 85, 247)  // Accent, secondary
	RgbGold       = tcell.NewRGBColor(250, 204, 21)  // Balance and rewards
	RgbGoldBright = tcell.NewRGBColor(255, 240, 150) // Balance pulse
	RgbEnergy     = tcell.NewRGBColor(56, 189, 248)  // Energy bar
	RgbDanger     = tcell.NewRGBColor(239, 68, 68)   // Errors, out of energy
	RgbSuccess    = tcell.NewRGBColor(34, 197, 94)   // Connected, claimed
	RgbBarEmpty   = tcell.NewRGBColor(45, 45, 65)    // Unfilled bar segment
	RgbSelected   = tcell.NewRGBColor(40, 36, 80)    // Highlighted list row
	RgbMote       = tcell.NewRGBColor(192, 132, 252) // Live mote
	RgbMoteFading = tcell.NewRGBColor(110, 80, 150)  // Mote about to expire
)

// Palette is the set of styles the views draw with
type Palette struct {
	Base     tcell.Style
	Panel    tcell.Style
	Muted    tcell.Style
	Accent   tcell.Style
	Gold     tcell.Style
	Pulse    tcell.Style
	Energy   tcell.Style
	Danger   tcell.Style
	Success  tcell.Style
	BarEmpty tcell.Style
	Selected tcell.Style
	Button   tcell.Style
	Mote     tcell.Style
	Fading   tcell.Style
	Mono     bool
}

// ColorPalette uses truecolor
func ColorPalette() Palette {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	return Palette{
		Base:     base,
		Panel:    base.Background(RgbPanel),
		Muted:    base.Foreground(RgbMuted),
		Accent:   base.Foreground(RgbIndigo).Bold(true),
		Gold:     base.Foreground(RgbGold).Bold(true),
		Pulse:    base.Foreground(RgbGoldBright).Bold(true).Reverse(true),
		Energy:   base.Foreground(RgbEnergy),
		Danger:   base.Foreground(RgbDanger).Bold(true),
		Success:  base.Foreground(RgbSuccess),
		BarEmpty: base.Foreground(RgbBarEmpty),
		Selected: base.Background(RgbSelected),
		Button:   base.Background(RgbIndigo).Foreground(RgbText).Bold(true),
		Mote:     base.Foreground(RgbMote).Bold(true),
		Fading:   base.Foreground(RgbMoteFading),
	}
}

// MonoPalette relies on attributes only, for terminals without color
func MonoPalette() Palette {
	base := tcell.StyleDefault
	return Palette{
		Base:     base,
		Panel:    base,
		Muted:    base.Dim(true),
		Accent:   base.Bold(true),
		Gold:     base.Bold(true),
		Pulse:    base.Bold(true).Reverse(true),
		Energy:   base,
		Danger:   base.Bold(true).Underline(true),
		Success:  base,
		BarEmpty: base.Dim(true),
		Selected: base.Reverse(true),
		Button:   base.Reverse(true).Bold(true),
		Mote:     base.Bold(true),
		Fading:   base.Dim(true),
		Mono:     true,
	}
}

// GetBarColor returns the fill color at a position along a progress bar
// Blends indigo into purple into gold as progress goes from 0 to 1
func GetBarColor(progress float64) tcell.Color {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	from, to, t := RgbIndigo, RgbPurple, progress*2
	if progress >= 0.5 {
		from, to, t = RgbPurple, RgbGold, (progress-0.5)*2
	}
	r1, g1, b1 := from.RGB()
	r2, g2, b2 := to.RGB()
	return tcell.NewRGBColor(
		r1+int32(float64(r2-r1)*t),
		g1+int32(float64(g2-g1)*t),
		b1+int32(float64(b2-b1)*t),
	)
}
