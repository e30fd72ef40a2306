// Package render draws game snapshots onto a tcell screen and records
// where each clickable element landed.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/locale"
)

// Frame carries UI state that lives outside the engine
type Frame struct {
	// Selected is the highlighted row in list views, -1 for none
	Selected int

	// Message is shown on the status line; empty shows the key help
	Message string
	Error   bool

	// Overlay lines are drawn over the content when non-nil
	Overlay []string

	Muted      bool
	InviteLink string
}

// Renderer draws complete frames
type Renderer struct {
	screen tcell.Screen
	pal    Palette

	iconPath  string
	iconWidth int
	icon      *Icon
	fallback  *Icon
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen, mono bool) *Renderer {
	pal := ColorPalette()
	if mono {
		pal = MonoPalette()
	}
	return &Renderer{
		screen:   screen,
		pal:      pal,
		fallback: DefaultIcon(),
	}
}

// ctx is the per-frame drawing context shared by the views
type ctx struct {
	screen tcell.Screen
	pal    Palette
	snap   engine.Snapshot
	frame  Frame
	lang   locale.Language
	rtl    bool
	text   *locale.Strings
	hits   *HitMap
	layout Layout
}

func (c *ctx) line(r Rect) Line {
	return newLine(c.screen, r, c.rtl)
}

// Draw renders snap and returns the hit map for the frame
func (r *Renderer) Draw(snap engine.Snapshot, frame Frame) *HitMap {
	w, h := r.screen.Size()
	lang := locale.Normalize(snap.State.Language)
	c := &ctx{
		screen: r.screen,
		pal:    r.pal,
		snap:   snap,
		frame:  frame,
		lang:   lang,
		rtl:    lang.RTL(),
		text:   locale.Lookup(lang),
		hits:   NewHitMap(),
		layout: ComputeLayout(w, h),
	}

	r.screen.SetStyle(r.pal.Base)
	r.screen.Clear()

	if c.layout.TooSmall() {
		msg := Truncate("terminal too small", w)
		drawText(r.screen, (w-TextWidth(msg))/2, h/2, r.pal.Danger, msg)
		r.screen.Show()
		return c.hits
	}

	drawHeader(c)
	switch snap.View {
	case engine.ViewHome:
		drawHome(c, r.iconFor(snap.State.CustomObsidianIcon, c.layout.Content))
	case engine.ViewUpgrades:
		drawUpgrades(c)
	case engine.ViewShop:
		drawShop(c)
	case engine.ViewTasks:
		drawTasks(c)
	case engine.ViewEriDrop:
		drawEriDrop(c)
	case engine.ViewInvite:
		drawInvite(c)
	}
	drawStatus(c)
	drawNav(c)

	if snap.PendingItem != nil {
		drawModal(c)
	}
	if frame.Overlay != nil {
		drawOverlay(c)
	}

	r.screen.Show()
	return c.hits
}

// iconFor returns the icon for the home view, reloading only when path or size changes
// A missing or undecodable custom icon falls back to the built-in gem
func (r *Renderer) iconFor(path string, area Rect) *Icon {
	width := area.W / 2
	if width > constants.IconMaxWidth {
		width = constants.IconMaxWidth
	}
	if path == "" || width < 4 {
		return r.fallback
	}
	if path != r.iconPath || width != r.iconWidth {
		r.iconPath, r.iconWidth = path, width
		icon, err := LoadIcon(path, width)
		if err != nil {
			icon = nil
		}
		r.icon = icon
	}
	if r.icon == nil {
		return r.fallback
	}
	return r.icon
}
