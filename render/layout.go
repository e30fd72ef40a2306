package render

import (
	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/engine"
)

// Rect is a rectangle of cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell x,y is inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// TargetKind identifies what a click lands on
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetIcon
	TargetMote
	TargetTab
	TargetUpgrade
	TargetShopItem
	TargetTask
	TargetMint
	TargetWallet
	TargetLanguage
	TargetInvite
	TargetConfirm
	TargetCancel
	TargetBlocked // Inside a modal but not on a button
)

// Target is the action under a screen cell
type Target struct {
	Kind TargetKind
	ID   string
	View engine.View
	Mote uint64
}

type region struct {
	rect   Rect
	target Target
}

// HitMap records clickable regions of the last frame
// Later regions win, so overlays added after the view take precedence
type HitMap struct {
	regions []region
	rows    map[engine.View][]Target
}

// NewHitMap creates an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{rows: make(map[engine.View][]Target)}
}

// Add registers a clickable rect
func (h *HitMap) Add(r Rect, t Target) {
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, region{rect: r, target: t})
}

// AddRow registers a selectable list row for keyboard navigation
func (h *HitMap) AddRow(v engine.View, t Target) {
	h.rows[v] = append(h.rows[v], t)
}

// At returns the target under x,y
func (h *HitMap) At(x, y int) (Target, bool) {
	if h == nil {
		return Target{}, false
	}
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].rect.Contains(x, y) {
			return h.regions[i].target, true
		}
	}
	return Target{}, false
}

// Rows returns the selectable rows of a view in display order
func (h *HitMap) Rows(v engine.View) []Target {
	if h == nil {
		return nil
	}
	return h.rows[v]
}

// Find returns the rect of the first region with the given target kind
func (h *HitMap) Find(kind TargetKind) (Rect, bool) {
	if h == nil {
		return Rect{}, false
	}
	for _, r := range h.regions {
		if r.target.Kind == kind {
			return r.rect, true
		}
	}
	return Rect{}, false
}

// Layout splits the screen into fixed bands
type Layout struct {
	Width, Height int
	Header        Rect
	Content       Rect
	Status        Rect
	Nav           Rect
}

// ComputeLayout derives the bands for a screen size
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	l.Header = Rect{X: 0, Y: 0, W: width, H: constants.HeaderHeight}
	l.Nav = Rect{X: 0, Y: height - constants.NavHeight, W: width, H: constants.NavHeight}
	l.Status = Rect{X: 0, Y: l.Nav.Y - constants.StatusHeight, W: width, H: constants.StatusHeight}
	top := l.Header.Y + l.Header.H + 1
	l.Content = Rect{X: 1, Y: top, W: width - 2, H: l.Status.Y - top}
	if l.Content.W < 0 {
		l.Content.W = 0
	}
	if l.Content.H < 0 {
		l.Content.H = 0
	}
	return l
}

// TooSmall reports whether the screen is below the usable minimum
func (l Layout) TooSmall() bool {
	return l.Width < constants.MinWidth || l.Height < constants.MinHeight
}

// MoteCell maps a mote's percent position into a cell of area
func MoteCell(m engine.Mote, area Rect) (int, int) {
	x := area.X + int(m.X/100*float64(area.W))
	y := area.Y + int(m.Y/100*float64(area.H))
	return x, y
}
