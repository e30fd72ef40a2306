package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Align positions a string inside a span
type Align int

const (
	AlignStart Align = iota // Left in LTR, right in RTL
	AlignCenter
	AlignEnd
)

// TextWidth returns the display width in cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most width cells, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// drawText writes s starting at x and returns the column after the last cell
func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// fill paints a rectangle with a rune
func fill(screen tcell.Screen, rect Rect, r rune, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// Line lays out text on one row of a span, mirrored for right-to-left locales
type Line struct {
	screen tcell.Screen
	span   Rect
	rtl    bool // text direction
	mirror bool // placement starts from the right edge
}

// newLine creates a line writer over the first row of span
func newLine(screen tcell.Screen, span Rect, rtl bool) Line {
	return Line{screen: screen, span: span, rtl: rtl, mirror: rtl}
}

// Mirrored returns the line with placement flipped and text direction kept
func (l Line) Mirrored() Line {
	l.mirror = !l.mirror
	return l
}

// Draw writes s aligned within the span and returns the occupied rect
// AlignStart follows the reading direction
func (l Line) Draw(s string, align Align, style tcell.Style) Rect {
	s = Truncate(s, l.span.W)
	w := TextWidth(s)

	var x int
	switch align {
	case AlignCenter:
		x = l.span.X + (l.span.W-w)/2
	case AlignStart:
		x = l.span.X
		if l.mirror {
			x = l.span.X + l.span.W - w
		}
	case AlignEnd:
		x = l.span.X + l.span.W - w
		if l.mirror {
			x = l.span.X
		}
	}
	drawText(l.screen, x, l.span.Y, style, Visual(s, l.rtl))
	return Rect{X: x, Y: l.span.Y, W: w, H: 1}
}

// Row places items one after another in reading direction starting at offset
// Returns the rect of each item in input order
func (l Line) Row(offset int, gap int, items []string, styles []tcell.Style) []Rect {
	rects := make([]Rect, len(items))
	cursor := offset
	for i, s := range items {
		s = Truncate(s, l.span.W-cursor)
		w := TextWidth(s)
		if w <= 0 {
			rects[i] = Rect{X: l.span.X, Y: l.span.Y}
			continue
		}
		x := l.span.X + cursor
		if l.mirror {
			x = l.span.X + l.span.W - cursor - w
		}
		drawText(l.screen, x, l.span.Y, styles[i], Visual(s, l.rtl))
		rects[i] = Rect{X: x, Y: l.span.Y, W: w, H: 1}
		cursor += w + gap
	}
	return rects
}

// button wraps a label in brackets
func button(label string) string {
	return "[ " + label + " ]"
}

// bar renders a progress bar of width cells with per-cell colors
func drawBar(screen tcell.Screen, rect Rect, progress float64, pal Palette, rtl bool, style tcell.Style) {
	if rect.W <= 0 {
		return
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(rect.W))
	for i := 0; i < rect.W; i++ {
		x := rect.X + i
		if rtl {
			x = rect.X + rect.W - 1 - i
		}
		if i < filled {
			s := style
			if !pal.Mono {
				s = style.Foreground(GetBarColor(float64(i+1) / float64(rect.W)))
			}
			screen.SetContent(x, rect.Y, '█', nil, s)
		} else {
			screen.SetContent(x, rect.Y, '░', nil, pal.BarEmpty)
		}
	}
}

// padRight pads s with spaces to width cells
func padRight(s string, width int) string {
	if d := width - TextWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
