package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// QuadrantChars maps 4-bit patterns to Unicode quadrant characters
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground)
var QuadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// IconCell is one terminal cell of a converted image
type IconCell struct {
	Rune   rune
	Fg, Bg tcell.Color
}

// Icon is an image converted to terminal cells
type Icon struct {
	Width, Height int
	Cells         []IconCell
}

// At returns the cell at column x, row y
func (ic *Icon) At(x, y int) IconCell {
	return ic.Cells[y*ic.Width+x]
}

// LoadIcon decodes a PNG, JPEG or WebP file and converts it to width columns
func LoadIcon(path string, width int) (*Icon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	return ConvertIcon(img, width), nil
}

// ConvertIcon scales img to width columns and picks a quadrant glyph per cell
// Cells are about twice as tall as wide, so each cell covers a 2x2 pixel block
// of a grid whose height is halved relative to the source aspect
func ConvertIcon(img image.Image, width int) *Icon {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return &Icon{}
	}
	height := int(math.Round(float64(width) * float64(b.Dy()) / float64(b.Dx()) * 0.5))
	if height < 1 {
		height = 1
	}

	grid := image.NewRGBA(image.Rect(0, 0, width*2, height*2))
	draw.CatmullRom.Scale(grid, grid.Bounds(), img, b, draw.Src, nil)

	icon := &Icon{Width: width, Height: height, Cells: make([]IconCell, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var px [4]rgb
			px[0] = toRGB(grid.RGBAAt(2*x, 2*y))
			px[1] = toRGB(grid.RGBAAt(2*x+1, 2*y))
			px[2] = toRGB(grid.RGBAAt(2*x, 2*y+1))
			px[3] = toRGB(grid.RGBAAt(2*x+1, 2*y+1))

			pattern, fg, bg := bestQuadrant(px)
			icon.Cells[y*width+x] = IconCell{
				Rune: QuadrantChars[pattern],
				Fg:   tcell.NewRGBColor(fg.r, fg.g, fg.b),
				Bg:   tcell.NewRGBColor(bg.r, bg.g, bg.b),
			}
		}
	}
	return icon
}

type rgb struct {
	r, g, b int32
}

// toRGB flattens alpha against the background color
func toRGB(c color.RGBA) rgb {
	br, bgG, bb := RgbBackground.RGB()
	a := int32(c.A)
	blend := func(v uint8, base int32) int32 {
		return (int32(v)*a + base*(255-a)) / 255
	}
	if a == 255 {
		return rgb{int32(c.R), int32(c.G), int32(c.B)}
	}
	// RGBA is premultiplied; undo before blending
	un := func(v uint8) uint8 {
		if a == 0 {
			return 0
		}
		return uint8(int32(v) * 255 / a)
	}
	return rgb{blend(un(c.R), br), blend(un(c.G), bgG), blend(un(c.B), bb)}
}

// bestQuadrant tries all 16 fg/bg splits and keeps the one with least squared error
func bestQuadrant(px [4]rgb) (int, rgb, rgb) {
	best, bestErr := 0, int64(math.MaxInt64)
	var bestFg, bestBg rgb

	for pattern := 0; pattern < 16; pattern++ {
		var fgSum, bgSum [3]int64
		var fgN, bgN int64
		for i, p := range px {
			if pattern&(1<<i) != 0 {
				fgSum[0] += int64(p.r)
				fgSum[1] += int64(p.g)
				fgSum[2] += int64(p.b)
				fgN++
			} else {
				bgSum[0] += int64(p.r)
				bgSum[1] += int64(p.g)
				bgSum[2] += int64(p.b)
				bgN++
			}
		}
		fg, bg := mean(fgSum, fgN), mean(bgSum, bgN)

		var errSum int64
		for i, p := range px {
			ref := bg
			if pattern&(1<<i) != 0 {
				ref = fg
			}
			dr, dg, db := int64(p.r-ref.r), int64(p.g-ref.g), int64(p.b-ref.b)
			errSum += dr*dr + dg*dg + db*db
		}
		if errSum < bestErr {
			best, bestErr, bestFg, bestBg = pattern, errSum, fg, bg
		}
	}
	return best, bestFg, bestBg
}

func mean(sum [3]int64, n int64) rgb {
	if n == 0 {
		return rgb{}
	}
	return rgb{int32(sum[0] / n), int32(sum[1] / n), int32(sum[2] / n)}
}

// defaultIconArt is the built-in gem drawn when no generated logo exists
var defaultIconArt = []string{
	"    ▄▄████▄▄    ",
	"  ▄██▀▀▀▀▀▀██▄  ",
	" ██▀ ▄▀▀▀▀▄ ▀██ ",
	" ██  █ Ω  █  ██ ",
	" ██▄ ▀▄▄▄▄▀ ▄██ ",
	"  ▀██▄▄▄▄▄▄██▀  ",
	"    ▀▀████▀▀    ",
}

// DefaultIcon returns the built-in gem in the theme colors
func DefaultIcon() *Icon {
	w := 0
	for _, line := range defaultIconArt {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	icon := &Icon{Width: w, Height: len(defaultIconArt), Cells: make([]IconCell, w*len(defaultIconArt))}
	for y, line := range defaultIconArt {
		runes := []rune(line)
		for x := 0; x < w; x++ {
			r := ' '
			if x < len(runes) {
				r = runes[x]
			}
			fg := GetBarColor(float64(y) / float64(len(defaultIconArt)-1) * 0.6)
			if r == 'Ω' {
				fg = RgbText
			}
			icon.Cells[y*w+x] = IconCell{Rune: r, Fg: fg, Bg: RgbBackground}
		}
	}
	return icon
}
