package render

import (
	"image/color"

	"lifeboard/internal/core"
)

// Palette holds the board colors.
type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Alive      color.RGBA
	Text       color.RGBA
	Hint       color.RGBA
}

// DefaultPalette returns the standard dark-blue board colors.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 40, G: 40, B: 70, A: 255},
		Border:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Alive:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Hint:       color.RGBA{R: 0, G: 255, B: 255, A: 255},
	}
}

// fillBoardRGBA paints the board into buf as a (cols*cellW) x (rows*cellH)
// RGBA image. Every cell gets a one-pixel outline; live cells are filled
// inside the top-left edges of that outline.
func fillBoardRGBA(buf []byte, g *core.Grid, cellW, cellH int, pal Palette) {
	stride := g.Cols() * cellW
	if len(buf) < 4*stride*g.Rows()*cellH {
		return
	}
	for _, c := range g.Cells() {
		x0 := c.Col * cellW
		y0 := c.Row * cellH
		for py := 0; py < cellH; py++ {
			for px := 0; px < cellW; px++ {
				col := pixelColor(px, py, cellW, cellH, c.Alive, pal)
				base := 4 * ((y0+py)*stride + x0 + px)
				buf[base+0] = col.R
				buf[base+1] = col.G
				buf[base+2] = col.B
				buf[base+3] = col.A
			}
		}
	}
}

func pixelColor(px, py, w, h int, alive bool, pal Palette) color.RGBA {
	if px == 0 || py == 0 {
		return pal.Border
	}
	if alive {
		return pal.Alive
	}
	if px == w-1 || py == h-1 {
		return pal.Border
	}
	return pal.Background
}
