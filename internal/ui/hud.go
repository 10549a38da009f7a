//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"lifeboard/internal/render"
	"lifeboard/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control strip above the board: speed readout, key hints
// and the button glyphs for the current mode.
type HUD struct {
	sess    *session.Session
	palette render.Palette

	pixel *ebiten.Image
}

// NewHUD constructs a HUD reading from sess.
func NewHUD(sess *session.Session) *HUD {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	return &HUD{
		sess:    sess,
		palette: render.DefaultPalette(),
		pixel:   base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw paints the strip onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("FPS: %d", h.sess.Speed()), face, 585, 30, h.palette.Text)

	if h.sess.State() == session.Editing {
		text.Draw(screen, "Press G to run the game", face, 240, 16, h.palette.Hint)
		text.Draw(screen, "Use arrow keys to adjust fps", face, 220, 38, h.palette.Hint)
		h.drawBin(screen)
		h.drawSpeaker(screen, h.sess.Muted())
		return
	}

	text.Draw(screen, "Press S to set cells", face, 260, 28, h.palette.Hint)
	text.Draw(screen, fmt.Sprintf("Gen %d", h.sess.Generation()), face, 480, 30, h.palette.Text)
	if h.sess.State() == session.Paused {
		h.fillPolygon(screen, h.palette.Text, pt(10, 10), pt(10, 40), pt(36, 25))
	} else {
		vector.DrawFilledRect(screen, 10, 10, 10, 30, h.palette.Text, false)
		vector.DrawFilledRect(screen, 30, 10, 10, 30, h.palette.Text, false)
	}
	h.drawRestart(screen)
	h.fillPolygon(screen, h.palette.Text, pt(109, 10), pt(109, 40), pt(135, 25))
	h.fillPolygon(screen, h.palette.Text, pt(124, 10), pt(124, 40), pt(150, 25))
}

func (h *HUD) drawBin(screen *ebiten.Image) {
	white := h.palette.Text
	vector.DrawFilledRect(screen, 20, 9, 10, 3, white, false)
	vector.DrawFilledRect(screen, 12, 12, 26, 3, white, false)
	vector.DrawFilledRect(screen, 15, 17, 20, 23, white, false)
	for _, x := range []float32{19, 24, 29} {
		vector.DrawFilledRect(screen, x, 20, 2, 17, h.palette.Background, false)
	}
}

func (h *HUD) drawSpeaker(screen *ebiten.Image, muted bool) {
	white := h.palette.Text
	vector.DrawFilledRect(screen, 60, 20, 8, 10, white, false)
	h.fillPolygon(screen, white, pt(67, 20), pt(78, 11), pt(78, 39), pt(67, 30))
	if muted {
		red := color.RGBA{R: 230, G: 60, B: 60, A: 255}
		vector.StrokeLine(screen, 82, 18, 94, 32, 3, red, true)
		vector.StrokeLine(screen, 82, 32, 94, 18, 3, red, true)
		return
	}
	vector.StrokeLine(screen, 83, 20, 86, 25, 2, white, true)
	vector.StrokeLine(screen, 86, 25, 83, 30, 2, white, true)
	vector.StrokeLine(screen, 88, 15, 93, 25, 2, white, true)
	vector.StrokeLine(screen, 93, 25, 88, 35, 2, white, true)
}

func (h *HUD) drawRestart(screen *ebiten.Image) {
	vector.StrokeCircle(screen, 75, 25, 17, 6, h.palette.Text, true)
	vector.DrawFilledRect(screen, 50, 25, 25, 25, h.palette.Background, false)
	h.fillPolygon(screen, h.palette.Text, pt(50, 20), pt(70, 20), pt(60, 38))
}

func (h *HUD) fillPolygon(screen *ebiten.Image, clr color.RGBA, points ...image.Point) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	screen.DrawTriangles(vs, is, h.pixel, &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd})
}

func pt(x, y int) image.Point { return image.Point{X: x, Y: y} }
