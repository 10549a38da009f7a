//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifeboard/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay highlights the cell under the cursor while editing.
type Overlay struct {
	sess    *session.Session
	enabled bool
	tint    color.RGBA
}

// NewOverlay constructs an overlay for sess. It starts enabled.
func NewOverlay(sess *session.Session) *Overlay {
	return &Overlay{sess: sess, enabled: true, tint: color.RGBA{R: 0, G: 120, B: 120, A: 90}}
}

// Update toggles the highlight with the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.enabled = !o.enabled
	}
}

// Draw renders the highlight onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.enabled || o.sess.State() != session.Editing {
		return
	}
	layout := o.sess.Layout()
	row, col, ok := layout.CellAt(image.Pt(ebiten.CursorPosition()))
	if !ok || !o.sess.Grid().InBounds(row, col) {
		return
	}
	r := layout.CellRect(row, col)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), o.tint, false)
}
