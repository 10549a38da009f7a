//go:build ebiten

package render

import (
	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter uploads the board into a single RGBA image each frame.
type BoardPainter struct {
	rows, cols   int
	cellW, cellH int
	img          *ebiten.Image
	buf          []byte
}

// NewBoardPainter allocates a painter for a rows*cols board.
func NewBoardPainter(rows, cols, cellW, cellH int) *BoardPainter {
	w, h := cols*cellW, rows*cellH
	return &BoardPainter{
		rows:  rows,
		cols:  cols,
		cellW: cellW,
		cellH: cellH,
		img:   ebiten.NewImage(w, h),
		buf:   make([]byte, 4*w*h),
	}
}

// Draw paints g and blits it onto dst below a strip of height top.
func (bp *BoardPainter) Draw(dst *ebiten.Image, g *core.Grid, top int, pal Palette) {
	if g.Rows() != bp.rows || g.Cols() != bp.cols {
		return
	}
	fillBoardRGBA(bp.buf, g, bp.cellW, bp.cellH, pal)
	bp.img.ReplacePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(top))
	dst.DrawImage(bp.img, op)
}
