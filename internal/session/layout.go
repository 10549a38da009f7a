package session

import "image"

// Layout maps screen positions to board cells and buttons. Units are
// whatever the front end draws in: pixels for the window, character cells
// for the terminal.
type Layout struct {
	CellW, CellH int
	// Top is the height of the control strip above the board.
	Top int

	// Editing controls.
	Clear image.Rectangle
	Mute  image.Rectangle

	// Running controls.
	PlayPause image.Rectangle
	Reset     image.Rectangle
	Step      image.Rectangle
}

// DefaultLayout returns the window layout: square cells of the given size
// below a control strip of height top, with 50px buttons along the strip.
// Button edges are exclusive on both sides.
func DefaultLayout(cell, top int) Layout {
	return Layout{
		CellW:     cell,
		CellH:     cell,
		Top:       top,
		Clear:     image.Rect(1, 1, 50, 50),
		Mute:      image.Rect(51, 1, 100, 50),
		PlayPause: image.Rect(1, 1, 50, 50),
		Reset:     image.Rect(51, 1, 100, 50),
		Step:      image.Rect(101, 1, 150, 50),
	}
}

// CellAt converts a screen position into board coordinates. ok is false
// above the board or left of it; positions past the far edges are returned
// as-is and left for the grid to ignore.
func (l Layout) CellAt(p image.Point) (row, col int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0, false
	}
	if p.X < 0 || p.Y < l.Top {
		return 0, 0, false
	}
	return (p.Y - l.Top) / l.CellH, p.X / l.CellW, true
}

// CellRect returns the screen rectangle covered by a board cell.
func (l Layout) CellRect(row, col int) image.Rectangle {
	x := col * l.CellW
	y := l.Top + row*l.CellH
	return image.Rect(x, y, x+l.CellW, y+l.CellH)
}

// BoardSize returns the rows and columns that fit in a w*h screen.
func (l Layout) BoardSize(w, h int) (rows, cols int) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0
	}
	return (h - l.Top) / l.CellH, w / l.CellW
}

// ScreenSize returns the screen extent needed for a rows*cols board.
func (l Layout) ScreenSize(rows, cols int) (w, h int) {
	return cols * l.CellW, l.Top + rows*l.CellH
}

func (l Layout) rect(c Control) image.Rectangle {
	switch c {
	case ControlClear:
		return l.Clear
	case ControlMute:
		return l.Mute
	case ControlPlayPause:
		return l.PlayPause
	case ControlReset:
		return l.Reset
	case ControlStep:
		return l.Step
	default:
		return image.Rectangle{}
	}
}
