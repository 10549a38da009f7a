package term

import (
	"image"

	"lifeboard/internal/session"
)

const (
	// cellCols is the width of a board cell in terminal columns; two columns
	// keep cells roughly square.
	cellCols  = 2
	stripRows = 3
	hintRow   = 0
	buttonRow = 1
	statusRow = 2
)

type button struct {
	control session.Control
	x       int
	width   int
}

func (b button) rect() image.Rectangle {
	return image.Rect(b.x, buttonRow, b.x+b.width, buttonRow+1)
}

var (
	clearButton     = button{control: session.ControlClear, x: 1, width: 7}
	muteButton      = button{control: session.ControlMute, x: 9, width: 7}
	playPauseButton = button{control: session.ControlPlayPause, x: 1, width: 7}
	resetButton     = button{control: session.ControlReset, x: 9, width: 7}
	stepButton      = button{control: session.ControlStep, x: 17, width: 6}
)

// Layout returns the hit-testing layout matching what the terminal draws.
func Layout() session.Layout {
	return session.Layout{
		CellW:     cellCols,
		CellH:     1,
		Top:       stripRows,
		Clear:     clearButton.rect(),
		Mute:      muteButton.rect(),
		PlayPause: playPauseButton.rect(),
		Reset:     resetButton.rect(),
		Step:      stepButton.rect(),
	}
}
