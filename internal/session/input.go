package session

import (
	"errors"
	"image"
)

// ErrQuit is returned by Update once a quit signal has been observed.
var ErrQuit = errors.New("session: quit requested")

// State is the interaction mode.
type State int

const (
	Editing State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Running reports whether the state is Playing or Paused.
func (s State) Running() bool { return s == Playing || s == Paused }

// PointerKind distinguishes presses from releases of the primary button.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
)

// PointerEvent is a primary-button press or release at a screen position.
type PointerEvent struct {
	Kind PointerKind
	Pos  image.Point
}

// Keys is the held state of the keyboard controls for one tick.
type Keys struct {
	Run       bool
	Edit      bool
	SpeedUp   bool
	SpeedDown bool
	Randomize bool
}

// Input is everything a front end observed during one tick.
type Input struct {
	Quit    bool
	Pointer []PointerEvent
	Keys    Keys
}

// Audio receives mute changes. Calls are fire-and-forget.
type Audio interface {
	SetMuted(muted bool)
}

// Control identifies a clickable region.
type Control int

const (
	ControlNone Control = iota
	ControlCell
	ControlClear
	ControlMute
	ControlPlayPause
	ControlReset
	ControlStep
)
