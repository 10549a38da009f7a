// Package session holds the interaction state machine: it turns per-tick
// input into board edits, mode changes and generations.
package session

import (
	"image"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/life"
)

// SpeedDebounce is the minimum spacing between speed changes while a speed
// key is held.
const SpeedDebounce = 80 * time.Millisecond

// Config controls a new Session.
type Config struct {
	Speed   int
	Muted   bool
	Layout  Layout
	Audio   Audio
	Seed    int64
	Density float64
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		Speed:   core.DefaultSpeed,
		Layout:  DefaultLayout(20, 50),
		Seed:    42,
		Density: 0.25,
	}
}

type latch struct {
	control  Control
	row, col int
}

// Session owns the board, the reset snapshot and every piece of mode state.
// It is not safe for concurrent use; one loop drives it.
type Session struct {
	grid     *core.Grid
	snapshot *core.Grid

	state      State
	speed      int
	muted      bool
	generation int

	layout  Layout
	audio   Audio
	rng     *core.RNG
	density float64

	latch        latch
	limiter      *core.FixedStep
	speedReadyAt time.Time
	prevKeys     Keys
}

// New wraps grid in a Session that starts in Editing.
func New(grid *core.Grid, cfg Config) (*Session, error) {
	if grid == nil {
		return nil, &core.ConfigurationError{Field: "grid", Value: 0}
	}
	if cfg.Speed < core.MinSpeed || cfg.Speed > core.MaxSpeed {
		return nil, &core.ConfigurationError{Field: "speed", Value: cfg.Speed}
	}
	s := &Session{
		grid:    grid,
		state:   Editing,
		speed:   cfg.Speed,
		muted:   cfg.Muted,
		layout:  cfg.Layout,
		audio:   cfg.Audio,
		rng:     core.NewRNG(cfg.Seed),
		density: cfg.Density,
		limiter: core.NewFixedStep(cfg.Speed),
	}
	if s.audio != nil {
		s.audio.SetMuted(s.muted)
	}
	return s, nil
}

// Grid returns the live board. Reset swaps in a new board, so renderers
// should fetch it every frame.
func (s *Session) Grid() *core.Grid { return s.grid }

// Snapshot returns the board captured when editing last ended, or nil.
func (s *Session) Snapshot() *core.Grid { return s.snapshot }

// State returns the current mode.
func (s *Session) State() State { return s.state }

// Speed returns the generations-per-second setting.
func (s *Session) Speed() int { return s.speed }

// Muted reports the mute flag.
func (s *Session) Muted() bool { return s.muted }

// Generation counts generations since the board was last run or reset.
func (s *Session) Generation() int { return s.generation }

// Layout returns the hit-testing layout.
func (s *Session) Layout() Layout { return s.layout }

// Update consumes one tick of input. It returns ErrQuit when the front end
// should stop; no other error is produced once running.
func (s *Session) Update(in Input, now time.Time) error {
	if in.Quit {
		return ErrQuit
	}
	for _, ev := range in.Pointer {
		s.handlePointer(ev)
	}
	keys := in.Keys
	if s.state == Editing {
		s.updateEditing(keys, now)
	} else {
		s.updateRunning(keys, now)
	}
	s.prevKeys = keys
	return nil
}

func (s *Session) updateEditing(keys Keys, now time.Time) {
	switch {
	case keys.Run:
		s.run()
		return
	case keys.SpeedUp && s.speed < core.MaxSpeed:
		s.changeSpeed(1, now)
	case keys.SpeedDown && s.speed > core.MinSpeed:
		s.changeSpeed(-1, now)
	}
	if keys.Randomize && !s.prevKeys.Randomize {
		s.grid.Randomize(s.rng, s.density)
	}
}

func (s *Session) updateRunning(keys Keys, now time.Time) {
	if keys.Edit {
		s.setState(Editing)
		return
	}
	if s.state == Playing && s.limiter.ShouldStep(now) {
		s.step()
	}
}

func (s *Session) changeSpeed(delta int, now time.Time) {
	if now.Before(s.speedReadyAt) {
		return
	}
	s.speed = core.ClampSpeed(s.speed + delta)
	s.limiter.SetTPS(s.speed)
	s.speedReadyAt = now.Add(SpeedDebounce)
}

// run leaves Editing: the board is captured for reset and playback starts.
func (s *Session) run() {
	s.snapshot = s.grid.Clone()
	s.generation = 0
	s.setState(Playing)
}

func (s *Session) step() {
	life.Step(s.grid)
	s.generation++
}

func (s *Session) reset() {
	if s.snapshot == nil {
		return
	}
	s.grid = s.snapshot.Clone()
	s.generation = 0
	s.setState(Paused)
}

func (s *Session) setState(next State) {
	if next == Playing && s.state != Playing {
		s.limiter.Restart()
	}
	if next.Running() != s.state.Running() {
		s.latch = latch{}
	}
	s.state = next
}

func (s *Session) handlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		s.latch = s.hit(ev.Pos)
	case PointerUp:
		l := s.latch
		s.latch = latch{}
		if l.control == ControlNone || !s.releaseMatches(l, ev.Pos) {
			return
		}
		s.activate(l)
	}
}

// hit finds the control under p for the current mode.
func (s *Session) hit(p image.Point) latch {
	if s.state == Editing {
		switch {
		case p.In(s.layout.Clear):
			return latch{control: ControlClear}
		case p.In(s.layout.Mute):
			return latch{control: ControlMute}
		}
		if row, col, ok := s.layout.CellAt(p); ok {
			return latch{control: ControlCell, row: row, col: col}
		}
		return latch{}
	}
	switch {
	case p.In(s.layout.PlayPause):
		return latch{control: ControlPlayPause}
	case p.In(s.layout.Reset):
		return latch{control: ControlReset}
	case p.In(s.layout.Step):
		return latch{control: ControlStep}
	}
	return latch{}
}

// releaseMatches reports whether a release at p is still on the latched
// control.
func (s *Session) releaseMatches(l latch, p image.Point) bool {
	if l.control == ControlCell {
		row, col, ok := s.layout.CellAt(p)
		return ok && row == l.row && col == l.col
	}
	return p.In(s.layout.rect(l.control))
}

func (s *Session) activate(l latch) {
	if s.state == Editing {
		switch l.control {
		case ControlCell:
			s.grid.Toggle(l.row, l.col)
		case ControlClear:
			s.grid.Clear()
		case ControlMute:
			s.muted = !s.muted
			if s.audio != nil {
				s.audio.SetMuted(s.muted)
			}
		}
		return
	}
	switch l.control {
	case ControlPlayPause:
		if s.state == Playing {
			s.setState(Paused)
		} else {
			s.setState(Playing)
		}
	case ControlReset:
		s.reset()
	case ControlStep:
		if s.state == Paused {
			s.step()
		}
	}
}
