// Package term runs a session in a terminal using tcell: mouse clicks edit
// the board and press the bracketed buttons, keys mirror the window build.
package term

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
	"unicode"

	"lifeboard/internal/session"

	"github.com/gdamore/tcell/v2"
)

type styles struct {
	base   tcell.Style
	alive  tcell.Style
	dead   tcell.Style
	hint   tcell.Style
	button tcell.Style
	active tcell.Style
}

func defaultStyles() styles {
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(40, 40, 70)).Foreground(tcell.ColorWhite)
	return styles{
		base:   base,
		alive:  base.Foreground(tcell.ColorWhite),
		dead:   base.Foreground(tcell.NewRGBColor(100, 100, 100)),
		hint:   base.Foreground(tcell.NewRGBColor(0, 255, 255)),
		button: base.Foreground(tcell.ColorWhite).Bold(true),
		active: base.Reverse(true),
	}
}

// Frontend drives a session from a tcell screen.
type Frontend struct {
	screen   tcell.Screen
	sess     *session.Session
	styles   styles
	interval time.Duration
	now      func() time.Time

	mouseHeld bool
}

// New returns a Frontend ticking at 60 Hz.
func New(screen tcell.Screen, sess *session.Session) *Frontend {
	return &Frontend{
		screen:   screen,
		sess:     sess,
		styles:   defaultStyles(),
		interval: time.Second / 60,
		now:      time.Now,
	}
}

// Run polls events and updates the session until quit or ctx is done.
// The caller owns the screen and must Fini it afterwards.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		var in session.Input
	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					in.Quit = true
					break drain
				}
				f.translate(ev, &in)
			default:
				break drain
			}
		}

		if err := f.sess.Update(in, f.now()); err != nil {
			if errors.Is(err, session.ErrQuit) {
				return nil
			}
			return err
		}
		f.draw()
		f.screen.Show()
	}
}

// translate folds one terminal event into the tick's input.
func (f *Frontend) translate(ev tcell.Event, in *session.Input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyUp:
			in.Keys.SpeedUp = true
		case tcell.KeyDown:
			in.Keys.SpeedDown = true
		case tcell.KeyRune:
			switch unicode.ToLower(ev.Rune()) {
			case 'q':
				in.Quit = true
			case 'g':
				in.Keys.Run = true
			case 's':
				in.Keys.Edit = true
			case 'r':
				in.Keys.Randomize = true
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		held := ev.Buttons()&tcell.Button1 != 0
		switch {
		case held && !f.mouseHeld:
			in.Pointer = append(in.Pointer, session.PointerEvent{Kind: session.PointerDown, Pos: image.Pt(x, y)})
		case !held && f.mouseHeld:
			in.Pointer = append(in.Pointer, session.PointerEvent{Kind: session.PointerUp, Pos: image.Pt(x, y)})
		}
		f.mouseHeld = held
	case *tcell.EventResize:
		f.screen.Sync()
	}
}

func (f *Frontend) draw() {
	f.screen.SetStyle(f.styles.base)
	f.screen.Clear()
	w, _ := f.screen.Size()

	fps := fmt.Sprintf("FPS: %d", f.sess.Speed())
	f.drawText(w-len(fps)-1, buttonRow, fps, f.styles.button)

	switch f.sess.State() {
	case session.Editing:
		f.drawText(1, hintRow, "g run  arrows fps  r random  q quit", f.styles.hint)
		f.drawText(clearButton.x, buttonRow, "[clear]", f.styles.button)
		if f.sess.Muted() {
			f.drawText(muteButton.x, buttonRow, "[muted]", f.styles.active)
		} else {
			f.drawText(muteButton.x, buttonRow, "[sound]", f.styles.button)
		}
	default:
		f.drawText(1, hintRow, "s set cells  q quit", f.styles.hint)
		if f.sess.State() == session.Paused {
			f.drawText(playPauseButton.x, buttonRow, "[play ]", f.styles.button)
		} else {
			f.drawText(playPauseButton.x, buttonRow, "[pause]", f.styles.button)
		}
		f.drawText(resetButton.x, buttonRow, "[reset]", f.styles.button)
		f.drawText(stepButton.x, buttonRow, "[step]", f.styles.button)
		f.drawText(1, statusRow, fmt.Sprintf("gen %d  pop %d", f.sess.Generation(), f.sess.Grid().Population()), f.styles.hint)
	}

	for _, c := range f.sess.Grid().Cells() {
		x := c.Col * cellCols
		y := stripRows + c.Row
		if c.Alive {
			f.screen.SetContent(x, y, '█', nil, f.styles.alive)
			f.screen.SetContent(x+1, y, '█', nil, f.styles.alive)
			continue
		}
		f.screen.SetContent(x, y, '·', nil, f.styles.dead)
		f.screen.SetContent(x+1, y, ' ', nil, f.styles.dead)
	}
}

func (f *Frontend) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}
