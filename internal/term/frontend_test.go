package term

import (
	"context"
	"image"
	"testing"
	"time"

	"lifeboard/internal/session"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newFrontend(t *testing.T, s tcell.SimulationScreen) *Frontend {
	t.Helper()
	w, h := s.Size()
	sess, err := NewConfig().NewSession(w, h)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return New(s, sess)
}

func TestBoardFitsTerminal(t *testing.T) {
	sess, err := NewConfig().NewSession(40, 13)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Grid().Rows() != 10 || sess.Grid().Cols() != 20 {
		t.Fatalf("board %dx%d, expected 10x20", sess.Grid().Rows(), sess.Grid().Cols())
	}
	if _, err := NewConfig().NewSession(40, 2); err == nil {
		t.Fatal("a terminal without room for the board must be rejected")
	}
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 5, 6
	sess, err = cfg.NewSession(200, 200)
	if err != nil || sess.Grid().Rows() != 5 || sess.Grid().Cols() != 6 {
		t.Fatalf("explicit size ignored: %v", err)
	}
}

func TestTranslateKeys(t *testing.T) {
	f := newFrontend(t, newScreen(t, 40, 13))
	var in session.Input
	f.translate(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), &in)
	f.translate(tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), &in)
	f.translate(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), &in)
	f.translate(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), &in)
	want := session.Keys{Run: true, Edit: true, SpeedUp: true, Randomize: true}
	if in.Keys != want || in.Quit {
		t.Fatalf("keys %+v quit=%v, expected %+v", in.Keys, in.Quit, want)
	}
	f.translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), &in)
	if !in.Quit {
		t.Fatal("escape should quit")
	}
}

func TestMouseClickTogglesCell(t *testing.T) {
	f := newFrontend(t, newScreen(t, 40, 13))
	var in session.Input
	f.translate(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), &in)
	f.translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone), &in)
	if len(in.Pointer) != 2 || in.Pointer[0].Kind != session.PointerDown || in.Pointer[1].Kind != session.PointerUp {
		t.Fatalf("pointer events %+v", in.Pointer)
	}
	if in.Pointer[0].Pos != image.Pt(3, 4) {
		t.Fatalf("press at %v", in.Pointer[0].Pos)
	}
	if err := f.sess.Update(in, time.Unix(0, 0)); err != nil {
		t.Fatal(err)
	}
	if !f.sess.Grid().Alive(1, 1) {
		t.Fatal("click on terminal cell (3,4) should toggle board cell (1,1)")
	}
}

func TestMuteButtonHit(t *testing.T) {
	f := newFrontend(t, newScreen(t, 40, 13))
	var in session.Input
	f.translate(tcell.NewEventMouse(10, buttonRow, tcell.Button1, tcell.ModNone), &in)
	f.translate(tcell.NewEventMouse(11, buttonRow, tcell.ButtonNone, tcell.ModNone), &in)
	if err := f.sess.Update(in, time.Unix(0, 0)); err != nil {
		t.Fatal(err)
	}
	if !f.sess.Muted() {
		t.Fatal("clicking [sound] should mute")
	}
}

func TestDrawBoard(t *testing.T) {
	s := newScreen(t, 40, 13)
	f := newFrontend(t, s)
	f.sess.Grid().Set(0, 0, true)
	f.draw()
	s.Show()

	cells, w, _ := s.GetContents()
	runeAt := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	if runeAt(0, stripRows) != '█' || runeAt(1, stripRows) != '█' {
		t.Fatal("live cell not drawn")
	}
	if runeAt(2, stripRows) != '·' {
		t.Fatal("dead cell not drawn")
	}
	if runeAt(clearButton.x, buttonRow) != '[' || runeAt(clearButton.x+1, buttonRow) != 'c' {
		t.Fatal("clear button label missing")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newScreen(t, 40, 13)
	f := newFrontend(t, s)
	f.interval = time.Millisecond
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run only returned after the deadline; the quit key was ignored")
	}
}
