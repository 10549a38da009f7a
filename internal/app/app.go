//go:build ebiten

package app

import (
	"errors"
	"image"
	"time"

	"lifeboard/internal/render"
	"lifeboard/internal/session"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.BoardPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	palette render.Palette

	width, height int
}

// New constructs a Game drawing sess into a width*height window.
func New(sess *session.Session, cfg *Config) *Game {
	g := sess.Grid()
	layout := sess.Layout()
	return &Game{
		sess:    sess,
		painter: render.NewBoardPainter(g.Rows(), g.Cols(), layout.CellW, layout.CellH),
		hud:     ui.NewHUD(sess),
		overlay: ui.NewOverlay(sess),
		palette: render.DefaultPalette(),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Update polls input and drives the session by one tick.
func (g *Game) Update() error {
	g.overlay.Update()
	err := g.sess.Update(pollInput(), time.Now())
	if errors.Is(err, session.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw renders the control strip and the board.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)
	g.hud.Draw(screen)
	g.painter.Draw(screen, g.sess.Grid(), g.sess.Layout().Top, g.palette)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func pollInput() session.Input {
	var in session.Input
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
	}
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Pointer = append(in.Pointer, session.PointerEvent{Kind: session.PointerDown, Pos: image.Pt(x, y)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.Pointer = append(in.Pointer, session.PointerEvent{Kind: session.PointerUp, Pos: image.Pt(x, y)})
	}
	in.Keys = session.Keys{
		Run:       ebiten.IsKeyPressed(ebiten.KeyG),
		Edit:      ebiten.IsKeyPressed(ebiten.KeyS),
		SpeedUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		SpeedDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Randomize: ebiten.IsKeyPressed(ebiten.KeyR),
	}
	return in
}
