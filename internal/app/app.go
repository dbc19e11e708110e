//go:build ebiten

package app

import (
	"errors"

	"snake/internal/render"
	"snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.FramePainter
	overlay *ui.Overlay
	sound   *sound
	side    int
}

// New constructs a Game for the provided session.
func New(session *Session, mute bool) *Game {
	side := session.Game().Config().FrameSize()
	return &Game{
		session: session,
		painter: render.NewFramePainter(side, side),
		overlay: ui.NewOverlay(),
		sound:   newSound(mute),
		side:    side,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sound.Toggle()
	}

	out, err := g.session.Update(keyboard{})
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}
	g.sound.Play(out)
	return nil
}

// Draw renders the current game state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Frame())
	g.overlay.Draw(screen, g.session.Game().Len(), g.session.Prompt())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.side, g.side
}

// keyboard reads held keys straight from ebiten.
type keyboard struct{}

func (keyboard) Pressed(k Key) bool {
	switch k {
	case KeyUp:
		return ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	case KeyDown:
		return ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	case KeyLeft:
		return ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	case KeyRight:
		return ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	case KeyConfirm:
		return ebiten.IsKeyPressed(ebiten.KeyEnter)
	case KeyQuit:
		return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	}
	return false
}
