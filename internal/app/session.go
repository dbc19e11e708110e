package app

import (
	"errors"
	"log"

	"snake/internal/snake"
)

// LostPrompt is shown while a round is over.
const LostPrompt = "You lost, press enter to play again."

// ErrQuit is returned by Session.Update when the player asks to leave.
var ErrQuit = errors.New("app: quit requested")

// Key names the inputs a host forwards to the session.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyConfirm
	KeyQuit
)

// Input reports the key-down state of the current frame.
type Input interface {
	Pressed(k Key) bool
}

// Session is the per-frame host loop shared by every front end: it maps held
// keys to headings, advances the game on its own cadence, resets it on
// confirm after a death and keeps the frame buffer.
type Session struct {
	game  *snake.Game
	log   *log.Logger
	frame []uint32
}

// NewSession wraps game. A nil logger writes to the standard logger.
func NewSession(game *snake.Game, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{game: game, log: logger}
}

// Game exposes the driven game.
func (s *Session) Game() *snake.Game { return s.game }

// Update runs one frame of input handling and simulation.
func (s *Session) Update(in Input) (snake.Outcome, error) {
	if in.Pressed(KeyQuit) {
		return snake.Idle, ErrQuit
	}

	if s.game.Dead() {
		if in.Pressed(KeyConfirm) {
			s.game.Reset()
		}
		return snake.Idle, nil
	}

	if d := heading(in); d != snake.None {
		s.game.SetDirection(d)
	}

	out := s.game.Tick()
	if out == snake.Died {
		s.log.Printf("snake died: %s at length %d", s.game.Cause(), s.game.Len())
		s.log.Println(LostPrompt)
	}
	return out, nil
}

// Frame renders the current game into the session's reusable buffer.
func (s *Session) Frame() []uint32 {
	s.frame = s.game.RenderFrame(s.frame)
	return s.frame
}

// Prompt returns the text to show over the board, if any.
func (s *Session) Prompt() string {
	if s.game.Dead() {
		return LostPrompt
	}
	return ""
}

// heading picks one direction from the held keys, preferring up, down, left
// and right in that order.
func heading(in Input) snake.Direction {
	switch {
	case in.Pressed(KeyUp):
		return snake.Up
	case in.Pressed(KeyDown):
		return snake.Down
	case in.Pressed(KeyLeft):
		return snake.Left
	case in.Pressed(KeyRight):
		return snake.Right
	}
	return snake.None
}
