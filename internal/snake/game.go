package snake

import (
	"slices"
	"time"

	"snake/internal/core"
)

// NoFood is reported by Food when the snake covers the whole board.
const NoFood = -1

// Game holds the complete state of one round: the snake body, its heading,
// the food cell and whether the snake is still alive.
type Game struct {
	cfg    Config
	grid   core.Grid
	rng    core.IndexSource
	clock  core.Clock
	ticker *core.Ticker

	body  []int
	dir   Direction
	food  int
	dead  bool
	cause DeathCause
}

// New starts a round with a one-cell snake and a food cell, both drawn from
// rng, no heading and the tick clock set to clock.Now(). A nil rng is seeded
// from the current time and a nil clock falls back to the system clock.
func New(cfg Config, rng core.IndexSource, clock core.Clock) *Game {
	cfg = cfg.normalized()
	if rng == nil {
		rng = core.NewRNG(time.Now().UnixNano())
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	grid := core.NewGrid(cfg.GridSize)
	g := &Game{
		cfg:    cfg,
		grid:   grid,
		rng:    rng,
		clock:  clock,
		ticker: core.NewTicker(clock, cfg.MoveInterval),
		body:   []int{rng.IntN(grid.Cells())},
		dir:    None,
	}
	g.placeFood()
	return g
}

// Reset throws the round away and starts a fresh one with the same
// configuration, random source and clock.
func (g *Game) Reset() {
	*g = *New(g.cfg, g.rng, g.clock)
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Grid returns the board geometry.
func (g *Game) Grid() core.Grid { return g.grid }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []int { return slices.Clone(g.body) }

// Head returns the index of the head cell.
func (g *Game) Head() int { return g.body[0] }

// Len returns the number of cells the snake covers.
func (g *Game) Len() int { return len(g.body) }

// Food returns the food cell, or NoFood when the board is full.
func (g *Game) Food() int { return g.food }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.dir }

// Dead reports whether the round has ended.
func (g *Game) Dead() bool { return g.dead }

// Cause reports why the round ended, or CauseNone while alive.
func (g *Game) Cause() DeathCause { return g.cause }

// Occupies reports whether the snake covers cell i.
func (g *Game) Occupies(i int) bool { return slices.Contains(g.body, i) }

// SetDirection changes the heading. Reversing straight into the neck, None,
// and any input after death are ignored.
func (g *Game) SetDirection(d Direction) {
	if g.dead || d == None {
		return
	}
	if d == g.dir.Opposite() {
		return
	}
	g.dir = d
}

// Tick advances the snake when the move interval has elapsed since the last
// tick and reports Idle otherwise.
func (g *Game) Tick() Outcome {
	if !g.ticker.Ready() {
		return Idle
	}
	return g.Advance()
}

// Advance moves the snake one cell in its current heading.
//
// The wall test looks at the current head, never the candidate cell, so a
// sideways move off the end of a row is a collision instead of a jump to the
// next row. The body test runs before the tail is released, so moving into the
// cell the tail is about to leave is fatal.
func (g *Game) Advance() Outcome {
	if g.dead || g.dir == None {
		return Idle
	}

	head := g.body[0]
	if g.hitsWall(head) {
		g.die(CauseWall)
		return Died
	}

	next := head + g.dir.offset(g.grid.N)
	g.body = slices.Insert(g.body, 0, next)

	if next == g.food {
		g.placeFood()
		return Ate
	}
	if slices.Contains(g.body[1:], next) {
		g.die(CauseSelf)
		return Died
	}
	g.body = g.body[:len(g.body)-1]
	return Moved
}

func (g *Game) hitsWall(head int) bool {
	switch g.dir {
	case Up:
		return g.grid.InFirstRow(head)
	case Down:
		return g.grid.InLastRow(head)
	case Left:
		return g.grid.InFirstCol(head)
	case Right:
		return g.grid.InLastCol(head)
	}
	return false
}

func (g *Game) die(cause DeathCause) {
	g.dead = true
	g.cause = cause
}
