// Package sim plays games headlessly with scripted input and checks the
// game invariants after every tick.
package sim

import (
	"fmt"
	"slices"
	"time"

	"snake/internal/core"
	"snake/internal/snake"
)

// Result describes one finished (or abandoned) game.
type Result struct {
	Seed       int64
	Ticks      int
	Length     int
	Cause      snake.DeathCause
	Violations []string
}

// Play runs a game seeded with seed for at most maxTicks moves. The player
// heads for the food most of the time and turns at random otherwise.
func Play(cfg snake.Config, seed int64, maxTicks int) Result {
	clock := &core.ManualClock{T: time.Unix(0, 0)}
	game := snake.New(cfg, core.NewRNG(seed), clock)
	intents := core.NewRNG(seed ^ 0x5EED)
	res := Result{Seed: seed}

	for res.Ticks < maxTicks && !game.Dead() {
		game.SetDirection(pickDirection(game, intents))
		before := game.Len()
		prevHead := game.Head()

		clock.Advance(game.Config().MoveInterval)
		out := game.Tick()
		res.Ticks++

		if v := check(game, out, before, prevHead); v != "" {
			res.Violations = append(res.Violations, fmt.Sprintf("tick %d: %s", res.Ticks, v))
		}
	}
	res.Length = game.Len()
	res.Cause = game.Cause()
	return res
}

func check(g *snake.Game, out snake.Outcome, before, prevHead int) string {
	switch out {
	case snake.Idle:
		return "tick did not advance after a full interval"
	case snake.Moved:
		if g.Len() != before {
			return fmt.Sprintf("length changed on a plain move: %d -> %d", before, g.Len())
		}
	case snake.Ate:
		if g.Len() != before+1 {
			return fmt.Sprintf("length changed by %d on eat", g.Len()-before)
		}
	case snake.Died:
		return checkDeath(g, before, prevHead)
	}
	if !g.Grid().Adjacent(prevHead, g.Head()) {
		return fmt.Sprintf("head jumped from %d to %d", prevHead, g.Head())
	}
	body := g.Snake()
	slices.Sort(body)
	if len(slices.Compact(body)) != len(g.Snake()) {
		return "snake overlaps itself while alive"
	}
	if f := g.Food(); f != snake.NoFood && g.Occupies(f) {
		return fmt.Sprintf("food %d placed on the snake", f)
	}
	return ""
}

// checkDeath verifies the state a death leaves behind: a wall death keeps the
// snake where it was, a self-collision adds the fatal head next to the old one
// without growing anything else, and the food stays off the body either way.
func checkDeath(g *snake.Game, before, prevHead int) string {
	switch g.Cause() {
	case snake.CauseWall:
		if g.Head() != prevHead || g.Len() != before {
			return fmt.Sprintf("wall death moved the snake: head %d -> %d, length %d -> %d", prevHead, g.Head(), before, g.Len())
		}
	case snake.CauseSelf:
		if g.Len() != before+1 || !g.Grid().Adjacent(prevHead, g.Head()) {
			return fmt.Sprintf("self-collision left head %d (was %d), length %d -> %d", g.Head(), prevHead, before, g.Len())
		}
		if !slices.Contains(g.Snake()[1:], g.Head()) {
			return fmt.Sprintf("self-collision at %d but the body does not cover it", g.Head())
		}
	default:
		return fmt.Sprintf("died without a cause (%q)", g.Cause())
	}
	if f := g.Food(); f != snake.NoFood && g.Occupies(f) {
		return fmt.Sprintf("food %d on the snake after %s", f, g.Cause())
	}
	return ""
}

var directions = []snake.Direction{snake.Up, snake.Down, snake.Left, snake.Right}

func pickDirection(g *snake.Game, rng *core.RNG) snake.Direction {
	if g.Food() == snake.NoFood || rng.IntN(10) >= 7 {
		return directions[rng.IntN(len(directions))]
	}
	hr, hc := g.Grid().RowCol(g.Head())
	fr, fc := g.Grid().RowCol(g.Food())
	switch {
	case fr < hr:
		return snake.Up
	case fr > hr:
		return snake.Down
	case fc < hc:
		return snake.Left
	case fc > hc:
		return snake.Right
	}
	return snake.None
}

// Summary aggregates results across games.
type Summary struct {
	Games      int
	WallDeaths int
	SelfDeaths int
	Survived   int
	MaxLength  int
	TotalTicks int
	Violations []string
}

// Add folds r into the summary.
func (s *Summary) Add(r Result) {
	s.Games++
	s.TotalTicks += r.Ticks
	switch r.Cause {
	case snake.CauseWall:
		s.WallDeaths++
	case snake.CauseSelf:
		s.SelfDeaths++
	default:
		s.Survived++
	}
	if r.Length > s.MaxLength {
		s.MaxLength = r.Length
	}
	for _, v := range r.Violations {
		s.Violations = append(s.Violations, fmt.Sprintf("seed %d %s", r.Seed, v))
	}
}
