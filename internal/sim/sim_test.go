package sim

import (
	"strings"
	"testing"
	"time"

	"snake/internal/core"
	"snake/internal/snake"
)

type fixedSource struct {
	draws []int
	i     int
}

func (f *fixedSource) IntN(n int) int {
	v := f.draws[f.i%len(f.draws)]
	f.i++
	return v % n
}

func newScriptedGame(draws ...int) *snake.Game {
	cfg := snake.Config{GridSize: 5, CellSize: 1, MoveInterval: time.Millisecond}
	return snake.New(cfg, &fixedSource{draws: draws}, &core.ManualClock{T: time.Unix(0, 0)})
}

func TestPlayKeepsInvariants(t *testing.T) {
	cfg := snake.Config{GridSize: 8, CellSize: 1, MoveInterval: 200 * time.Millisecond}
	var sum Summary
	for seed := int64(1); seed <= 50; seed++ {
		sum.Add(Play(cfg, seed, 2000))
	}
	if len(sum.Violations) > 0 {
		t.Fatalf("invariant violations: %v", sum.Violations)
	}
	if sum.Games != 50 || sum.WallDeaths+sum.SelfDeaths+sum.Survived != 50 {
		t.Fatalf("summary does not add up: %+v", sum)
	}
	if sum.MaxLength < 2 {
		t.Fatalf("expected at least one snake to eat, max length %d", sum.MaxLength)
	}
}

func TestPlayDeterministic(t *testing.T) {
	cfg := snake.Config{GridSize: 10, CellSize: 1, MoveInterval: time.Millisecond}
	a := Play(cfg, 42, 500)
	b := Play(cfg, 42, 500)
	if a.Ticks != b.Ticks || a.Length != b.Length || a.Cause != b.Cause {
		t.Fatalf("same seed gave different games: %+v vs %+v", a, b)
	}
}

func TestPlayStopsAtMaxTicks(t *testing.T) {
	cfg := snake.Config{GridSize: 10, CellSize: 1, MoveInterval: time.Millisecond}
	r := Play(cfg, 3, 1)
	if r.Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", r.Ticks)
	}
}

func TestSummaryAdd(t *testing.T) {
	var s Summary
	s.Add(Result{Seed: 1, Ticks: 10, Length: 3, Cause: snake.CauseWall})
	s.Add(Result{Seed: 2, Ticks: 5, Length: 7, Cause: snake.CauseSelf, Violations: []string{"tick 4: boom"}})
	s.Add(Result{Seed: 3, Ticks: 1, Length: 1})
	if s.Games != 3 || s.WallDeaths != 1 || s.SelfDeaths != 1 || s.Survived != 1 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if s.MaxLength != 7 || s.TotalTicks != 16 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if len(s.Violations) != 1 || s.Violations[0] != "seed 2 tick 4: boom" {
		t.Fatalf("unexpected violations %v", s.Violations)
	}
}

func TestCheckWallDeath(t *testing.T) {
	g := newScriptedGame(4, 0)
	g.SetDirection(snake.Right)
	if out := g.Advance(); out != snake.Died {
		t.Fatalf("Advance = %v, want died", out)
	}
	if v := check(g, snake.Died, 1, 4); v != "" {
		t.Fatalf("unexpected violation for a clean wall death: %s", v)
	}
	if v := check(g, snake.Died, 1, 3); !strings.Contains(v, "wall death moved the snake") {
		t.Fatalf("expected a moved-head violation, got %q", v)
	}
}

func TestCheckSelfCollision(t *testing.T) {
	// Eat four times to build [18 19 14 13 12], then turn up into 13.
	g := newScriptedGame(12, 13, 14, 19, 18, 0)
	for _, d := range []snake.Direction{snake.Right, snake.Right, snake.Down, snake.Left} {
		g.SetDirection(d)
		if out := g.Advance(); out != snake.Ate {
			t.Fatalf("Advance %v = %v, want ate", d, out)
		}
	}
	g.SetDirection(snake.Up)
	if out := g.Advance(); out != snake.Died || g.Cause() != snake.CauseSelf {
		t.Fatalf("Advance = %v cause %q, want self-collision", out, g.Cause())
	}
	if v := check(g, snake.Died, 5, 18); v != "" {
		t.Fatalf("unexpected violation for a clean self-collision: %s", v)
	}
	if v := check(g, snake.Died, 4, 18); !strings.Contains(v, "self-collision left head") {
		t.Fatalf("expected a length violation, got %q", v)
	}
}
