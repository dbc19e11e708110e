package snake

// Outcome reports what a single Advance did.
type Outcome uint8

const (
	// Idle means nothing moved: no heading yet, already dead, or the tick
	// interval has not elapsed.
	Idle Outcome = iota
	// Moved means the snake advanced one cell without growing.
	Moved
	// Ate means the snake advanced onto the food and grew by one.
	Ate
	// Died means the move hit a wall or the snake's own body.
	Died
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Died:
		return "died"
	default:
		return "idle"
	}
}

// DeathCause records why a game ended.
type DeathCause string

const (
	// CauseNone is reported while the snake is alive.
	CauseNone DeathCause = ""
	// CauseWall is reported when the head would have left the board.
	CauseWall DeathCause = "wall-collision"
	// CauseSelf is reported when the head ran into the body.
	CauseSelf DeathCause = "self-collision"
)
