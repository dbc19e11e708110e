package snake

// Direction is the heading of the snake.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the reverse heading. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// offset is the flat-index delta of one step on a board n cells wide.
func (d Direction) offset(n int) int {
	switch d {
	case Up:
		return -n
	case Down:
		return n
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}
