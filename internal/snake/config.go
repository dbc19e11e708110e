package snake

import "time"

// Board and pacing constants.
const (
	GridSize     = 25
	CellSize     = 25
	MoveInterval = 200 * time.Millisecond
)

// Config controls the board dimensions and pacing of a Game.
type Config struct {
	// GridSize is the number of cells per side.
	GridSize int
	// CellSize is the edge length in pixels of one cell in a rendered frame.
	CellSize int
	// MoveInterval is the real-time gap between two snake moves.
	MoveInterval time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:     GridSize,
		CellSize:     CellSize,
		MoveInterval: MoveInterval,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.GridSize <= 0 {
		c.GridSize = d.GridSize
	}
	if c.CellSize <= 0 {
		c.CellSize = d.CellSize
	}
	if c.MoveInterval <= 0 {
		c.MoveInterval = d.MoveInterval
	}
	return c
}

// FrameSize is the edge length in pixels of a rendered frame.
func (c Config) FrameSize() int { return c.GridSize * c.CellSize }
