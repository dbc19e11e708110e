package app

import (
	"flag"
	"time"

	"snake/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	TPS  int
	Seed int64
	Mute bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "input polls per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for snake and food placement (0 = time based)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound effects off")
}

// RNG returns the random source selected by Seed.
func (c *Config) RNG() *core.RNG {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewRNG(seed)
}
