package core

import "time"

// Clock reports the current time. Simulations read time through a Clock so
// tests can drive the tick cadence by hand.
type Clock interface {
	Now() time.Time
}

// IndexSource samples uniform integers in [0, n).
type IndexSource interface {
	IntN(n int) int
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. Headless runs use it to
// step games without waiting on real time.
type ManualClock struct {
	T time.Time
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.T }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
