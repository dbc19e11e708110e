package core

import "time"

// Ticker gates simulation updates to a fixed real-time interval. Unlike an
// accumulating fixed step it never bursts to catch up: once the interval has
// elapsed it fires once and restarts from the current time.
type Ticker struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewTicker constructs a Ticker that starts counting from clock.Now().
func NewTicker(clock Clock, interval time.Duration) *Ticker {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Ticker{clock: clock, interval: interval, last: clock.Now()}
}

// Interval returns the configured gate interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Last returns the time of the most recent firing, or construction.
func (t *Ticker) Last() time.Time { return t.last }

// Ready reports whether the interval has elapsed, restarting the interval
// when it has.
func (t *Ticker) Ready() bool {
	now := t.clock.Now()
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
