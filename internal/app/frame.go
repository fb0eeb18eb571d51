package app

import (
	"time"

	"lifegrid/internal/sims/life"
)

// Intents are the per-frame key presses a driver collected.
type Intents struct {
	TogglePause bool
	Step        bool
	Reseed      bool
	Quit        bool
}

// Clock measures wall time between driver frames.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a Clock reading the given time source; nil uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Elapsed returns the time since the previous call. The first call reports zero.
func (c *Clock) Elapsed() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

// Input combines elapsed time and intents into one engine frame.
func (in Intents) Input(elapsed time.Duration) life.Input {
	return life.Input{
		Elapsed:     elapsed,
		TogglePause: in.TogglePause,
		Step:        in.Step,
		Reseed:      in.Reseed,
	}
}
