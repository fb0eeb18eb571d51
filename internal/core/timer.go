package core

import "time"

// StepTimer accumulates elapsed frame time against a fixed generation
// interval. The accumulated value is never negative and, when a limit is
// set, never exceeds it.
type StepTimer struct {
	step        time.Duration
	accumulator time.Duration
	limit       time.Duration
}

// NewStepTimer constructs a timer for the given interval. A non-positive
// interval falls back to one sixtieth of a second.
func NewStepTimer(interval time.Duration) *StepTimer {
	t := &StepTimer{}
	t.SetInterval(interval)
	return t
}

// IntervalForTPS converts a ticks-per-second rate into an interval.
func IntervalForTPS(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

// SetInterval changes the generation interval. It is safe to call from the main loop.
func (t *StepTimer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = IntervalForTPS(60)
	}
	t.step = interval
}

// SetLimit caps the accumulator. Zero or negative removes the cap.
func (t *StepTimer) SetLimit(limit time.Duration) {
	if limit < 0 {
		limit = 0
	}
	t.limit = limit
	if t.limit > 0 && t.accumulator > t.limit {
		t.accumulator = t.limit
	}
}

// Interval returns the configured generation interval.
func (t *StepTimer) Interval() time.Duration { return t.step }

// Elapsed returns the time accumulated since the last advance.
func (t *StepTimer) Elapsed() time.Duration { return t.accumulator }

// Add accumulates elapsed time. Negative durations are ignored.
func (t *StepTimer) Add(delta time.Duration) {
	if delta <= 0 {
		return
	}
	t.accumulator += delta
	if t.limit > 0 && t.accumulator > t.limit {
		t.accumulator = t.limit
	}
}

// ShouldStep reports whether a full interval has accumulated and, if so,
// consumes it. Calling it in a loop drains the backlog one interval at a time.
func (t *StepTimer) ShouldStep() bool {
	if t.accumulator >= t.step {
		t.accumulator -= t.step
		return true
	}
	return false
}

// Reset zeroes the accumulator.
func (t *StepTimer) Reset() { t.accumulator = 0 }
