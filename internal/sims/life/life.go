package life

import (
	"time"

	"lifegrid/internal/core"
)

// Life implements Conway's Game of Life driven by a host frame loop.
//
// The engine owns two equally sized buffers. Advances read cur, write nxt and
// then swap the two, so callers never observe a partially updated generation.
// Life is not safe for concurrent use; drivers call it from a single goroutine.
type Life struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	state      core.ControlState
	timer      *core.StepTimer
	generation uint64

	rng *core.RNG
}

// Input carries the driver's per-frame signals.
type Input struct {
	Elapsed     time.Duration
	TogglePause bool
	Step        bool
	Reseed      bool
}

// New validates cfg and returns a running engine seeded with a random board.
// When rng is nil a generator seeded from cfg.Seed is used.
func New(cfg Config, rng *core.RNG) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	l := &Life{
		cfg:   cfg,
		cur:   core.NewGrid(cfg.Width, cfg.Height),
		nxt:   core.NewGrid(cfg.Width, cfg.Height),
		state: core.Running,
		timer: core.NewStepTimer(cfg.Interval),
		rng:   rng,
	}
	l.timer.SetLimit(cfg.MaxBacklog)
	l.Randomize()
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// State returns the current control state.
func (l *Life) State() core.ControlState { return l.state }

// Paused reports whether the engine only advances on explicit steps.
func (l *Life) Paused() bool { return l.state == core.Paused }

// Generation counts advances since the last reseed.
func (l *Life) Generation() uint64 { return l.generation }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.cur.Population() }

// Alive reports whether the current cell at (x, y) is alive.
func (l *Life) Alive(x, y int) bool { return l.cur.Alive(x, y) }

// Interval returns the configured time between generations.
func (l *Life) Interval() time.Duration { return l.timer.Interval() }

// Pending returns the time accumulated towards the next timed advance.
func (l *Life) Pending() time.Duration { return l.timer.Elapsed() }

// Grid returns a read-only view of the current generation.
func (l *Life) Grid() View { return View{l: l} }

// Seed restarts the random source from seed and reseeds the board.
func (l *Life) Seed(seed int64) {
	l.cfg.Seed = seed
	l.rng.Reseed(seed)
	l.Randomize()
}

// Randomize overwrites the current board with fresh random cells. The control
// state is left unchanged.
func (l *Life) Randomize() {
	core.FillBinary(l.rng, l.cur.Cells(), l.cfg.Density)
	l.timer.Reset()
	l.generation = 0
}

// TogglePause flips between running and paused.
func (l *Life) TogglePause() {
	if l.state == core.Paused {
		l.state = core.Running
		return
	}
	l.state = core.Paused
}

// RequestStep advances one generation when paused and reports whether it did.
// While running the request is ignored.
func (l *Life) RequestStep() bool {
	if l.state != core.Paused {
		return false
	}
	l.advance()
	l.timer.Reset()
	return true
}

// Tick accumulates elapsed frame time. While running every full interval in
// the accumulator yields one generation, so stalled frames are caught up
// rather than dropped. It returns the number of generations advanced.
//
// Time keeps accumulating while paused and drains on the first running tick
// after resume. Without Config.MaxBacklog a long pause therefore replays as a
// burst of generations in one frame.
func (l *Life) Tick(elapsed time.Duration) int {
	l.timer.Add(elapsed)
	if l.state == core.Paused {
		return 0
	}
	n := 0
	for l.timer.ShouldStep() {
		l.advance()
		n++
	}
	return n
}

// Update applies one frame of driver input: pause toggle, step request,
// reseed, then elapsed time. It returns the generations advanced.
func (l *Life) Update(in Input) int {
	if in.TogglePause {
		l.TogglePause()
	}
	n := 0
	if in.Step && l.RequestStep() {
		n++
	}
	if in.Reseed {
		l.Randomize()
	}
	return n + l.Tick(in.Elapsed)
}

func (l *Life) advance() {
	l.step()
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
