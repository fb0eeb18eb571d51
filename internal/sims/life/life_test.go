package life

import (
	"errors"
	"slices"
	"testing"
	"time"

	"lifegrid/internal/core"
)

const testInterval = 10 * time.Millisecond

func newBlank(t *testing.T, w, h int) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Interval = testInterval
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New(%dx%d): %v", w, h, err)
	}
	l.cur.Clear()
	return l
}

func newRandom(t *testing.T, w, h int, seed int64) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Interval = testInterval
	cfg.Seed = seed
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New(%dx%d): %v", w, h, err)
	}
	return l
}

func snapshot(l *Life) []uint8 { return l.Grid().AppendCells(nil) }

// referenceStep computes the next generation on a bounded grid independently
// of the engine.
func referenceStep(cells []uint8, w, h int) []uint8 {
	out := make([]uint8, len(cells))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					n += int(cells[ny*w+nx])
				}
			}
			alive := cells[y*w+x] == 1
			if n == 3 || (alive && n == 2) {
				out[y*w+x] = 1
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, l *Life, want map[[2]int]bool, stage string) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := l.Alive(x, y)
			if want[[2]int{x, y}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", stage, x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	life := newBlank(t, 3, 3)
	life.cur.Set(1, 1, true)

	life.TogglePause()
	if !life.RequestStep() {
		t.Fatal("expected step while paused to advance")
	}
	if got := life.Population(); got != 0 {
		t.Fatalf("expected empty grid, got population %d", got)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := newBlank(t, 5, 5)
	life.cur.Set(2, 1, true)
	life.cur.Set(2, 2, true)
	life.cur.Set(2, 3, true)
	initial := snapshot(life)

	life.TogglePause()
	life.RequestStep()
	expectAlive(t, life, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "first step")

	life.RequestStep()
	expectAlive(t, life, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "second step")

	if !slices.Equal(initial, snapshot(life)) {
		t.Fatal("blinker did not return to its initial configuration after two generations")
	}
	if got := life.Generation(); got != 2 {
		t.Fatalf("expected generation 2, got %d", got)
	}
}

func TestNeighborCountRule(t *testing.T) {
	ring := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	for _, wasAlive := range []bool{false, true} {
		for k := 0; k <= 8; k++ {
			life := newBlank(t, 3, 3)
			life.cur.Set(1, 1, wasAlive)
			for _, p := range ring[:k] {
				life.cur.Set(p[0], p[1], true)
			}
			life.TogglePause()
			life.RequestStep()

			want := k == 3 || (wasAlive && k == 2)
			if got := life.Alive(1, 1); got != want {
				t.Fatalf("alive=%v with %d neighbors: got %v, expected %v", wasAlive, k, got, want)
			}
		}
	}
}

func TestStepMatchesReference(t *testing.T) {
	life := newRandom(t, 17, 13, 5)
	life.TogglePause()
	for i := 0; i < 8; i++ {
		want := referenceStep(snapshot(life), 17, 13)
		life.RequestStep()
		if !slices.Equal(want, snapshot(life)) {
			t.Fatalf("generation %d differs from reference", i+1)
		}
	}
}

func TestEdgePolicies(t *testing.T) {
	bounded := newBlank(t, 5, 5)
	bounded.cur.Set(1, 0, true)
	bounded.cur.Set(2, 0, true)
	bounded.cur.Set(3, 0, true)
	bounded.TogglePause()
	bounded.RequestStep()
	expectAlive(t, bounded, map[[2]int]bool{{2, 0}: true, {2, 1}: true}, "bounded")

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Edge = EdgeToroidal
	torus, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	torus.cur.Clear()
	torus.cur.Set(1, 0, true)
	torus.cur.Set(2, 0, true)
	torus.cur.Set(3, 0, true)
	torus.TogglePause()
	torus.RequestStep()
	expectAlive(t, torus, map[[2]int]bool{{2, 4}: true, {2, 0}: true, {2, 1}: true}, "toroidal")
}

func TestTogglePauseTwice(t *testing.T) {
	life := newRandom(t, 16, 16, 3)
	life.TogglePause()
	life.Tick(4 * time.Millisecond)
	before := snapshot(life)

	life.TogglePause()
	life.TogglePause()

	if life.State() != core.Paused {
		t.Fatalf("expected paused after double toggle, got %v", life.State())
	}
	if got := life.Pending(); got != 4*time.Millisecond {
		t.Fatalf("toggle changed timer: %v", got)
	}
	if !slices.Equal(before, snapshot(life)) {
		t.Fatal("toggle mutated the grid")
	}
	if life.Generation() != 0 {
		t.Fatalf("toggle advanced to generation %d", life.Generation())
	}
}

func TestRequestStepWhilePaused(t *testing.T) {
	life := newRandom(t, 20, 20, 11)
	life.TogglePause()

	if n := life.Tick(5 * testInterval); n != 0 {
		t.Fatalf("paused tick advanced %d generations", n)
	}
	if got := life.Pending(); got != 5*testInterval {
		t.Fatalf("paused tick should accumulate, pending=%v", got)
	}

	want := referenceStep(snapshot(life), 20, 20)
	if !life.RequestStep() {
		t.Fatal("expected paused step to advance")
	}
	if !slices.Equal(want, snapshot(life)) {
		t.Fatal("step did not advance exactly one generation")
	}
	if life.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", life.Generation())
	}
	if life.Pending() != 0 {
		t.Fatalf("expected timer reset after step, got %v", life.Pending())
	}
}

func TestRequestStepWhileRunningIsNoop(t *testing.T) {
	life := newRandom(t, 20, 20, 11)
	life.Tick(testInterval / 2)
	before := snapshot(life)

	if life.RequestStep() {
		t.Fatal("step while running should be ignored")
	}
	if !slices.Equal(before, snapshot(life)) {
		t.Fatal("step while running mutated the grid")
	}
	if got := life.Pending(); got != testInterval/2 {
		t.Fatalf("step while running changed timer: %v", got)
	}
	if life.Generation() != 0 {
		t.Fatalf("unexpected generation %d", life.Generation())
	}
}

func TestRandomizeResetsTimerAndKeepsState(t *testing.T) {
	life := newRandom(t, 64, 64, 1)
	life.TogglePause()
	life.Tick(7 * time.Millisecond)
	life.RequestStep()
	life.Tick(3 * time.Millisecond)
	before := snapshot(life)

	life.Randomize()

	if life.Size() != (core.Size{W: 64, H: 64}) {
		t.Fatalf("randomize changed size to %+v", life.Size())
	}
	if life.Pending() != 0 {
		t.Fatalf("expected timer reset, got %v", life.Pending())
	}
	if life.State() != core.Paused {
		t.Fatal("randomize changed control state")
	}
	if life.Generation() != 0 {
		t.Fatalf("expected generation counter reset, got %d", life.Generation())
	}
	after := snapshot(life)
	if slices.Equal(before, after) {
		t.Fatal("consecutive randomize calls produced identical grids")
	}

	pop := life.Population()
	if pop < 64*64*4/10 || pop > 64*64*6/10 {
		t.Fatalf("population %d far from 50%% density", pop)
	}

	life.Randomize()
	if slices.Equal(after, snapshot(life)) {
		t.Fatal("repeated randomize produced identical grids")
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	life := newRandom(t, 24, 18, 9)

	want := make([]uint8, 24*18)
	core.FillBinary(core.NewRNG(9), want, 0.5)
	if !slices.Equal(want, snapshot(life)) {
		t.Fatal("initial board does not match the seeded random source")
	}

	life.Seed(1234)
	first := snapshot(life)
	life.Tick(3 * testInterval)
	life.Seed(1234)
	if !slices.Equal(first, snapshot(life)) {
		t.Fatal("Seed with the same value produced different boards")
	}

	other := newRandom(t, 24, 18, 77)
	other.Seed(1234)
	if !slices.Equal(first, snapshot(other)) {
		t.Fatal("independent engines disagree for the same seed")
	}
}

func TestExplicitRandomSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Density = 1
	life, err := New(cfg, core.NewRNG(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := life.Population(); got != 100 {
		t.Fatalf("density 1 should fill the board, got %d", got)
	}
}

func TestTickDrainsBacklog(t *testing.T) {
	life := newRandom(t, 12, 12, 21)
	cells := snapshot(life)
	for i := 0; i < 3; i++ {
		cells = referenceStep(cells, 12, 12)
	}

	if n := life.Tick(3 * testInterval); n != 3 {
		t.Fatalf("expected 3 generations, got %d", n)
	}
	if life.Pending() != 0 {
		t.Fatalf("expected empty timer, got %v", life.Pending())
	}
	if !slices.Equal(cells, snapshot(life)) {
		t.Fatal("catch-up generations differ from reference")
	}

	if n := life.Tick(2*testInterval + 3*time.Millisecond); n != 2 {
		t.Fatalf("expected 2 generations, got %d", n)
	}
	if got := life.Pending(); got != 3*time.Millisecond {
		t.Fatalf("expected remainder 3ms, got %v", got)
	}
	if life.Generation() != 5 {
		t.Fatalf("expected generation 5, got %d", life.Generation())
	}
}

func TestTickBelowIntervalAccumulates(t *testing.T) {
	life := newRandom(t, 8, 8, 2)
	before := snapshot(life)
	life.Tick(4 * time.Millisecond)
	life.Tick(4 * time.Millisecond)
	if !slices.Equal(before, snapshot(life)) {
		t.Fatal("advanced before a full interval elapsed")
	}
	if n := life.Tick(2 * time.Millisecond); n != 1 {
		t.Fatalf("expected one generation once the interval filled, got %d", n)
	}
	if life.Pending() != 0 {
		t.Fatalf("expected empty timer, got %v", life.Pending())
	}
}

func TestTickIgnoresNegativeElapsed(t *testing.T) {
	life := newRandom(t, 8, 8, 2)
	life.Tick(4 * time.Millisecond)
	life.Tick(-time.Second)
	if got := life.Pending(); got != 4*time.Millisecond {
		t.Fatalf("negative elapsed changed timer to %v", got)
	}
}

func TestPausedTickThenResumeCatchesUp(t *testing.T) {
	life := newRandom(t, 8, 8, 2)
	life.TogglePause()
	life.Tick(2 * testInterval)
	if life.Generation() != 0 {
		t.Fatal("paused engine advanced")
	}
	life.TogglePause()
	if n := life.Tick(0); n != 2 {
		t.Fatalf("expected accumulated time to drain on resume, got %d", n)
	}
}

func TestUpdateAppliesInputsInOrder(t *testing.T) {
	life := newRandom(t, 10, 10, 4)

	if n := life.Update(Input{TogglePause: true, Step: true, Elapsed: 5 * testInterval}); n != 1 {
		t.Fatalf("pause+step frame should advance once, got %d", n)
	}
	if !life.Paused() {
		t.Fatal("expected paused")
	}
	if life.Pending() != 5*testInterval {
		t.Fatalf("paused frame should accumulate elapsed, got %v", life.Pending())
	}

	life.Update(Input{Reseed: true, Elapsed: time.Millisecond})
	if life.Generation() != 0 || life.Pending() != time.Millisecond {
		t.Fatalf("reseed frame: generation=%d pending=%v", life.Generation(), life.Pending())
	}

	if n := life.Update(Input{TogglePause: true, Elapsed: testInterval}); n != 1 {
		t.Fatalf("resume frame should advance once, got %d", n)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, workers := range []int{2, 3, 8, 64} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 31, 23
		cfg.Seed = 17
		cfg.Interval = testInterval

		seq, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		cfg.Workers = workers
		par, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}

		seq.Tick(10 * testInterval)
		par.Tick(10 * testInterval)
		if !slices.Equal(snapshot(seq), snapshot(par)) {
			t.Fatalf("workers=%d diverged from sequential advance", workers)
		}
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	a := newRandom(t, 16, 16, 8)
	b := newRandom(t, 16, 16, 8)

	a.Tick(4 * testInterval)
	if !slices.Equal(snapshot(b), snapshot(newRandom(t, 16, 16, 8))) {
		t.Fatal("advancing one engine changed another")
	}
	a.TogglePause()
	if b.Paused() {
		t.Fatal("pausing one engine paused another")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -3 }, ErrInvalidSize},
		{"zero interval", func(c *Config) { c.Interval = 0 }, ErrInvalidInterval},
		{"density above one", func(c *Config) { c.Density = 1.5 }, ErrInvalidDensity},
		{"unknown edge", func(c *Config) { c.Edge = "klein" }, ErrInvalidEdge},
		{"negative backlog", func(c *Config) { c.MaxBacklog = -time.Second }, ErrInvalidBacklog},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		life, err := New(cfg, nil)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if life != nil {
			t.Fatalf("%s: expected nil engine on error", tc.name)
		}
	}
}

func TestViewTracksCurrentGeneration(t *testing.T) {
	life := newBlank(t, 5, 5)
	life.cur.Set(2, 1, true)
	life.cur.Set(2, 2, true)
	life.cur.Set(2, 3, true)
	view := life.Grid()

	life.TogglePause()
	life.RequestStep()

	if !view.Alive(1, 2) || view.Alive(2, 1) {
		t.Fatal("view did not follow the buffer swap")
	}
	if view.Alive(-1, 0) || view.Alive(5, 5) {
		t.Fatal("out of bounds cells must read as dead")
	}
	if got := view.AppendRow(nil, 2); !slices.Equal(got, []uint8{0, 1, 1, 1, 0}) {
		t.Fatalf("unexpected row %v", got)
	}
	if view.Population() != 3 {
		t.Fatalf("expected population 3, got %d", view.Population())
	}
}

func TestMaxBacklogBoundsResumeBurst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Interval = testInterval
	cfg.MaxBacklog = 3 * testInterval
	life, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	life.TogglePause()
	for i := 0; i < 3600; i++ {
		life.Tick(16 * time.Millisecond)
	}
	if got := life.Pending(); got != 3*testInterval {
		t.Fatalf("paused backlog should be capped at 30ms, got %v", got)
	}

	life.TogglePause()
	if n := life.Tick(0); n != 3 {
		t.Fatalf("resume should replay at most 3 generations, got %d", n)
	}
	if life.Pending() != 0 {
		t.Fatalf("expected drained timer, got %v", life.Pending())
	}
}

func TestUnboundedBacklogReplaysWholePause(t *testing.T) {
	life := newRandom(t, 8, 8, 6)
	life.TogglePause()
	life.Tick(time.Second)
	life.TogglePause()
	if n := life.Tick(0); n != 100 {
		t.Fatalf("expected 100 catch-up generations without a cap, got %d", n)
	}
}
