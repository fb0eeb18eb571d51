package life

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"lifegrid/internal/core"
)

// Edge selects how neighbors beyond the grid border are treated.
type Edge string

const (
	// EdgeBounded treats cells outside the grid as dead.
	EdgeBounded Edge = "bounded"
	// EdgeToroidal wraps coordinates around opposite borders.
	EdgeToroidal Edge = "toroidal"
)

var (
	ErrInvalidSize     = errors.New("life: grid dimensions must be positive")
	ErrInvalidInterval = errors.New("life: generation interval must be positive")
	ErrInvalidDensity  = errors.New("life: density must be within [0, 1]")
	ErrInvalidEdge     = errors.New("life: unknown edge policy")
	ErrInvalidBacklog  = errors.New("life: max backlog must not be negative")
)

// Config controls the Life engine dimensions, timing and seeding.
type Config struct {
	Width  int
	Height int

	// Interval is the time between generations while running.
	Interval time.Duration

	// MaxBacklog caps the time the step timer can hold, bounding the number
	// of catch-up generations after a stall or a long pause. Zero is unbounded.
	MaxBacklog time.Duration

	// Density is the probability that a cell starts alive after a reseed.
	Density float64
	Seed    int64
	Edge    Edge

	// Workers splits each advance into row bands computed concurrently.
	Workers int
}

// DefaultConfig returns the standard configuration: a 200x200 bounded board
// advancing 15 generations per second.
func DefaultConfig() Config {
	return Config{
		Width:    200,
		Height:   200,
		Interval: core.IntervalForTPS(15),
		Density:  0.5,
		Seed:     42,
		Edge:     EdgeBounded,
		Workers:  1,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = core.IntervalForTPS(parsed)
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["max_backlog"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.MaxBacklog = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["edge"]; ok {
		if e := Edge(v); e == EdgeBounded || e == EdgeToroidal {
			c.Edge = e
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Validate reports configuration errors that make the engine unusable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", c.Width, c.Height, ErrInvalidSize)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%s: %w", c.Interval, ErrInvalidInterval)
	}
	if c.MaxBacklog < 0 {
		return fmt.Errorf("%s: %w", c.MaxBacklog, ErrInvalidBacklog)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%g: %w", c.Density, ErrInvalidDensity)
	}
	switch c.Edge {
	case EdgeBounded, EdgeToroidal:
	default:
		return fmt.Errorf("%q: %w", c.Edge, ErrInvalidEdge)
	}
	return nil
}
