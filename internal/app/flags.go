package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

var (
	ErrInvalidScale = errors.New("app: scale must be positive")
	ErrInvalidTPS   = errors.New("app: tps must be positive")
	ErrInvalidFPS   = errors.New("app: fps must be positive")
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	Scale      int
	TPS        int
	FPS        int
	MaxBacklog time.Duration
	Density    float64
	Seed       int64
	Edge       string
	Workers    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:      200,
		Height:     200,
		Scale:      4,
		TPS:        15,
		FPS:        60,
		MaxBacklog: time.Second,
		Density:    0.5,
		Seed:       42,
		Edge:       string(life.EdgeBounded),
		Workers:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet. -w is kept as a
// short alias of -width; -h stays free for the flag package's help.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Width, "w", c.Width, "alias for -width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.IntVar(&c.FPS, "fps", c.FPS, "driver frames per second")
	fs.DurationVar(&c.MaxBacklog, "max-backlog", c.MaxBacklog, "cap on catch-up time after a stall or pause (0 = unbounded)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell starts alive after a reseed")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.StringVar(&c.Edge, "edge", c.Edge, "edge policy: bounded or toroidal")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel per generation")
}

// Validate reports flag values the drivers or the engine cannot run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%d: %w", c.Scale, ErrInvalidScale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%d: %w", c.TPS, ErrInvalidTPS)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%d: %w", c.FPS, ErrInvalidFPS)
	}
	return c.LifeConfig().Validate()
}

// LifeConfig converts the flags into an engine configuration.
func (c *Config) LifeConfig() life.Config {
	lc := life.DefaultConfig()
	lc.Width = c.Width
	lc.Height = c.Height
	lc.Interval = core.IntervalForTPS(c.TPS)
	lc.MaxBacklog = c.MaxBacklog
	lc.Density = c.Density
	lc.Seed = c.Seed
	lc.Edge = life.Edge(c.Edge)
	if c.Workers > 0 {
		lc.Workers = c.Workers
	}
	return lc
}
