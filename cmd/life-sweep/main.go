package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"lifegrid/internal/sims/life"
)

type seedResult struct {
	seed      int64
	initial   int
	final     int
	peak      int
	settledAt int
}

func main() {
	seeds := flag.Int("seeds", 64, "number of seeds to simulate")
	first := flag.Int64("first-seed", 1, "first seed of the sweep")
	steps := flag.Int("steps", 500, "generations to simulate per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 128, "grid width in cells")
	height := flag.Int("h", 128, "grid height in cells")
	density := flag.Float64("density", 0.5, "initial live cell probability")
	flag.Parse()

	base := life.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Density = *density
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	fmt.Printf("Sweeping %d seeds (%d workers, %d generations, %dx%d)\n", *seeds, *workers, *steps, base.Width, base.Height)

	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSeed(base, seed, *steps)
				if err != nil {
					log.Printf("seed %d: %v", seed, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []seedResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].final > all[j].final })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 surviving populations (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d initial=%d final=%d peak=%d settled=%s\n",
			i+1, res.seed, res.initial, res.final, res.peak, settled(res))
	}

	total := 0
	for _, res := range all {
		total += res.final
	}
	if len(all) > 0 {
		fmt.Printf("\nMean final population: %.1f over %d seeds\n", float64(total)/float64(len(all)), len(all))
	}
}

// runSeed simulates one board and records when it settles into a still life
// or period-2 oscillation.
func runSeed(base life.Config, seed int64, steps int) (seedResult, error) {
	cfg := base
	cfg.Seed = seed
	sim, err := life.New(cfg, nil)
	if err != nil {
		return seedResult{}, err
	}
	sim.TogglePause()

	res := seedResult{seed: seed, initial: sim.Population(), settledAt: -1}
	res.peak = res.initial
	prev := sim.Grid().AppendCells(nil)
	var older, scratch []uint8
	for i := 0; i < steps; i++ {
		sim.RequestStep()
		scratch = sim.Grid().AppendCells(scratch[:0])
		if pop := sim.Population(); pop > res.peak {
			res.peak = pop
		}
		if slices.Equal(prev, scratch) || (older != nil && slices.Equal(older, scratch)) {
			res.settledAt = i + 1
			break
		}
		older, prev, scratch = prev, scratch, older
	}
	res.final = sim.Population()
	return res, nil
}

func settled(res seedResult) string {
	if res.settledAt < 0 {
		return "no"
	}
	return fmt.Sprintf("gen %d", res.settledAt)
}
