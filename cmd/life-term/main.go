package main

import (
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/term"

	tl "github.com/JoelOtter/termloop"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 80
	cfg.Height = 46
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := life.New(cfg.LifeConfig(), nil)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := tl.NewGame()
	game.Screen().SetFps(float64(cfg.FPS))
	game.Screen().AddEntity(term.NewBoard(sim))
	game.Start()
}
