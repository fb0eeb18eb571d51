//go:build ebiten

package app

import (
	"image/color"
	"log"

	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the Life engine to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *Clock

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided engine.
func New(sim *life.Life, scale int) *Game {
	size := sim.Size()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim),
		clock:    NewClock(nil),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

func readIntents() Intents {
	return Intents{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Step:        inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyN),
		Reseed:      inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Update polls input once per frame and drives the engine.
func (g *Game) Update() error {
	in := readIntents()
	if in.Quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if in.Reseed {
		log.Printf("reseeding board after %d generations", g.sim.Generation())
	}
	g.sim.Update(in.Input(g.clock.Elapsed()))
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
