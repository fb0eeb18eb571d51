//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 4
	hudLineH   = 14
	hudQuit    = "q quit"
)

// HUD renders a translucent status strip over the top of the simulation view.
type HUD struct {
	sim      core.Sim
	params   parameterProvider
	visible  bool
	pixel    *ebiten.Image
	paramKey []string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true, paramKey: []string{"edge", "interval", "seed", "density"}}
	if provider, ok := sim.(parameterProvider); ok {
		h.params = provider
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the status, help and parameter lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	lines := []string{StatusLine(h.sim, ebiten.ActualTPS()), HelpLine(h.sim, hudQuit)}
	if h.params != nil {
		lines = append(lines, ParameterLine(h.params.Parameters(), h.paramKey...))
	}

	width := screen.Bounds().Dx()
	height := len(lines)*hudLineH + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range lines {
		col := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if i == 0 {
			col = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		text.Draw(screen, line, face, hudPadding, hudPadding+(i+1)*hudLineH-3, col)
	}
}
