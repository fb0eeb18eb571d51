// Package term drives the Life engine from a terminal using termloop.
package term

import (
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/ui"

	tl "github.com/JoelOtter/termloop"
)

// termloop ends the game on Ctrl+C; no other key quits.
const quitHelp = "ctrl+c quit"

// Board is a termloop entity that feeds key presses to the engine and draws
// two grid rows per terminal row using half-block glyphs.
type Board struct {
	sim     *life.Life
	pending app.Intents

	top, bottom []uint8
	glyphs      []rune

	fg, bg tl.Attr
}

// NewBoard wraps sim for display on a termloop screen.
func NewBoard(sim *life.Life) *Board {
	return &Board{sim: sim, fg: tl.ColorWhite, bg: tl.ColorBlack}
}

// IntentsForKey maps a terminal key event to driver intents.
func IntentsForKey(ev tl.Event) app.Intents {
	var in app.Intents
	if ev.Type != tl.EventKey {
		return in
	}
	if ev.Key == tl.KeySpace {
		in.TogglePause = true
		return in
	}
	switch ev.Ch {
	case ' ':
		in.TogglePause = true
	case 's', 'S', 'n', 'N':
		in.Step = true
	case 'r', 'R':
		in.Reseed = true
	}
	return in
}

// Tick collects key presses until the next frame is drawn.
func (b *Board) Tick(ev tl.Event) {
	in := IntentsForKey(ev)
	b.pending.TogglePause = b.pending.TogglePause != in.TogglePause
	b.pending.Step = b.pending.Step || in.Step
	b.pending.Reseed = b.pending.Reseed || in.Reseed
}

// Draw advances the engine by one frame and paints the current generation.
func (b *Board) Draw(s *tl.Screen) {
	elapsed := time.Duration(s.TimeDelta() * float64(time.Second))
	b.sim.Update(b.pending.Input(elapsed))
	b.pending = app.Intents{}

	sw, sh := s.Size()
	view := b.sim.Grid()
	size := view.Size()
	rows := sh - 1
	for ty := 0; ty < rows && 2*ty < size.H; ty++ {
		b.top = view.AppendRow(b.top[:0], 2*ty)
		b.bottom = view.AppendRow(b.bottom[:0], 2*ty+1)
		b.glyphs = GlyphRow(b.glyphs[:0], b.top, b.bottom)
		for x, ch := range b.glyphs {
			if x >= sw {
				break
			}
			s.RenderCell(x, ty, &tl.Cell{Fg: b.fg, Bg: b.bg, Ch: ch})
		}
	}

	status := ui.StatusLine(b.sim, 0) + "  |  " + ui.HelpLine(b.sim, quitHelp)
	for i, ch := range []rune(status) {
		if i >= sw {
			break
		}
		s.RenderCell(i, sh-1, &tl.Cell{Fg: tl.ColorYellow, Bg: b.bg, Ch: ch})
	}
}

// Glyph packs two vertically adjacent cells into one terminal rune.
func Glyph(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

// GlyphRow appends one glyph per column of top. A short or empty bottom row
// reads as dead cells.
func GlyphRow(dst []rune, top, bottom []uint8) []rune {
	for x, c := range top {
		below := x < len(bottom) && bottom[x] != 0
		dst = append(dst, Glyph(c != 0, below))
	}
	return dst
}
