//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a binary cell source.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	cells []uint8
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), cells: make([]uint8, 0, w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the current cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, src CellSource, on, off color.Color, scale int) {
	if s := src.Size(); s.W != gp.w || s.H != gp.h {
		return
	}
	gp.cells = Pixels(gp.buf, gp.cells, src, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
