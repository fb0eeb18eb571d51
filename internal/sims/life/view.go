package life

import "lifegrid/internal/core"

// View is a read-only window onto the engine's current generation. It tracks
// buffer swaps, so a View obtained once keeps showing the latest generation.
type View struct {
	l *Life
}

// Size returns the grid dimensions.
func (v View) Size() core.Size { return v.l.cur.Size() }

// Alive reports whether the cell at (x, y) is alive; out of bounds is dead.
func (v View) Alive(x, y int) bool { return v.l.cur.Alive(x, y) }

// Population counts live cells.
func (v View) Population() int { return v.l.cur.Population() }

// AppendRow appends row y as 0/1 values to dst.
func (v View) AppendRow(dst []uint8, y int) []uint8 {
	g := v.l.cur
	if y < 0 || y >= g.H {
		return dst
	}
	return append(dst, g.Row(y)...)
}

// AppendCells appends the whole generation in row-major order to dst.
func (v View) AppendCells(dst []uint8) []uint8 {
	return append(dst, v.l.cur.Cells()...)
}
