package life

import "golang.org/x/sync/errgroup"

// nextState applies B3/S23 to a cell given its live neighbor count.
func nextState(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return 1
	}
	return 0
}

// neighbors counts live cells in the Moore neighborhood of (x, y).
func (l *Life) neighbors(x, y int) int {
	cur := l.cur
	w, h := cur.W, cur.H
	cells := cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if l.cfg.Edge == EdgeToroidal {
				nx, ny = cur.Wrap(nx, ny)
			} else if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			n += int(cells[ny*w+nx])
		}
	}
	return n
}

// stepRows writes generation N+1 for rows [y0, y1) into nxt.
func (l *Life) stepRows(y0, y1 int) {
	w := l.cur.W
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx] == 1, l.neighbors(x, y))
		}
	}
}

// step computes the full next buffer. With several workers the rows are split
// into bands; all bands finish before step returns.
func (l *Life) step() {
	h := l.cur.H
	workers := l.cfg.Workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		l.stepRows(0, h)
		return
	}

	var g errgroup.Group
	band := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			l.stepRows(y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}
