package render

import (
	"image/color"

	"lifegrid/internal/core"
)

// CellSource is a read-only grid of binary cells.
type CellSource interface {
	Size() core.Size
	AppendCells(dst []uint8) []uint8
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Pixels renders src into buf as RGBA, reusing cells as scratch space. It
// returns the scratch slice so callers can keep it between frames.
func Pixels(buf []byte, cells []uint8, src CellSource, on, off color.Color) []uint8 {
	cells = src.AppendCells(cells[:0])
	if len(buf) < 4*len(cells) {
		return cells
	}
	fillBinaryRGBA(buf, cells, on, off)
	return cells
}
