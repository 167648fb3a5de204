package flattorus

import (
	"fmt"
	"math"
)

// Cells of the unit square are addressed with linear quadtree keys:
// interleaved column-major coordinates in the high bits, subdivision
// level in the low nibble. Keys stay well formed up to level 13.

// dilate spreads the low 16 bits of x with a zero bit between each.
func dilate(x uint32) uint32 {
	x &= 0x0000FFFF
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	return (x | (x << 1)) & 0x55555555
}

// undilate inverts dilate using the shift-or algorithm.
func undilate(x uint32) uint32 {
	x = (x | (x >> 1)) & 0x33333333
	x = (x | (x >> 2)) & 0x0F0F0F0F
	x = (x | (x >> 4)) & 0x00FF00FF
	x = (x | (x >> 8)) & 0x0000FFFF
	return x
}

// encodeCell builds the key of cell column x, row y at the given level.
func encodeCell(x, y, level uint32) uint32 {
	return (dilate(x) << 4) | (dilate(y) << 5) | level
}

// decodeCell retrieves column, row and level from a key.
func decodeCell(key uint32) (x, y, level uint32) {
	x = undilate((key >> 4) & 0x05555555)
	y = undilate((key >> 5) & 0x55555555)
	level = key & 0xF
	return
}

// cellBounds returns the cell's lower-left corner and side length.
func cellBounds(key uint32) (nx, ny, size float64) {
	x, y, level := decodeCell(key)
	size = 1 / float64(uint32(1)<<level)
	nx = float64(x) * size
	ny = float64(y) * size
	return
}

// cellOf returns the key of the cell containing p at the given level.
// p must already be wrapped to [0, 1).
func cellOf(p Point, level uint32) uint32 {
	n := float64(uint32(1) << level)
	x := uint32(p.X * n)
	y := uint32(p.Y * n)
	// guard the p == 1-epsilon boundary after float rounding
	if x >= uint32(1)<<level {
		x = uint32(1)<<level - 1
	}
	if y >= uint32(1)<<level {
		y = uint32(1)<<level - 1
	}
	return encodeCell(x, y, level)
}

// Discrepancy measures how far the wrapped points of wl sit from the
// uniform distribution on the square: the largest deviation between a
// cell's share of the points and its area, over all quadtree cells up
// to maxLevel. Dense orbits drive it toward zero as the orbit grows;
// periodic orbits leave it pinned by the cells their track never
// visits.
func Discrepancy(wl Line, maxLevel int) (float64, error) {
	if maxLevel < 1 || maxLevel > 13 {
		return 0, fmt.Errorf("%w: maxLevel %d outside [1, 13]", ErrInvalidArgument, maxLevel)
	}
	pts := wl.Points()
	if len(pts) == 0 {
		return 0, fmt.Errorf("%w: empty line", ErrInvalidArgument)
	}

	n := float64(len(pts))
	var worst float64
	counts := make(map[uint32]int, len(pts))
	for lvl := uint32(1); lvl <= uint32(maxLevel); lvl++ {
		clear(counts)
		for _, p := range pts {
			counts[cellOf(p, lvl)]++
		}
		_, _, size := cellBounds(encodeCell(0, 0, lvl))
		area := size * size
		// cells with no points deviate by exactly their area
		ncells := int(uint32(1) << (2 * lvl))
		if len(counts) < ncells && area > worst {
			worst = area
		}
		for _, c := range counts {
			if d := math.Abs(float64(c)/n - area); d > worst {
				worst = d
			}
		}
	}
	return worst, nil
}
