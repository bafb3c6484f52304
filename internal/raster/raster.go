// Package raster draws straight pixel lines onto a binary grid. The
// linker decides which component pairs to join; this package makes those
// joins physical by turning on every cell along the connecting line.
package raster

import "table-tracer/pkg/grid"

// DrawLine rasterizes the line from one grid point to another using
// integer error accumulation (Bresenham), turning on every traversed
// cell. The two endpoints end up joined by an unbroken 8-connected chain
// of on pixels.
func DrawLine(g *grid.Grid, from, to grid.Point) {
	r1, c1 := from.R, from.C
	r2, c2 := to.R, to.C
	dr := r2 - r1
	dc := c2 - c1

	// When the column span dominates, transpose so the walk always
	// advances the dominant axis in unit steps. Writes un-transpose.
	steep := abs(dc) > abs(dr)
	if steep {
		r1, c1 = c1, r1
		r2, c2 = c2, r2
	}

	// Walk in increasing dominant coordinate; swap both endpoints
	// together so the minor axis keeps its pairing.
	if r1 > r2 {
		r1, r2 = r2, r1
		c1, c2 = c2, c1
	}

	dr = r2 - r1
	dc = c2 - c1

	errAcc := dr / 2
	step := -1
	if c1 < c2 {
		step = 1
	}

	c := c1
	for r := r1; r <= r2; r++ {
		if steep {
			g.Set(c, r)
		} else {
			g.Set(r, c)
		}
		errAcc -= abs(dc)
		if errAcc < 0 {
			c += step
			errAcc += dr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
