// Package label groups the on pixels of a binary grid into 8-connected
// components. A first row-major pass assigns provisional ids and records
// which ids turn out to touch; a second pass resolves every pixel to its
// canonical id and collects per-component coordinate lists.
package label

import (
	"sort"

	"table-tracer/pkg/grid"
)

// Component is one connected pixel region: its canonical id and the
// coordinates of its pixels in row-major order.
type Component struct {
	ID     int32
	Points []grid.Point
}

// Label assigns a provisional component id to every on pixel of g and
// records id equivalences discovered along the way. The outer pixel ring
// is assumed background and skipped.
//
// Each pixel inspects only the neighbors already scanned (NW, N, NE, W).
// No labeled neighbor starts a fresh id; one labeled neighbor is
// inherited; several distinct neighbors keep the first and record the
// rest as equivalent to it.
func Label(g *grid.Grid) ([][]int32, *Equivalences) {
	ids := make([][]int32, g.Rows)
	for r := range ids {
		ids[r] = make([]int32, g.Cols)
	}
	eq := NewEquivalences()

	for r := 1; r < g.Rows-1; r++ {
		for c := 1; c < g.Cols-1; c++ {
			if !g.IsOn(r, c) {
				continue
			}

			// Causal 4-neighborhood: NW, N, NE, W.
			neighbors := [4]int32{
				ids[r-1][c-1], ids[r-1][c], ids[r-1][c+1],
				ids[r][c-1],
			}

			for _, id := range neighbors {
				if id == 0 {
					continue
				}
				if ids[r][c] == 0 {
					ids[r][c] = id
				} else if id != ids[r][c] {
					eq.Union(ids[r][c], id)
				}
			}

			if ids[r][c] == 0 {
				ids[r][c] = eq.NewID()
			}
		}
	}

	return ids, eq
}

// Components resolves every labeled pixel to its canonical id and groups
// coordinates per component. eq must already be consolidated; a pixel
// whose id still resolves through more than one hop panics inside
// Resolve, since that indicates a labeling defect rather than bad input.
// Components are returned in ascending canonical id order, which keeps
// downstream linking deterministic.
func Components(ids [][]int32, eq *Equivalences) []Component {
	byID := make(map[int32]*Component)

	for r := range ids {
		for c, id := range ids[r] {
			if id == 0 {
				continue
			}
			root := eq.Resolve(id)
			comp, ok := byID[root]
			if !ok {
				comp = &Component{ID: root}
				byID[root] = comp
			}
			comp.Points = append(comp.Points, grid.Point{R: r, C: c})
		}
	}

	out := make([]Component, 0, len(byID))
	for _, comp := range byID {
		out = append(out, *comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
