// Package track plans a single continuous drawing path over a binary
// edge grid. It labels the grid's connected components, joins disjoint
// components along minimum spanning tree links, and linearizes the
// resulting single region into an ordered coordinate track for a device
// that draws without lifting its implement.
package track

import (
	"errors"
	"fmt"

	"table-tracer/internal/label"
	"table-tracer/internal/link"
	"table-tracer/internal/raster"
	"table-tracer/pkg/grid"
)

// ErrNoEdgePixels indicates the input grid holds no edge pixels, so
// there is nothing to trace.
var ErrNoEdgePixels = errors.New("track: grid has no edge pixels")

// ErrDisconnected indicates the grid is still not one connected region
// after linking, so a single-stroke track cannot cover it. Surfaced as
// an error rather than silently emitting a truncated track.
var ErrDisconnected = errors.New("track: grid is not a single connected region")

// Generate converts a binary edge grid into one ordered coordinate
// track. The grid's outer pixel ring must be background (the edge
// detector guarantees this). The grid is mutated in place once, when
// spanning tree links are drawn onto it; it is only read afterwards.
//
// A grid that already forms a single component skips the linking and
// drawing steps entirely.
func Generate(g *grid.Grid) ([]grid.Point, error) {
	if g.CountOn() == 0 {
		return nil, ErrNoEdgePixels
	}

	ids, eq := label.Label(g)
	eq.Consolidate()
	comps := label.Components(ids, eq)

	if len(comps) > 1 {
		indexes := link.BuildIndexes(comps)
		adj, err := link.BuildAdjacency(comps, indexes)
		if err != nil {
			return nil, err
		}
		for _, ln := range link.MinimumSpanningTree(adj) {
			raster.DrawLine(g, ln.From, ln.To)
		}
	}

	start, ok := FindStart(g)
	if !ok {
		// On pixels exist but none inside the scannable interior.
		return nil, ErrNoEdgePixels
	}

	tree, maxDepth := BuildTree(g, start)
	if total := g.CountOn(); tree.Visited() != total {
		return nil, fmt.Errorf("%w: reached %d of %d pixels", ErrDisconnected, tree.Visited(), total)
	}

	tree.SortByFarthestLeaf()
	return tree.Linearize(maxDepth), nil
}
