// Package link selects the shortest set of connections that joins every
// disjoint pixel component into one region. For each pair of components
// it finds the closest pair of points with a per-component 2-d tree, then
// reduces the resulting complete distance graph to a minimum spanning
// tree with Prim's algorithm.
package link

import (
	"fmt"
	"math"

	"table-tracer/internal/label"
	"table-tracer/pkg/grid"
)

// Link is the closest point pair between two components and the Euclidean
// distance between those points.
type Link struct {
	From grid.Point
	To   grid.Point
	Dist float64
}

// Adjacency is a symmetric matrix of closest-pair links between every
// unordered component pair, indexed by component position in the ordered
// component list. Diagonal entries are zero.
type Adjacency [][]Link

// BuildIndexes builds one nearest-neighbor index per component, in the
// same order as the component list.
func BuildIndexes(comps []label.Component) []*Index {
	indexes := make([]*Index, len(comps))
	for i, comp := range comps {
		indexes[i] = NewIndex(comp.Points)
	}
	return indexes
}

// BuildAdjacency computes the closest point pair for every unordered
// component pair. Component i's points are queried against component j's
// index (j > i); the first minimum encountered wins, so the result is
// deterministic for a fixed component order.
func BuildAdjacency(comps []label.Component, indexes []*Index) (Adjacency, error) {
	n := len(comps)
	adj := make(Adjacency, n)
	for i := range adj {
		adj[i] = make([]Link, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			best := Link{Dist: math.MaxFloat64}
			for _, p := range comps[i].Points {
				q, d, err := indexes[j].Nearest(p)
				if err != nil {
					return nil, fmt.Errorf("link: components %d and %d: %w", i, j, err)
				}
				if d < best.Dist {
					best = Link{From: p, To: q, Dist: d}
				}
			}
			adj[i][j] = best
			adj[j][i] = best
		}
	}

	return adj, nil
}

// MinimumSpanningTree reduces the adjacency matrix to the
// numComponents-1 links of minimum total distance using Prim's
// algorithm, growing from component 0.
//
// Candidate edges are scanned with the visited index ascending on the
// outside and the unvisited index ascending on the inside; the strict
// comparison means the first-encountered minimum wins. That tie-break is
// load-bearing: it keeps the output reproducible when several pairs are
// equally close.
func MinimumSpanningTree(adj Adjacency) []Link {
	n := len(adj)
	if n <= 1 {
		return nil
	}

	visited := make([]bool, n)
	visited[0] = true
	mst := make([]Link, 0, n-1)

	for len(mst) < n-1 {
		best := math.MaxFloat64
		bi, bj := 0, 0
		for i := 0; i < n; i++ {
			if !visited[i] {
				continue
			}
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				if adj[i][j].Dist < best {
					best = adj[i][j].Dist
					bi, bj = i, j
				}
			}
		}
		mst = append(mst, adj[bi][bj])
		visited[bj] = true
	}

	return mst
}
