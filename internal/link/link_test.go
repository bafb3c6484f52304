package link

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-tracer/internal/label"
	"table-tracer/pkg/grid"
)

func TestIndexNearestMatchesBruteForce(t *testing.T) {
	pts := []grid.Point{
		{R: 2, C: 3}, {R: 7, C: 1}, {R: 4, C: 9},
		{R: 0, C: 0}, {R: 5, C: 5}, {R: 9, C: 2},
	}
	ix := NewIndex(pts)

	queries := []grid.Point{
		{R: 0, C: 0}, {R: 3, C: 3}, {R: 8, C: 8}, {R: 6, C: 0}, {R: 10, C: 10},
	}
	for _, q := range queries {
		got, dist, err := ix.Nearest(q)
		require.NoError(t, err)

		wantDist := math.MaxFloat64
		for _, p := range pts {
			if d := q.Distance(p); d < wantDist {
				wantDist = d
			}
		}
		assert.InDelta(t, wantDist, dist, 1e-9, "query %v", q)
		assert.InDelta(t, wantDist, q.Distance(got), 1e-9, "query %v", q)
	}
}

func TestIndexSinglePoint(t *testing.T) {
	ix := NewIndex([]grid.Point{{R: 3, C: 4}})
	got, dist, err := ix.Nearest(grid.Point{R: 0, C: 0})
	require.NoError(t, err)
	assert.Equal(t, grid.Point{R: 3, C: 4}, got)
	assert.InDelta(t, 5.0, dist, 1e-12)
}

func TestIndexEmpty(t *testing.T) {
	ix := NewIndex(nil)
	_, _, err := ix.Nearest(grid.Point{R: 1, C: 1})
	require.ErrorIs(t, err, ErrEmptyIndex)
}

func comps(groups ...[]grid.Point) []label.Component {
	out := make([]label.Component, len(groups))
	for i, pts := range groups {
		out[i] = label.Component{ID: int32(i + 1), Points: pts}
	}
	return out
}

func TestBuildAdjacencyClosestPair(t *testing.T) {
	cs := comps(
		[]grid.Point{{R: 1, C: 1}, {R: 2, C: 1}, {R: 3, C: 2}},
		[]grid.Point{{R: 3, C: 6}, {R: 4, C: 5}, {R: 5, C: 5}},
	)
	adj, err := BuildAdjacency(cs, BuildIndexes(cs))
	require.NoError(t, err)

	// (3,2)-(4,5) at sqrt(10) beats every other cross pair.
	want := Link{From: grid.Point{R: 3, C: 2}, To: grid.Point{R: 4, C: 5}, Dist: math.Sqrt(10)}
	assert.Equal(t, want.From, adj[0][1].From)
	assert.Equal(t, want.To, adj[0][1].To)
	assert.InDelta(t, want.Dist, adj[0][1].Dist, 1e-9)

	// Stored symmetrically.
	assert.Equal(t, adj[0][1], adj[1][0])

	// Diagonal untouched.
	assert.Zero(t, adj[0][0])
	assert.Zero(t, adj[1][1])
}

func TestMinimumSpanningTreeThreeComponents(t *testing.T) {
	// Three clusters in a row; the middle one is closest to both ends,
	// so the MST should be end-middle, middle-end, never end-end.
	cs := comps(
		[]grid.Point{{R: 5, C: 1}},
		[]grid.Point{{R: 5, C: 10}},
		[]grid.Point{{R: 5, C: 5}},
	)
	adj, err := BuildAdjacency(cs, BuildIndexes(cs))
	require.NoError(t, err)

	mst := MinimumSpanningTree(adj)
	require.Len(t, mst, len(cs)-1)

	var total float64
	for _, ln := range mst {
		total += ln.Dist
	}
	// 1->5 is 4, 5->10 is 5; the direct 1->10 edge (9) must not appear.
	assert.InDelta(t, 9.0, total, 1e-9)
	for _, ln := range mst {
		assert.Less(t, ln.Dist, 9.0)
	}
}

// With equal weights everywhere, the ascending visited-outer /
// unvisited-inner scan picks the first-encountered pair each round.
func TestMinimumSpanningTreeTieBreak(t *testing.T) {
	mk := func(d float64) Link { return Link{Dist: d} }
	adj := Adjacency{
		{mk(0), mk(1), mk(1), mk(1)},
		{mk(1), mk(0), mk(1), mk(1)},
		{mk(1), mk(1), mk(0), mk(1)},
		{mk(1), mk(1), mk(1), mk(0)},
	}
	// Tag links so selections are distinguishable.
	for i := range adj {
		for j := range adj[i] {
			adj[i][j].From = grid.Point{R: i, C: j}
		}
	}

	mst := MinimumSpanningTree(adj)
	require.Len(t, mst, 3)
	// Round 1: i=0 scans j=1 first. Rounds 2 and 3 keep i=0 as the
	// first visited row, so 0-2 then 0-3 win.
	assert.Equal(t, grid.Point{R: 0, C: 1}, mst[0].From)
	assert.Equal(t, grid.Point{R: 0, C: 2}, mst[1].From)
	assert.Equal(t, grid.Point{R: 0, C: 3}, mst[2].From)
}

func TestMinimumSpanningTreeSingleComponent(t *testing.T) {
	assert.Nil(t, MinimumSpanningTree(Adjacency{{Link{}}}))
	assert.Nil(t, MinimumSpanningTree(nil))
}

// Every component must end up connected to component 0 through MST
// edges, with exactly n-1 edges (tree: connected and acyclic).
func TestMinimumSpanningTreeSpansAllComponents(t *testing.T) {
	cs := comps(
		[]grid.Point{{R: 1, C: 1}},
		[]grid.Point{{R: 1, C: 8}},
		[]grid.Point{{R: 8, C: 1}},
		[]grid.Point{{R: 8, C: 8}},
		[]grid.Point{{R: 4, C: 4}},
	)
	adj, err := BuildAdjacency(cs, BuildIndexes(cs))
	require.NoError(t, err)

	mst := MinimumSpanningTree(adj)
	require.Len(t, mst, 4)

	// Union the endpoints; all five representative points must end up
	// in one group.
	find := func(parent map[grid.Point]grid.Point, p grid.Point) grid.Point {
		for parent[p] != p {
			p = parent[p]
		}
		return p
	}
	parent := make(map[grid.Point]grid.Point)
	for _, c := range cs {
		parent[c.Points[0]] = c.Points[0]
	}
	for _, ln := range mst {
		a, b := find(parent, ln.From), find(parent, ln.To)
		require.NotEqual(t, a, b, "MST edge closes a cycle")
		parent[b] = a
	}
	root := find(parent, cs[0].Points[0])
	for _, c := range cs {
		assert.Equal(t, root, find(parent, c.Points[0]))
	}
}
