package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-tracer/pkg/grid"
)

func onPoints(g *grid.Grid) []grid.Point {
	var pts []grid.Point
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.IsOn(r, c) {
				pts = append(pts, grid.Point{R: r, C: c})
			}
		}
	}
	return pts
}

func TestDrawLineVertical(t *testing.T) {
	g := grid.New(8, 8)
	DrawLine(g, grid.Point{R: 0, C: 0}, grid.Point{R: 5, C: 0})

	assert.Equal(t, []grid.Point{
		{R: 0, C: 0}, {R: 1, C: 0}, {R: 2, C: 0},
		{R: 3, C: 0}, {R: 4, C: 0}, {R: 5, C: 0},
	}, onPoints(g))
}

func TestDrawLineHorizontalReversed(t *testing.T) {
	g := grid.New(8, 8)
	DrawLine(g, grid.Point{R: 2, C: 6}, grid.Point{R: 2, C: 1})

	assert.Equal(t, []grid.Point{
		{R: 2, C: 1}, {R: 2, C: 2}, {R: 2, C: 3},
		{R: 2, C: 4}, {R: 2, C: 5}, {R: 2, C: 6},
	}, onPoints(g))
}

func TestDrawLineDiagonal(t *testing.T) {
	g := grid.New(8, 8)
	DrawLine(g, grid.Point{R: 0, C: 0}, grid.Point{R: 3, C: 3})

	pts := onPoints(g)
	require.Len(t, pts, 4)

	// A perfect diagonal is a monotone staircase with no gaps: each
	// step advances both row and column by one.
	for i := 1; i < len(pts); i++ {
		assert.Equal(t, pts[i-1].R+1, pts[i].R)
		assert.Equal(t, pts[i-1].C+1, pts[i].C)
	}
	assert.Equal(t, grid.Point{R: 0, C: 0}, pts[0])
	assert.Equal(t, grid.Point{R: 3, C: 3}, pts[3])
}

// Whatever the slope or direction, the drawn line must join its
// endpoints through an unbroken 8-connected chain.
func TestDrawLineConnectsEndpoints(t *testing.T) {
	cases := []struct {
		from, to grid.Point
	}{
		{grid.Point{R: 1, C: 1}, grid.Point{R: 10, C: 4}},
		{grid.Point{R: 10, C: 4}, grid.Point{R: 1, C: 1}},
		{grid.Point{R: 3, C: 12}, grid.Point{R: 9, C: 2}},
		{grid.Point{R: 7, C: 7}, grid.Point{R: 7, C: 7}},
		{grid.Point{R: 0, C: 13}, grid.Point{R: 13, C: 0}},
		{grid.Point{R: 2, C: 3}, grid.Point{R: 12, C: 11}},
	}

	for _, tc := range cases {
		g := grid.New(14, 14)
		DrawLine(g, tc.from, tc.to)

		require.True(t, g.IsOn(tc.from.R, tc.from.C), "%v -> %v", tc.from, tc.to)
		require.True(t, g.IsOn(tc.to.R, tc.to.C), "%v -> %v", tc.from, tc.to)
		assert.Equal(t, g.CountOn(), floodCount(g, tc.from),
			"%v -> %v leaves a gap", tc.from, tc.to)
	}
}

// floodCount returns the number of on pixels 8-connected to start.
func floodCount(g *grid.Grid, start grid.Point) int {
	seen := map[grid.Point]bool{start: true}
	queue := []grid.Point{start}
	count := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		count++
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := grid.Point{R: p.R + dr, C: p.C + dc}
				if (dr == 0 && dc == 0) || seen[n] || !g.InBounds(n.R, n.C) || !g.IsOn(n.R, n.C) {
					continue
				}
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return count
}
