package link

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"table-tracer/pkg/grid"
)

// ErrEmptyIndex indicates a nearest-neighbor query against an index that
// holds no points. The linker treats this as fatal: indexes are built from
// non-empty components, so an empty result means the index is broken.
var ErrEmptyIndex = errors.New("link: nearest-neighbor index holds no points")

// Index answers "closest point in this component to a query point" for a
// single component. It wraps a 2-d tree over the component's pixels.
type Index struct {
	tree *kdtree.Tree
}

// NewIndex builds an index over the given points.
func NewIndex(pts []grid.Point) *Index {
	if len(pts) == 0 {
		return &Index{}
	}
	data := make(treePoints, len(pts))
	for i, p := range pts {
		data[i] = treePoint(p)
	}
	return &Index{tree: kdtree.New(data, false)}
}

// Nearest returns the indexed point closest to q and the Euclidean
// distance between them.
func (ix *Index) Nearest(q grid.Point) (grid.Point, float64, error) {
	if ix.tree == nil {
		return grid.Point{}, 0, ErrEmptyIndex
	}
	got, d := ix.tree.Nearest(treePoint(q))
	if got == nil {
		return grid.Point{}, 0, ErrEmptyIndex
	}
	// The tree works in squared distances to avoid the sqrt in its
	// pruning comparisons.
	return grid.Point(got.(treePoint)), math.Sqrt(d), nil
}

// treePoint adapts a grid coordinate to the kd-tree comparable contract.
// Distances are squared Euclidean, which is what the tree's plane-pruning
// comparison expects.
type treePoint grid.Point

func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(treePoint)
	switch d {
	case 0:
		return float64(p.R - q.R)
	default:
		return float64(p.C - q.C)
	}
}

func (p treePoint) Dims() int { return 2 }

func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	dr := float64(p.R - q.R)
	dc := float64(p.C - q.C)
	return dr*dr + dc*dc
}

// treePoints implements kdtree.Interface for a slice of treePoint.
type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable { return p[i] }
func (p treePoints) Len() int                      { return len(p) }
func (p treePoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p treePoints) Pivot(d kdtree.Dim) int {
	return plane{points: p, dim: d}.pivot()
}

// plane sorts treePoints along a single dimension for pivot selection.
type plane struct {
	points treePoints
	dim    kdtree.Dim
}

func (p plane) pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p plane) Less(i, j int) bool {
	a, b := p.points[i], p.points[j]
	if p.dim == 0 {
		return a.R < b.R
	}
	return a.C < b.C
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p plane) Len() int { return len(p.points) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
