package track

import (
	"sort"

	"table-tracer/pkg/grid"
)

// Neighbor offsets for the 8-connected neighborhood.
var (
	rowDelta = [8]int{-1, -1, -1, 0, 0, 1, 1, 1}
	colDelta = [8]int{-1, 0, 1, -1, 1, -1, 0, 1}
)

// FindStart locates the pixel where the track should begin: the on pixel
// closest to the image border. It scans clockwise in an inward spiral
// starting one ring inside the border (the border itself is guaranteed
// background) and returns the first on pixel, or false when the grid
// holds none.
func FindStart(g *grid.Grid) (grid.Point, bool) {
	top, left := 1, 1
	bottom, right := g.Rows-1, g.Cols-1

	for top < bottom && left < right {
		for c := left; c < right; c++ {
			if g.IsOn(top, c) {
				return grid.Point{R: top, C: c}, true
			}
		}
		top++

		for r := top; r < bottom; r++ {
			if g.IsOn(r, right-1) {
				return grid.Point{R: r, C: right - 1}, true
			}
		}
		right--

		if top < bottom {
			for c := right - 1; c >= left; c-- {
				if g.IsOn(bottom-1, c) {
					return grid.Point{R: bottom - 1, C: c}, true
				}
			}
			bottom--
		}

		if left < right {
			for r := bottom - 1; r >= top; r-- {
				if g.IsOn(r, left) {
					return grid.Point{R: r, C: left}, true
				}
			}
			left++
		}
	}

	return grid.Point{}, false
}

// node is one pixel in the spanning tree. Nodes live in the tree's arena
// and refer to each other by index, so the tree has no ownership cycles.
type node struct {
	pt           grid.Point
	parent       int32
	children     []int32
	depth        int32
	farthestLeaf int32
}

// Tree is a rooted spanning tree over the on pixels reachable from the
// BFS start, stored as an arena of indexed nodes. Node 0 is the root.
type Tree struct {
	nodes   []node
	visited int
}

// Visited returns the number of pixels the BFS reached. Comparing it to
// the grid's total on count detects a grid that is still not one
// connected region.
func (t *Tree) Visited() int {
	return t.visited
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// BuildTree runs a breadth-first traversal over the 8-connected on
// pixels from start and records it as a spanning tree: each discovered
// pixel's parent is its discoverer. Returns the tree and the maximum
// depth reached.
//
// Breadth-first matters here. It makes geometrically adjacent pixels
// siblings instead of deep cousins, which keeps the final track from
// running to the end of a line and retracing for pixels it passed.
func BuildTree(g *grid.Grid, start grid.Point) (*Tree, int) {
	seen := make([]bool, g.Rows*g.Cols)
	seen[start.R*g.Cols+start.C] = true

	t := &Tree{nodes: []node{{pt: start, parent: -1}}}
	queue := []int32{0}
	maxDepth := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for d := 0; d < 8; d++ {
			r := t.nodes[cur].pt.R + rowDelta[d]
			c := t.nodes[cur].pt.C + colDelta[d]
			if !g.InBounds(r, c) || !g.IsOn(r, c) || seen[r*g.Cols+c] {
				continue
			}
			seen[r*g.Cols+c] = true

			child := int32(len(t.nodes))
			depth := t.nodes[cur].depth + 1
			t.nodes = append(t.nodes, node{
				pt:     grid.Point{R: r, C: c},
				parent: cur,
				depth:  depth,
			})
			t.nodes[cur].children = append(t.nodes[cur].children, child)
			queue = append(queue, child)

			if int(depth) > maxDepth {
				maxDepth = int(depth)
			}
		}
	}

	t.visited = len(t.nodes)
	return t, maxDepth
}

// SortByFarthestLeaf computes each node's farthest-leaf distance (0 for
// leaves, 1 + max over children otherwise) and reorders every node's
// children ascending by it, shortest subtree first. Linearize depends on
// that order: walking short branches first means the deepest branch is
// entered only after its siblings are already on the track.
//
// Children always carry larger arena indexes than their parent (BFS
// construction order), so a single reverse sweep visits children before
// parents without any recursion.
func (t *Tree) SortByFarthestLeaf() {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		n.farthestLeaf = 0
		for _, c := range n.children {
			if d := t.nodes[c].farthestLeaf + 1; d > n.farthestLeaf {
				n.farthestLeaf = d
			}
		}
		children := n.children
		sort.SliceStable(children, func(a, b int) bool {
			return t.nodes[children[a]].farthestLeaf < t.nodes[children[b]].farthestLeaf
		})
	}
}

// frame is one stack entry during linearization: a node and a cursor
// over its (sorted) children.
type frame struct {
	idx  int32
	next int
}

// Linearize flattens the sorted tree into the final ordered track with
// an explicit-stack depth-first walk. Children are consumed shortest
// subtree first, so the longest child of every branch is the last one
// descended into. Each node is emitted exactly once, when it is first
// reached; returning through a branch point to take its next child does
// not re-emit it.
//
// The walk stops early once it finishes a branch that reached the
// maximum tree depth and no sibling branch higher in the stack is still
// waiting (tracked with a single pending-sibling marker). Because
// children are sorted shortest first, every shallower sibling has been
// fully emitted by then.
func (t *Tree) Linearize(maxDepth int) []grid.Point {
	if len(t.nodes) == 0 {
		return nil
	}

	out := make([]grid.Point, 0, len(t.nodes))
	stack := []frame{{idx: 0}}
	out = append(out, t.nodes[0].pt)

	// Arena index of the not-yet-entered last child of the topmost
	// branch point, or -1 when no branch is pending.
	pending := int32(-1)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		n := &t.nodes[f.idx]

		if f.idx == pending {
			pending = -1
		}
		if remaining := n.children[f.next:]; len(remaining) > 1 && pending == -1 {
			pending = remaining[len(remaining)-1]
		}

		if f.next < len(n.children) {
			child := n.children[f.next]
			f.next++
			stack = append(stack, frame{idx: child})
			out = append(out, t.nodes[child].pt)
			continue
		}

		stack = stack[:len(stack)-1]
		if int(n.depth) == maxDepth-1 && pending == -1 {
			break
		}
	}

	return out
}
