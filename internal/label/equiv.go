package label

import "fmt"

// Equivalences tracks which component ids refer to the same connected
// component. It is a union-find forest over an id arena; the smallest id
// in a merged group always wins as the root, so canonical ids are stable
// regardless of the order merges are discovered in.
type Equivalences struct {
	parent []int32 // parent[id] == id for roots; index 0 unused
}

// NewEquivalences returns an empty equivalence forest.
func NewEquivalences() *Equivalences {
	return &Equivalences{parent: make([]int32, 1)}
}

// NewID allocates the next component id and returns it.
func (e *Equivalences) NewID() int32 {
	id := int32(len(e.parent))
	e.parent = append(e.parent, id)
	return id
}

// Len returns the number of allocated ids.
func (e *Equivalences) Len() int {
	return len(e.parent) - 1
}

// Root returns the canonical id for id, compressing the path as it goes.
func (e *Equivalences) Root(id int32) int32 {
	root := id
	for e.parent[root] != root {
		root = e.parent[root]
	}
	for e.parent[id] != root {
		e.parent[id], id = root, e.parent[id]
	}
	return root
}

// Union merges the groups containing a and b. The smaller root becomes
// the root of the merged group.
func (e *Equivalences) Union(a, b int32) {
	ra, rb := e.Root(a), e.Root(b)
	if ra == rb {
		return
	}
	if ra > rb {
		ra, rb = rb, ra
	}
	e.parent[rb] = ra
}

// Consolidate re-points every id directly at its root, so that any later
// resolution is at most one hop. Idempotent.
func (e *Equivalences) Consolidate() {
	for id := int32(1); id < int32(len(e.parent)); id++ {
		e.parent[id] = e.Root(id)
	}
}

// Resolve returns the canonical id for id without modifying the forest.
// It must be called after Consolidate; a resolution needing more than one
// hop means the labeler failed to consolidate and is a programming error.
func (e *Equivalences) Resolve(id int32) int32 {
	p := e.parent[id]
	if e.parent[p] != p {
		panic(fmt.Sprintf("label: id %d resolves through more than one hop after consolidation", id))
	}
	return p
}

// IsRoot reports whether id is the canonical id of its group.
func (e *Equivalences) IsRoot(id int32) bool {
	return e.parent[id] == id
}

// Parent returns the stored parent of id (itself for roots). Exposed for
// verifying the post-consolidation shape.
func (e *Equivalences) Parent(id int32) int32 {
	return e.parent[id]
}
