package orient

import (
	"github.com/flatmedian/flatmedian/mesh"
)

// walker encapsulates mutable BFS state for Orient: a queue, a visited set,
// and a single-pass loop, specialized to triangle-adjacency orientation
// propagation.
type walker struct {
	m       *mesh.Mesh
	adj     [][]int // edge index -> incident triangle indices
	visited []bool
	queue   []int
}

// Orient rewrites m's triangle and edge tuples in place so the complex is
// consistently oriented: for every interior edge shared by two triangles,
// the two induced orientations disagree.
//
// Seeds the BFS from triangle 0 with its canonical (ascending) vertex
// order, flipped once if that tuple's signed area against the reference
// axis is negative, then propagates breadth-first over the face-adjacency
// graph,
// flipping a neighbor's tuple whenever it would otherwise induce the same
// direction on the shared edge as its already-settled neighbor. Returns
// ErrNotOrientable if an already-visited triangle would need a second,
// contradictory flip, or ErrDisconnected if the BFS cannot reach every
// triangle.
func Orient(m *mesh.Mesh) error {
	n := len(m.Triangles)
	if n == 0 {
		return ErrEmptyMesh
	}

	w := &walker{
		m:       m,
		adj:     m.EdgeAdjacency(),
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
	}

	m.Triangles[0] = canonicalParity(m.Triangles[0])
	if sa, err := m.TriangleSignedArea(0); err == nil && sa < 0 {
		m.Triangles[0] = m.Triangles[0].SwapLastTwo()
	}
	w.enqueue(0)

	if err := w.loop(); err != nil {
		return err
	}
	for _, v := range w.visited {
		if !v {
			return ErrDisconnected
		}
	}

	w.fixupEdges()

	return nil
}

func (w *walker) enqueue(ti int) {
	w.visited[ti] = true
	w.queue = append(w.queue, ti)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		ti := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visitNeighbors(ti); err != nil {
			return err
		}
	}

	return nil
}

// visitNeighbors computes ti's induced edge orientations under its current
// (settled) tuple and, for each neighbor sharing one of those edges, flips
// the neighbor when it disagrees with the boundary sign convention.
func (w *walker) visitNeighbors(ti int) error {
	t := w.m.Triangles[ti]
	k1, k2, k3, err := w.m.EdgesOf(t)
	if err != nil {
		return err
	}

	for _, ek := range [3]int{k1, k2, k3} {
		inducedByT := mesh.InducedOrientation(w.m.Edges[ek], t)
		for _, tj := range w.adj[ek] {
			if tj == ti {
				continue
			}
			if err := w.reconcile(ek, tj, inducedByT); err != nil {
				return err
			}
		}
	}

	return nil
}

// reconcile compares the orientation triangle tj would induce on edge ek
// against inducedByT; if they match, tj's orientation disagrees with the
// convention and must be flipped.
func (w *walker) reconcile(ek, tj int, inducedByT mesh.Edge) error {
	u := w.m.Triangles[tj]
	inducedByU := mesh.InducedOrientation(w.m.Edges[ek], u)

	if inducedByU == inducedByT {
		if w.visited[tj] {
			return ErrNotOrientable
		}
		w.m.Triangles[tj] = u.SwapLastTwo()
	}
	if !w.visited[tj] {
		w.enqueue(tj)
	}

	return nil
}

// fixupEdges traverses every triangle in order and overwrites each of its
// edges not yet assigned with the orientation induced by that triangle.
func (w *walker) fixupEdges() {
	assigned := make([]bool, len(w.m.Edges))
	for _, t := range w.m.Triangles {
		k1, k2, k3, _ := w.m.EdgesOf(t) // invariant-guaranteed to succeed post-BFS
		for _, ek := range [3]int{k1, k2, k3} {
			if assigned[ek] {
				continue
			}
			w.m.Edges[ek] = mesh.InducedOrientation(w.m.Edges[ek], t)
			assigned[ek] = true
		}
	}
}

// canonicalParity returns t's vertex indices in ascending order: t itself, a
// cyclic rotation of it, or a swap of two of its entries (which reverses its
// orientation). This canonical-sorted representative seeds a deterministic
// global parity choice.
func canonicalParity(t mesh.Triangle) mesh.Triangle {
	a, b, c := t.A, t.B, t.C
	switch {
	case a < b && b < c:
		return t
	case a < c && c < b:
		return mesh.Triangle{A: a, B: c, C: b}
	case b < a && a < c:
		return mesh.Triangle{A: b, B: a, C: c}
	case b < c && c < a:
		return mesh.Triangle{A: b, B: c, C: a}
	case c < a && a < b:
		return mesh.Triangle{A: c, B: a, C: b}
	default: // c < b && b < a
		return mesh.Triangle{A: c, B: b, C: a}
	}
}
