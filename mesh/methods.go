package mesh

import "fmt"

// NewMesh builds a Mesh from a vertex list and a triangle list, deduplicating
// the undirected edges each triangle contributes. Each stored edge has its
// endpoints in sorted order (a < b); Triangle tuples are kept exactly as
// given (orientation is assigned later by the orient package).
//
// Returns ErrVertexOutOfRange if a triangle references an index outside
// vertices, or ErrDegenerateTriangle if a triangle repeats a vertex.
func NewMesh(vertices []Vertex, triangles []Triangle) (*Mesh, error) {
	for ti, t := range triangles {
		for _, idx := range t.vertices() {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("triangle %d: %w", ti, ErrVertexOutOfRange)
			}
		}
		if t.A == t.B || t.B == t.C || t.A == t.C {
			return nil, fmt.Errorf("triangle %d %v: %w", ti, t, ErrDegenerateTriangle)
		}
	}

	m := &Mesh{
		Vertices:  append([]Vertex(nil), vertices...),
		Triangles: append([]Triangle(nil), triangles...),
		edgeIndex: make(map[[2]int]int),
	}

	for _, t := range triangles {
		pairs := [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
		for _, p := range pairs {
			key := sortedPair(p[0], p[1])
			if _, ok := m.edgeIndex[key]; ok {
				continue
			}
			m.edgeIndex[key] = len(m.Edges)
			m.Edges = append(m.Edges, Edge{A: key[0], B: key[1]})
		}
	}

	return m, nil
}

// IsFace reports whether both endpoints of edge e are vertices of triangle t.
func IsFace(e Edge, t Triangle) bool {
	has := func(idx int) bool { return idx == t.A || idx == t.B || idx == t.C }

	return has(e.A) && has(e.B)
}

// EdgesOf returns the indices into m.Edges of triangle t's three edges.
// Returns ErrMissingTriangleEdge if one of them is absent from the edge
// table, which would violate the mesh's load-time invariant.
func (m *Mesh) EdgesOf(t Triangle) (k1, k2, k3 int, err error) {
	pairs := [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
	var idx [3]int
	for i, p := range pairs {
		j, ok := m.edgeIndex[sortedPair(p[0], p[1])]
		if !ok {
			return 0, 0, 0, fmt.Errorf("triangle %v edge %d: %w", t, i, ErrMissingTriangleEdge)
		}
		idx[i] = j
	}

	return idx[0], idx[1], idx[2], nil
}

// Neighbors returns the indices of triangles that share at least one edge
// with the triangle at index ti, excluding ti itself.
func (m *Mesh) Neighbors(ti int) ([]int, error) {
	if ti < 0 || ti >= len(m.Triangles) {
		return nil, fmt.Errorf("Neighbors(%d): %w", ti, ErrTriangleIndexOutOfRange)
	}

	edgeToTriangles := m.edgeAdjacency()
	seen := make(map[int]bool)
	var out []int
	t := m.Triangles[ti]
	k1, k2, k3, err := m.EdgesOf(t)
	if err != nil {
		return nil, err
	}
	for _, ek := range [3]int{k1, k2, k3} {
		for _, tj := range edgeToTriangles[ek] {
			if tj == ti || seen[tj] {
				continue
			}
			seen[tj] = true
			out = append(out, tj)
		}
	}

	return out, nil
}

// edgeAdjacency builds the edge-index -> incident-triangle-indices table
// used to compute Neighbors and by the orientation engine in O(m+n) instead
// of the naive O(n*k) re-scan per query.
func (m *Mesh) edgeAdjacency() [][]int {
	adj := make([][]int, len(m.Edges))
	for ti, t := range m.Triangles {
		k1, k2, k3, err := m.EdgesOf(t)
		if err != nil {
			// Construction-time invariant guarantees this cannot happen for
			// a Mesh built via NewMesh.
			continue
		}
		adj[k1] = append(adj[k1], ti)
		adj[k2] = append(adj[k2], ti)
		adj[k3] = append(adj[k3], ti)
	}

	return adj
}

// EdgeAdjacency exposes the edge -> incident-triangles table so the orient
// package can reuse it instead of recomputing per-triangle edge lookups.
func (m *Mesh) EdgeAdjacency() [][]int {
	return m.edgeAdjacency()
}
