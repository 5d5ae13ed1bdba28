package mesh

import "fmt"

// refAxis is the reference axis TriangleSignedArea projects the oriented
// cross product onto. Used only to seed the orientation BFS on triangle 0.
var refAxis = Vertex{X: 0, Y: 1, Z: 0}

// EdgeLength returns the Euclidean length of the edge at index i.
func (m *Mesh) EdgeLength(i int) (float64, error) {
	if i < 0 || i >= len(m.Edges) {
		return 0, fmt.Errorf("EdgeLength(%d): %w", i, ErrEdgeIndexOutOfRange)
	}
	e := m.Edges[i]

	return m.Vertices[e.A].Sub(m.Vertices[e.B]).Norm(), nil
}

// TriangleArea returns the area of the triangle at index j, one half the
// norm of the cross product of two of its edge vectors.
func (m *Mesh) TriangleArea(j int) (float64, error) {
	if j < 0 || j >= len(m.Triangles) {
		return 0, fmt.Errorf("TriangleArea(%d): %w", j, ErrTriangleIndexOutOfRange)
	}
	t := m.Triangles[j]
	ab := m.Vertices[t.B].Sub(m.Vertices[t.A])
	ac := m.Vertices[t.C].Sub(m.Vertices[t.A])

	return 0.5 * ab.Cross(ac).Norm(), nil
}

// TriangleSignedArea returns TriangleArea with a sign set by the dot product
// of the triangle's cross product with refAxis. Used only by the
// orientation engine to pick a canonical parity for the seed triangle.
func (m *Mesh) TriangleSignedArea(j int) (float64, error) {
	if j < 0 || j >= len(m.Triangles) {
		return 0, fmt.Errorf("TriangleSignedArea(%d): %w", j, ErrTriangleIndexOutOfRange)
	}
	t := m.Triangles[j]
	ab := m.Vertices[t.B].Sub(m.Vertices[t.A])
	ac := m.Vertices[t.C].Sub(m.Vertices[t.A])
	cross := ab.Cross(ac)
	area := 0.5 * cross.Norm()
	if cross.Dot(refAxis) < 0 {
		return -area, nil
	}

	return area, nil
}

// InducedOrientation returns the orientation edge (vᵢ,vⱼ) induced on the
// edge sharing vertex set {vᵢ,vⱼ} by triangle τ = (v0,v1,v2): cyclic
// successor order (vᵢ,vⱼ) when j = i+1 mod 3, else the reverse (vⱼ,vᵢ).
//
// e must be a face of t (IsFace(e, t)); this is the caller's responsibility
// since the boundary operator and orientation engine both already know this
// from edge-triangle adjacency.
func InducedOrientation(e Edge, t Triangle) Edge {
	verts := t.vertices()
	// locate i,j such that {verts[i],verts[j]} == {e.A,e.B}, j = i+1 mod 3
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		a, b := verts[i], verts[j]
		if (a == e.A && b == e.B) || (a == e.B && b == e.A) {
			// cyclic successor pair in tuple order is (verts[i],verts[j]),
			// including the wrap-around case i=2,j=0 mod 3.
			return Edge{A: a, B: b}
		}
	}

	// Not a face; caller error. Return e reversed so misuse is visible
	// rather than silently accepted.
	return e.Reversed()
}
