package mesh

import "errors"

// Sentinel errors for mesh construction and queries.
// Callers MUST use errors.Is to branch on these; context is added with %w
// wrapping at the call site, never by reformatting the sentinel itself.
var (
	// ErrVertexOutOfRange indicates a triangle or edge referenced a vertex
	// index outside the vertex table.
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrDegenerateTriangle indicates a triangle with fewer than three
	// distinct vertex indices.
	ErrDegenerateTriangle = errors.New("mesh: triangle has repeated vertex")

	// ErrDegenerateEdge indicates an edge whose endpoints are equal.
	ErrDegenerateEdge = errors.New("mesh: edge endpoints must be distinct")

	// ErrEdgeNotFound indicates a requested edge is not present in the
	// mesh's edge table.
	ErrEdgeNotFound = errors.New("mesh: edge not found")

	// ErrTriangleIndexOutOfRange indicates a triangle index outside the
	// triangle table.
	ErrTriangleIndexOutOfRange = errors.New("mesh: triangle index out of range")

	// ErrEdgeIndexOutOfRange indicates an edge index outside the edge table.
	ErrEdgeIndexOutOfRange = errors.New("mesh: edge index out of range")

	// ErrMissingTriangleEdge indicates a triangle whose edge is absent from
	// the mesh's edge table, violating the load-time invariant that every
	// triangle's three edges appear in it.
	ErrMissingTriangleEdge = errors.New("mesh: triangle edge missing from edge table")
)
