// Package mesh defines the vertex/edge/triangle tables of a triangulated
// 2-complex in 3-space and the geometric primitives over them.
//
// A Mesh is built once from a vertex list and a triangle list (see NewMesh),
// which deduplicates the undirected edges contributed by every triangle and
// stores each one with its endpoints in sorted order. The mesh is treated as
// read-only after construction, with one exception: the orient package
// rewrites each edge's and triangle's vertex tuple exactly once, in place, to
// establish a consistent orientation before the boundary operator is built.
//
//	go get github.com/flatmedian/flatmedian/mesh
package mesh
