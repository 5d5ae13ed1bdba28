package orient

import "errors"

// ErrNotOrientable is returned when a visited triangle would need its
// orientation flipped again to satisfy a second neighbor constraint:
// the complex has no global consistent orientation (e.g. a Möbius strip).
var ErrNotOrientable = errors.New("orient: complex is not orientable")

// ErrDisconnected is returned when the BFS from triangle 0 cannot reach
// every triangle: the face-adjacency graph has more than one component, so
// some triangles would be left with an undefined orientation relationship
// to the rest. Detected explicitly rather than silently ignored.
var ErrDisconnected = errors.New("orient: mesh is disconnected")

// ErrEmptyMesh is returned when Orient is called on a mesh with no
// triangles; there is nothing to seed the BFS from.
var ErrEmptyMesh = errors.New("orient: mesh has no triangles")
