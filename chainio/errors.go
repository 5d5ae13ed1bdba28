package chainio

import "errors"

// ErrInvalidLine is returned when a chain or current file line does not
// parse into the expected fields.
var ErrInvalidLine = errors.New("chainio: invalid line")

// ErrUnknownEdge is returned when a chain or current file references an
// edge not present in the mesh.
var ErrUnknownEdge = errors.New("chainio: unknown edge")

// ErrNoNearestVertex is returned by LoadCurrent when a mesh has no vertices
// to snap a point to.
var ErrNoNearestVertex = errors.New("chainio: no vertex found near point")
