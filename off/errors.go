package off

import "errors"

// ErrMissingHeader is returned when the first non-comment line is not "OFF".
var ErrMissingHeader = errors.New("off: not an OFF file: missing header")

// ErrInvalidVertexCount is returned when the counts line's vertex count is
// not a valid non-negative integer.
var ErrInvalidVertexCount = errors.New("off: invalid number of vertices")

// ErrInvalidCoordinate is returned when a vertex line has a malformed x, y,
// or z coordinate.
var ErrInvalidCoordinate = errors.New("off: invalid vertex coordinate")

// ErrInvalidFace is returned when a face line is malformed (missing or
// non-integer fields).
var ErrInvalidFace = errors.New("off: invalid face line")

// ErrNonTriangleFace is returned when a face line's vertex count is not 3.
var ErrNonTriangleFace = errors.New("off: face is not a triangle")

// ErrFaceIndexOutOfRange is returned when a face references a vertex index
// beyond the vertex table.
var ErrFaceIndexOutOfRange = errors.New("off: face index out of bounds")
