package boundary

import "errors"

// ErrNilMesh is returned when Build is called with a nil mesh.
var ErrNilMesh = errors.New("boundary: mesh is nil")

// ErrDimensionMismatch is returned when Apply is given a 2-chain whose
// length does not match the operator's column count.
var ErrDimensionMismatch = errors.New("boundary: chain length mismatch")

// ErrIndexOutOfRange is returned by At for an out-of-range row or column.
var ErrIndexOutOfRange = errors.New("boundary: index out of range")
