package chain

import "errors"

// ErrDimensionMismatch is returned when a coefficient vector's length does
// not match the chain's dimension (m edges for a 1-chain, n triangles for a
// 2-chain).
var ErrDimensionMismatch = errors.New("chain: coefficient length mismatch")

// ErrNilMesh is returned when a chain is constructed against a nil mesh.
var ErrNilMesh = errors.New("chain: mesh is nil")

// ErrInvalidDimension is returned when Dim is neither 1 nor 2.
var ErrInvalidDimension = errors.New("chain: dimension must be 1 or 2")
