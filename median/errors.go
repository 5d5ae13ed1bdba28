package median

import "errors"

// ErrNoChains is returned by Solve when no chains have been added.
var ErrNoChains = errors.New("median: at least one chain is required")

// ErrMeshMismatch is returned when an added chain references a different
// mesh than the one the builder was created with.
var ErrMeshMismatch = errors.New("median: chain mesh does not match builder mesh")

// ErrInvalidWeight is returned when an added chain's weight is not a
// positive, finite number.
var ErrInvalidWeight = errors.New("median: weight must be positive and finite")

// ErrChainLength is returned when an added chain's length does not match
// the mesh's edge count.
var ErrChainLength = errors.New("median: chain length does not match mesh edge count")
