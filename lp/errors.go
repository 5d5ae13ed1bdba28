package lp

import "errors"

// ErrInputMismatch is returned when the number of input chains does not
// match the number of weights.
var ErrInputMismatch = errors.New("lp: input chain and weight count mismatch")

// ErrDimensionMismatch is returned when an input chain's length does not
// match the mesh it is assembled against.
var ErrDimensionMismatch = errors.New("lp: chain length does not match mesh")

// ErrInvalidWeight is returned when an input weight is not a positive,
// finite number.
var ErrInvalidWeight = errors.New("lp: weight must be positive and finite")

// ErrSolverFailure is returned when the solver oracle cannot produce a
// solution (infeasible, unbounded, or a numerical failure).
var ErrSolverFailure = errors.New("lp: solver failed")
