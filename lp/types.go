package lp

import "github.com/flatmedian/flatmedian/chain"

// Variable is an opaque handle to a decision variable, returned by
// Solver.AddVariable and later passed back to Solver.Value.
type Variable int

// Term is one coefficient*variable product in an objective or constraint.
type Term struct {
	Var   Variable
	Coeff float64
}

// Solver is the pluggable LP oracle contract: add a nonnegative-lower-bound
// variable, accumulate linear objective terms, add linear equality
// constraints, solve, then read back variable values. Any simplex- or
// interior-point-based LP solver can implement this.
type Solver interface {
	AddVariable(lowerBound float64) Variable
	AddObjectiveTerm(v Variable, coeff float64)
	AddEqualityConstraint(terms []Term, rhs float64)
	Solve() error
	Value(v Variable) float64
}

// Decomposition is one input chain's flat-norm witness: T* - Th = Qh + dSh.
type Decomposition struct {
	Residual *chain.Chain // Qh, a 1-chain
	Fill     *chain.Chain // Sh, a 2-chain
}
