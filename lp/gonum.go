package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultTolerance selects gonum's own simplex convergence tolerance.
const DefaultTolerance = 0

// Option configures a GonumSolver at construction time.
type Option func(*GonumSolver)

// WithTolerance overrides the simplex convergence tolerance. tol must be
// finite and non-negative; zero keeps gonum's default. Panics on a
// nonsensical value (programmer error, not input error).
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("lp: WithTolerance: tol must be finite and non-negative")
	}

	return func(s *GonumSolver) { s.tol = tol }
}

// GonumSolver is the concrete Solver oracle backed by gonum's dense simplex
// implementation (gonum.org/v1/gonum/optimize/convex/lp.Simplex), which
// solves standard form: minimize c^T x subject to A x = b, x >= 0. A
// variable's lower bound is handled by substitution (x = x' + lowerBound,
// x' >= 0) at Solve time, so callers may still pass a nonzero lower bound.
type GonumSolver struct {
	tol         float64
	lowerBounds []float64
	objective   []float64
	constraints []equality
	values      []float64
}

type equality struct {
	terms []Term
	rhs   float64
}

// NewGonumSolver returns an empty Solver ready to accept variables.
func NewGonumSolver(opts ...Option) *GonumSolver {
	s := &GonumSolver{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *GonumSolver) AddVariable(lowerBound float64) Variable {
	s.lowerBounds = append(s.lowerBounds, lowerBound)
	s.objective = append(s.objective, 0)

	return Variable(len(s.lowerBounds) - 1)
}

func (s *GonumSolver) AddObjectiveTerm(v Variable, coeff float64) {
	s.objective[int(v)] += coeff
}

func (s *GonumSolver) AddEqualityConstraint(terms []Term, rhs float64) {
	s.constraints = append(s.constraints, equality{terms: append([]Term(nil), terms...), rhs: rhs})
}

func (s *GonumSolver) Solve() error {
	n := len(s.lowerBounds)
	nc := len(s.constraints)

	if nc == 0 {
		// No constraints: every variable's objective coefficient is
		// nonnegative by construction, so the minimum sits at its lower
		// bound. Simplex requires at least one row, so short-circuit.
		s.values = append([]float64(nil), s.lowerBounds...)

		return nil
	}

	a := mat.NewDense(nc, n, nil)
	b := make([]float64, nc)
	for ci, c := range s.constraints {
		rhs := c.rhs
		for _, t := range c.terms {
			a.Set(ci, int(t.Var), a.At(ci, int(t.Var))+t.Coeff)
			rhs -= t.Coeff * s.lowerBounds[int(t.Var)]
		}
		b[ci] = rhs
	}

	_, xPrime, err := gonumlp.Simplex(s.objective, a, b, s.tol, nil)
	if err != nil {
		return fmt.Errorf("gonum simplex: %v: %w", err, ErrSolverFailure)
	}

	s.values = make([]float64, n)
	for i := range s.values {
		s.values[i] = xPrime[i] + s.lowerBounds[i]
	}

	return nil
}

func (s *GonumSolver) Value(v Variable) float64 {
	return s.values[int(v)]
}
