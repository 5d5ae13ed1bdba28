package lp

import (
	"fmt"
	"math"

	"github.com/flatmedian/flatmedian/boundary"
	"github.com/flatmedian/flatmedian/chain"
	"github.com/flatmedian/flatmedian/mesh"
)

const epsilon = 1e-6

// Problem is the assembled median-shape LP: variables allocated, objective
// built, and N*m equality constraints posted to a Solver. Call Solve then
// Extract.
type Problem struct {
	mesh   *mesh.Mesh
	solver Solver

	m, n, numInputs int

	tPlus, tMinus []Variable
	rPlus, rMinus [][]Variable // [h][i]
	sPlus, sMinus [][]Variable // [h][j]
}

// Assemble builds the median-shape LP against solver: edge weights w
// (lengths), triangle weights v (areas), input 1-chains with per-chain
// weights alpha, and regularizers mu, lambda. It allocates variables in the
// order t+/t- then, per input h, r+/r- then s+/s-, posts the objective, and
// posts N*m equality constraints in (h,i) order.
func Assemble(solver Solver, msh *mesh.Mesh, b *boundary.B, inputs []*chain.Chain, alpha []float64, mu, lambda float64) (*Problem, error) {
	if len(inputs) != len(alpha) {
		return nil, fmt.Errorf("Assemble: got %d chains and %d weights: %w", len(inputs), len(alpha), ErrInputMismatch)
	}
	m := msh.NumEdges()
	n := msh.NumTriangles()
	if b.Rows() != m || b.Cols() != n {
		return nil, fmt.Errorf("Assemble: boundary operator is %dx%d, mesh is %dx%d: %w",
			b.Rows(), b.Cols(), m, n, ErrDimensionMismatch)
	}
	for h, c := range inputs {
		if c.Mesh != msh || c.Len() != m {
			return nil, fmt.Errorf("Assemble: input %d: %w", h, ErrDimensionMismatch)
		}
		if a := alpha[h]; !(a > 0) || math.IsInf(a, 0) || math.IsNaN(a) {
			return nil, fmt.Errorf("Assemble: weight %d = %v: %w", h, a, ErrInvalidWeight)
		}
	}

	w := make([]float64, m)
	for i := range w {
		length, err := msh.EdgeLength(i)
		if err != nil {
			return nil, err
		}
		w[i] = length
	}
	v := make([]float64, n)
	for j := range v {
		area, err := msh.TriangleArea(j)
		if err != nil {
			return nil, err
		}
		v[j] = area
	}

	p := &Problem{mesh: msh, solver: solver, m: m, n: n, numInputs: len(inputs)}

	p.tPlus = make([]Variable, m)
	p.tMinus = make([]Variable, m)
	for i := 0; i < m; i++ {
		p.tPlus[i] = solver.AddVariable(0)
		p.tMinus[i] = solver.AddVariable(0)
		solver.AddObjectiveTerm(p.tPlus[i], mu*w[i])
		solver.AddObjectiveTerm(p.tMinus[i], mu*w[i])
	}

	p.rPlus = make([][]Variable, len(inputs))
	p.rMinus = make([][]Variable, len(inputs))
	p.sPlus = make([][]Variable, len(inputs))
	p.sMinus = make([][]Variable, len(inputs))

	for h, a := range alpha {
		p.rPlus[h] = make([]Variable, m)
		p.rMinus[h] = make([]Variable, m)
		for i := 0; i < m; i++ {
			p.rPlus[h][i] = solver.AddVariable(0)
			p.rMinus[h][i] = solver.AddVariable(0)
			solver.AddObjectiveTerm(p.rPlus[h][i], a*w[i])
			solver.AddObjectiveTerm(p.rMinus[h][i], a*w[i])
		}

		p.sPlus[h] = make([]Variable, n)
		p.sMinus[h] = make([]Variable, n)
		for j := 0; j < n; j++ {
			p.sPlus[h][j] = solver.AddVariable(0)
			p.sMinus[h][j] = solver.AddVariable(0)
			solver.AddObjectiveTerm(p.sPlus[h][j], a*lambda*v[j])
			solver.AddObjectiveTerm(p.sMinus[h][j], a*lambda*v[j])
		}
	}

	// Row-major view of B, so each constraint touches only the triangles
	// actually incident to its edge instead of scanning all n columns.
	type colSign struct {
		col  int
		sign float64
	}
	rows := make([][]colSign, m)
	for j := 0; j < n; j++ {
		for _, e := range b.Column(j) {
			rows[e.Row] = append(rows[e.Row], colSign{col: j, sign: e.Sign})
		}
	}

	// FlatDecomp{h,i}: (t+_i - t-_i) - T_{h,i} = (r+_{h,i} - r-_{h,i}) + sum_j B[i,j]*(s+_{h,j} - s-_{h,j})
	// rearranged to the left-hand-side-only form the Solver posts:
	// t+_i - t-_i - r+_{h,i} + r-_{h,i} - sum_j B[i,j]*s+_{h,j} + sum_j B[i,j]*s-_{h,j} = T_{h,i}
	for h, c := range inputs {
		for i := 0; i < m; i++ {
			terms := []Term{
				{Var: p.tPlus[i], Coeff: 1},
				{Var: p.tMinus[i], Coeff: -1},
				{Var: p.rPlus[h][i], Coeff: -1},
				{Var: p.rMinus[h][i], Coeff: 1},
			}
			for _, cs := range rows[i] {
				terms = append(terms,
					Term{Var: p.sPlus[h][cs.col], Coeff: -cs.sign},
					Term{Var: p.sMinus[h][cs.col], Coeff: cs.sign},
				)
			}
			solver.AddEqualityConstraint(terms, c.Coeff[i])
		}
	}

	return p, nil
}

// Solve runs the assembled problem through its solver.
func (p *Problem) Solve() error {
	if err := p.solver.Solve(); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	return nil
}

// Extract reads the solved variable values back into the median chain and
// the per-input decompositions, rounding any value with |.| <= epsilon to
// exactly zero.
func (p *Problem) Extract() (*chain.Chain, []Decomposition, error) {
	median, err := chain.Zero(1, p.mesh)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < p.m; i++ {
		median.Coeff[i] = threshold(p.solver.Value(p.tPlus[i]) - p.solver.Value(p.tMinus[i]))
	}

	decomp := make([]Decomposition, p.numInputs)
	for h := 0; h < p.numInputs; h++ {
		q, err := chain.Zero(1, p.mesh)
		if err != nil {
			return nil, nil, err
		}
		for i := 0; i < p.m; i++ {
			q.Coeff[i] = threshold(p.solver.Value(p.rPlus[h][i]) - p.solver.Value(p.rMinus[h][i]))
		}

		s, err := chain.Zero(2, p.mesh)
		if err != nil {
			return nil, nil, err
		}
		for j := 0; j < p.n; j++ {
			s.Coeff[j] = threshold(p.solver.Value(p.sPlus[h][j]) - p.solver.Value(p.sMinus[h][j]))
		}

		decomp[h] = Decomposition{Residual: q, Fill: s}
	}

	return median, decomp, nil
}

func threshold(v float64) float64 {
	if math.Abs(v) <= epsilon {
		return 0
	}

	return v
}
