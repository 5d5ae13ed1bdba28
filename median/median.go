package median

import (
	"fmt"
	"math"

	"github.com/flatmedian/flatmedian/boundary"
	"github.com/flatmedian/flatmedian/chain"
	"github.com/flatmedian/flatmedian/lp"
	"github.com/flatmedian/flatmedian/mesh"
)

// Builder accumulates weighted input chains against a fixed mesh and
// regularizer pair, then solves the median-shape LP.
type Builder struct {
	mesh       *mesh.Mesh
	mu, lambda float64
	chains     []*chain.Chain
	weights    []float64
}

// New creates a Builder over m with regularizers mu (edge-length term) and
// lambda (triangle-area term).
func New(m *mesh.Mesh, mu, lambda float64) *Builder {
	return &Builder{mesh: m, mu: mu, lambda: lambda}
}

// AddChain attaches an input chain with weight alpha. Returns ErrMeshMismatch,
// ErrChainLength, or ErrInvalidWeight if c or alpha is unsuitable.
func (b *Builder) AddChain(c *chain.Chain, alpha float64) error {
	if c.Mesh != b.mesh {
		return ErrMeshMismatch
	}
	if c.Len() != b.mesh.NumEdges() {
		return fmt.Errorf("AddChain: got length %d, want %d: %w", c.Len(), b.mesh.NumEdges(), ErrChainLength)
	}
	if !(alpha > 0) || math.IsInf(alpha, 0) || math.IsNaN(alpha) {
		return fmt.Errorf("AddChain: weight %v: %w", alpha, ErrInvalidWeight)
	}

	b.chains = append(b.chains, c)
	b.weights = append(b.weights, alpha)

	return nil
}

// Decomposition is one input chain's flat-norm witness: T* - Th = Qh + dSh.
type Decomposition = lp.Decomposition

// Solve builds the signed boundary operator, assembles the median-shape LP,
// solves it with gonum's simplex, and extracts the median chain and one
// Decomposition per input, in the order chains were added.
func (b *Builder) Solve() (*chain.Chain, []Decomposition, error) {
	if len(b.chains) == 0 {
		return nil, nil, ErrNoChains
	}

	bop, err := boundary.Build(b.mesh)
	if err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}

	solver := lp.NewGonumSolver()
	problem, err := lp.Assemble(solver, b.mesh, bop, b.chains, b.weights, b.mu, b.lambda)
	if err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}
	if err := problem.Solve(); err != nil {
		return nil, nil, fmt.Errorf("Solve: %w", err)
	}

	return problem.Extract()
}
