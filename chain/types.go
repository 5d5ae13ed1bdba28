package chain

import (
	"fmt"
	"strings"

	"github.com/flatmedian/flatmedian/mesh"
)

// Chain is a dense signed coefficient vector over either the edges (Dim=1)
// of a mesh or its triangles (Dim=2). It holds a shared, read-only
// reference to the mesh whose table it indexes.
type Chain struct {
	Dim   int
	Mesh  *mesh.Mesh
	Coeff []float64
}

// Zero returns a Dim-chain of all-zero coefficients over m: length
// m.NumEdges() for Dim=1, m.NumTriangles() for Dim=2.
func Zero(dim int, m *mesh.Mesh) (*Chain, error) {
	n, err := dimLen(dim, m)
	if err != nil {
		return nil, err
	}

	return &Chain{Dim: dim, Mesh: m, Coeff: make([]float64, n)}, nil
}

// FromCoeffs builds a Dim-chain over m from an existing coefficient slice.
// The slice is copied; no chain aliases another's storage. Returns
// ErrDimensionMismatch if len(coeff) does not match the expected length.
func FromCoeffs(dim int, m *mesh.Mesh, coeff []float64) (*Chain, error) {
	n, err := dimLen(dim, m)
	if err != nil {
		return nil, err
	}
	if len(coeff) != n {
		return nil, fmt.Errorf("FromCoeffs: got %d coefficients, want %d: %w", len(coeff), n, ErrDimensionMismatch)
	}

	return &Chain{Dim: dim, Mesh: m, Coeff: append([]float64(nil), coeff...)}, nil
}

func dimLen(dim int, m *mesh.Mesh) (int, error) {
	if m == nil {
		return 0, ErrNilMesh
	}
	switch dim {
	case 1:
		return m.NumEdges(), nil
	case 2:
		return m.NumTriangles(), nil
	default:
		return 0, ErrInvalidDimension
	}
}

// Len returns the number of coefficients (m for a 1-chain, n for a
// 2-chain).
func (c *Chain) Len() int { return len(c.Coeff) }

// IsZero reports whether every coefficient is exactly zero.
func (c *Chain) IsZero() bool {
	for _, v := range c.Coeff {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders the chain as a signed sum of its nonzero terms, e.g.
// "+ (0,1) - 2*(1,2)".
func (c *Chain) String() string {
	var b strings.Builder
	first := true
	for i, v := range c.Coeff {
		if v == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		if v < 0 {
			b.WriteString("- ")
		} else {
			b.WriteString("+ ")
		}
		mag := v
		if mag < 0 {
			mag = -mag
		}
		if mag != 1 {
			fmt.Fprintf(&b, "%g*", mag)
		}
		b.WriteString(c.simplexString(i))
	}

	return b.String()
}

func (c *Chain) simplexString(i int) string {
	if c.Dim == 1 {
		return c.Mesh.Edges[i].String()
	}

	return c.Mesh.Triangles[i].String()
}
