package boundary

import (
	"fmt"

	"github.com/flatmedian/flatmedian/chain"
	"github.com/flatmedian/flatmedian/mesh"
)

// Entry is one nonzero of B: row i (edge index) with sign +1 or -1.
type Entry struct {
	Row  int
	Sign float64
}

// B is the sparse signed edge-triangle boundary operator. Columns are
// indexed by triangle, each holding at most 3 nonzero Entries.
type B struct {
	rows    int
	cols    int
	columns [][]Entry
}

// Build constructs B from m, which must already carry a consistent
// orientation (see package orient). Entry (i,j) is 0 if edge i is not a
// face of triangle j; +1 if edge i's stored orientation matches the
// orientation induced by triangle j; -1 if it is the reverse.
func Build(m *mesh.Mesh) (*B, error) {
	if m == nil {
		return nil, ErrNilMesh
	}

	b := &B{
		rows:    m.NumEdges(),
		cols:    m.NumTriangles(),
		columns: make([][]Entry, m.NumTriangles()),
	}

	for j, t := range m.Triangles {
		k1, k2, k3, err := m.EdgesOf(t)
		if err != nil {
			return nil, fmt.Errorf("Build: triangle %d: %w", j, err)
		}
		col := make([]Entry, 0, 3)
		for _, i := range [3]int{k1, k2, k3} {
			induced := mesh.InducedOrientation(m.Edges[i], t)
			sign := -1.0
			if induced == m.Edges[i] {
				sign = 1.0
			}
			col = append(col, Entry{Row: i, Sign: sign})
		}
		b.columns[j] = col
	}

	return b, nil
}

// Rows returns m, the number of edges.
func (b *B) Rows() int { return b.rows }

// Cols returns n, the number of triangles.
func (b *B) Cols() int { return b.cols }

// Column returns the nonzero entries of column j (the three signed edges of
// triangle j).
func (b *B) Column(j int) []Entry { return b.columns[j] }

// At returns B[i,j], 0 if edge i is not a face of triangle j.
func (b *B) At(i, j int) (float64, error) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	for _, e := range b.columns[j] {
		if e.Row == i {
			return e.Sign, nil
		}
	}

	return 0, nil
}

// Apply computes the 1-chain B·s for a 2-chain s (the fill chain's
// boundary).
func (b *B) Apply(s *chain.Chain) (*chain.Chain, error) {
	if s.Len() != b.cols {
		return nil, fmt.Errorf("Apply: got %d coefficients, want %d: %w", s.Len(), b.cols, ErrDimensionMismatch)
	}

	out, err := chain.Zero(1, s.Mesh)
	if err != nil {
		return nil, err
	}
	for j, col := range b.columns {
		sj := s.Coeff[j]
		if sj == 0 {
			continue
		}
		for _, e := range col {
			out.Coeff[e.Row] += e.Sign * sj
		}
	}

	return out, nil
}
