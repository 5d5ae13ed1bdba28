package chainio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/flatmedian/flatmedian/chain"
	"github.com/flatmedian/flatmedian/mesh"
)

// LoadChain reads the legacy chain file format: one "i j" line per edge,
// each setting that edge's coefficient to 1. A line whose endpoints match
// an edge in reverse sets -1, since the edge's stored orientation is the
// opposite of what the file names.
func LoadChain(m *mesh.Mesh, path string) (*chain.Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadChain: %w", err)
	}
	defer f.Close()

	return parseChain(m, f, false)
}

// SaveChain writes the legacy lossy format: one "i j" line per nonzero
// 1-chain coefficient ("i j k" for a 2-chain), using the simplex's stored
// vertex tuple. Sign and magnitude are not recorded; use SaveSigned to
// round-trip them.
func SaveChain(c *chain.Chain, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveChain: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, v := range c.Coeff {
		if v == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, simplexFields(c, i)); err != nil {
			return fmt.Errorf("SaveChain: %w", err)
		}
	}

	return w.Flush()
}

// LoadSigned reads the extended chain file format: "i j coeff" per line, or
// the legacy "i j" form defaulting to coefficient 1 (with the same
// reversed-match sign correction LoadChain applies).
func LoadSigned(m *mesh.Mesh, path string) (*chain.Chain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadSigned: %w", err)
	}
	defer f.Close()

	return parseChain(m, f, true)
}

// SaveSigned writes the extended "i j coeff" format ("i j k coeff" for a
// 2-chain), one line per nonzero coefficient, using the simplex's stored
// vertex tuple and signed value.
func SaveSigned(c *chain.Chain, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveSigned: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, v := range c.Coeff {
		if v == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %g\n", simplexFields(c, i), v); err != nil {
			return fmt.Errorf("SaveSigned: %w", err)
		}
	}

	return w.Flush()
}

// simplexFields renders the vertex tuple of the simplex at index i: "a b"
// for a 1-chain edge, "a b c" for a 2-chain triangle.
func simplexFields(c *chain.Chain, i int) string {
	if c.Dim == 2 {
		t := c.Mesh.Triangles[i]

		return fmt.Sprintf("%d %d %d", t.A, t.B, t.C)
	}
	e := c.Mesh.Edges[i]

	return fmt.Sprintf("%d %d", e.A, e.B)
}

func parseChain(m *mesh.Mesh, r io.Reader, allowCoeff bool) (*chain.Chain, error) {
	c, err := chain.Zero(1, m)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if len(parts) < 2 {
			return nil, ErrInvalidLine
		}

		i, err1 := strconv.Atoi(parts[0])
		j, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return nil, ErrInvalidLine
		}

		mag := 1.0
		if allowCoeff && len(parts) >= 3 {
			v, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, ErrInvalidLine
			}
			mag = v
		}

		idx, sign, err := edgeSign(m, i, j)
		if err != nil {
			return nil, err
		}
		c.Coeff[idx] = sign * mag
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// edgeSign reports the index of edge (i,j) and the sign a file naming it
// should contribute: +1 if the mesh stores it as (i,j), -1 if the mesh
// stores it as (j,i).
func edgeSign(m *mesh.Mesh, i, j int) (int, float64, error) {
	idx, err := m.EdgeIndexOf(i, j)
	if err != nil {
		return 0, 0, fmt.Errorf("edge (%d,%d): %w", i, j, ErrUnknownEdge)
	}
	e := m.Edges[idx]
	if e.A == i && e.B == j {
		return idx, 1, nil
	}

	return idx, -1, nil
}
