package off

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/flatmedian/flatmedian/mesh"
)

// Load reads an OFF file from path and builds a *mesh.Mesh from its vertex
// and triangular-face tables.
func Load(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the OFF subset from r: a header line, a counts line (only the
// vertex count is consulted), one coordinate line per vertex, then one
// triangular-face line per face. Comment lines (leading '#') are skipped and
// do not count toward line numbering.
func Parse(r io.Reader) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(r)

	var vertices []mesh.Vertex
	var triangles []mesh.Triangle
	numVertices := -1
	lineno := 0

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		lineno++

		switch {
		case lineno == 1:
			if parts[0] != "OFF" {
				return nil, ErrMissingHeader
			}
		case lineno == 2:
			n, err := strconv.Atoi(parts[0])
			if err != nil || n < 0 {
				return nil, ErrInvalidVertexCount
			}
			numVertices = n
		case lineno <= numVertices+2:
			v, err := parseVertex(parts)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, v)
		default:
			t, err := parseFace(parts, len(vertices))
			if err != nil {
				return nil, err
			}
			triangles = append(triangles, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if lineno == 0 {
		return nil, ErrMissingHeader
	}

	return mesh.NewMesh(vertices, triangles)
}

func parseVertex(parts []string) (mesh.Vertex, error) {
	if len(parts) < 3 {
		return mesh.Vertex{}, ErrInvalidCoordinate
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return mesh.Vertex{}, ErrInvalidCoordinate
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return mesh.Vertex{}, ErrInvalidCoordinate
	}
	z, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return mesh.Vertex{}, ErrInvalidCoordinate
	}

	return mesh.Vertex{X: x, Y: y, Z: z}, nil
}

func parseFace(parts []string, numVertices int) (mesh.Triangle, error) {
	if len(parts) < 4 {
		return mesh.Triangle{}, ErrInvalidFace
	}
	c, err := strconv.Atoi(parts[0])
	if err != nil {
		return mesh.Triangle{}, ErrInvalidFace
	}
	if c != 3 {
		return mesh.Triangle{}, ErrNonTriangleFace
	}

	idx := make([]int, 3)
	for k := 0; k < 3; k++ {
		v, err := strconv.Atoi(parts[k+1])
		if err != nil {
			return mesh.Triangle{}, ErrInvalidFace
		}
		if v < 0 || v >= numVertices {
			return mesh.Triangle{}, ErrFaceIndexOutOfRange
		}
		idx[k] = v
	}

	return mesh.Triangle{A: idx[0], B: idx[1], C: idx[2]}, nil
}
