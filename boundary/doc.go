// Package boundary builds the signed edge-triangle incidence operator
// B ∈ {-1,0,+1}^{m×n} of an oriented simplicial 2-complex: the standard
// boundary map ∂2 sending each oriented triangle to the signed sum of its
// three oriented edges.
//
// B has at most 3 nonzeros per column (one per edge of the triangle), so it
// is stored column-major as a sparse list of (edge index, sign) entries per
// triangle rather than as a dense matrix: each entry's sign is +1 if the
// edge's stored orientation agrees with the orientation induced by the
// triangle, -1 if it is reversed.
package boundary
