// Package median is the builder-style facade over the median-shape linear
// program: create with a mesh and regularizers, attach weighted input
// chains, then Solve to get the median chain and its per-input
// decomposition.
package median
