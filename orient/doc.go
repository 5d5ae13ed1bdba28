// Package orient propagates a globally consistent orientation across a
// triangulated 2-complex.
//
// Orient walks the face-adjacency graph breadth-first from triangle 0,
// rewriting each visited triangle's vertex tuple (by swapping its last two
// entries) whenever a neighbor's current tuple disagrees with the boundary
// sign convention, and fails with ErrNotOrientable the moment an
// already-visited triangle would need to flip again. Once the BFS drains,
// every edge's tuple is overwritten with the orientation induced by the
// first triangle that claims it.
//
// The traversal itself is a plain FIFO work queue over a visited set,
// specialized to triangle adjacency and orientation-flip bookkeeping
// instead of generic graph traversal callbacks.
package orient
