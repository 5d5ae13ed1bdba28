// Package lp assembles the median-shape linear program and extracts its
// solution back into chains. It treats the actual solving as a pluggable
// oracle (see Solver) so the assembly logic is independent of which LP
// library performs the simplex or interior-point iterations; GonumSolver is
// the concrete oracle backed by gonum.org/v1/gonum/optimize/convex/lp.
//
// Variables are allocated in a fixed order so that a Problem's internal
// bookkeeping is reproducible run to run: first t+/t- (length m, one pair
// per edge of the median), then for each input chain h, r+/r- (length m,
// the 1-chain residual) followed by s+/s- (length n, the 2-chain fill).
package lp
