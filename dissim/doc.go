// Package dissim builds the error-weighted dissimilarity matrix that every
// clustering and validation routine in this module consumes.
//
// # What & Why
//
// Two stars with identical spectral indexes measured at very different
// precision should not be treated as equally close to a third star. The
// engine therefore weights every squared feature difference by the combined
// variance of the two measurements involved:
//
//	D[a,b] = Σ_{j=1..p} (X[a,j] − X[b,j])² / (S[a,j]² + S[b,j]²)
//
// A feature measured sloppily (large σ) contributes little; a feature
// measured precisely dominates. The raw sum (SumOfSquares, the default)
// keeps sharper contrast between sub-structures; Rooted takes the square
// root, yielding a true metric distance.
//
// # Contracts
//
//   - Matrix is a pure function of its Table input: no side effects, no
//     globals, no randomness. The result is symmetric by construction
//     (stored as *mat.SymDense) with an exact zero diagonal.
//   - Table construction already rejects σ ≤ 0, so a division by zero
//     cannot arise from a valid Table; Matrix still re-checks its output
//     and reports ErrNonFiniteDistance rather than letting NaN/±Inf leak
//     into clustering. Callers must treat that error as fatal.
//   - Validate applies the same policy to an externally produced matrix:
//     finite, non-negative entries and a zero diagonal (within tolerance).
//
// # Concurrency
//
// Workers > 1 splits rows across goroutines in contiguous ranges; each
// goroutine writes a disjoint set of upper-triangle cells, so no locking is
// needed and the result is bit-identical to the serial computation.
//
// Complexity: O(n²·p) time, O(n²) space for the result.
package dissim
