// Package dissim - error-weighted dissimilarity matrix construction.
package dissim

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/spectra"
)

// diagTol is the structural tolerance for the zero-diagonal check in
// Validate. Matrices built by Matrix have an exact zero diagonal; the
// tolerance only matters for externally produced input.
const diagTol = 1e-12

// Matrix computes the n×n error-weighted dissimilarity matrix of t:
//
//	D[a,b] = Σ_j (X[a,j] − X[b,j])² / (S[a,j]² + S[b,j]²)
//
// optionally rooted (opts.Transform == Rooted). The result is symmetric by
// construction and has an exact zero diagonal.
//
// Contracts:
//   - t must be non-nil with at least 2 rows.
//   - opts.Workers ≤ 1 means serial; any worker count yields bit-identical
//     output (disjoint upper-triangle writes, deterministic arithmetic).
//
// Errors: ErrNilTable, ErrTooFewRows, ErrBadTransform; ErrNonFiniteDistance
// when an entry overflows to +Inf (possible for extreme value/σ ratios) —
// callers must treat it as fatal, never feed such a matrix onward.
//
// Complexity: O(n²·p) time, O(n²) space.
func Matrix(t *spectra.Table, opts Options) (*mat.SymDense, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if t.N() < 2 {
		return nil, ErrTooFewRows
	}
	if opts.Transform != SumOfSquares && opts.Transform != Rooted {
		return nil, ErrBadTransform
	}

	var (
		n = t.N()
		d = mat.NewSymDense(n, nil)
	)

	// NewSymDense zeroes its backing slice, so the diagonal is exactly 0
	// and only the strict upper triangle needs filling.
	if opts.Workers <= 1 || n < 4 {
		fillRows(d, t, opts.Transform, 0, n)
	} else {
		fillParallel(d, t, opts)
	}

	// Re-check the product before handing it to clustering: an overflowed
	// sum must surface here, not as a silent NaN inside a linkage step.
	if err := Validate(d); err != nil {
		return nil, err
	}

	return d, nil
}

// fillRows fills rows [lo, hi) of the strict upper triangle of d.
// Each (a,b) cell is written exactly once, so concurrent callers with
// disjoint row ranges never race.
func fillRows(d *mat.SymDense, t *spectra.Table, tr Transform, lo, hi int) {
	var (
		n       = t.N()
		p       = t.P()
		a, b, j int
		diff    float64
		sa, sb  float64
		sum     float64
	)
	for a = lo; a < hi; a++ {
		for b = a + 1; b < n; b++ {
			sum = 0
			for j = 0; j < p; j++ {
				diff = t.Value(a, j) - t.Value(b, j)
				sa = t.Sigma(a, j)
				sb = t.Sigma(b, j)
				sum += diff * diff / (sa*sa + sb*sb)
			}
			if tr == Rooted {
				sum = math.Sqrt(sum)
			}
			d.SetSym(a, b, sum)
		}
	}
}

// fillParallel splits the rows into opts.Workers contiguous ranges and fills
// them concurrently. Row ranges are disjoint, hence lock-free.
func fillParallel(d *mat.SymDense, t *spectra.Table, opts Options) {
	var (
		n       = t.N()
		workers = opts.Workers
	)
	if workers > n {
		workers = n
	}

	var (
		wg    sync.WaitGroup
		chunk = (n + workers - 1) / workers
		lo    int
	)
	for lo = 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fillRows(d, t, opts.Transform, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// Validate checks that d is a usable dissimilarity matrix:
//   - non-nil, order ≥ 2,
//   - every entry finite and non-negative,
//   - diagonal zero within diagTol.
//
// Downstream packages (clustering, validation) call this before trusting an
// externally supplied matrix, so a corrupted input fails loudly instead of
// skewing a linkage or a silhouette.
//
// Errors: ErrNilMatrix, ErrTooFewRows, ErrNonFiniteDistance,
// ErrNegativeDistance, ErrNonZeroDiagonal.
//
// Complexity: O(n²).
func Validate(d *mat.SymDense) error {
	if d == nil {
		return ErrNilMatrix
	}
	var n = d.SymmetricDim()
	if n < 2 {
		return ErrTooFewRows
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		v = d.At(i, i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteDistance
		}
		if math.Abs(v) > diagTol {
			return ErrNonZeroDiagonal
		}
		for j = i + 1; j < n; j++ {
			v = d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFiniteDistance
			}
			if v < 0 {
				return ErrNegativeDistance
			}
		}
	}

	return nil
}
