// Package dissim - options and sentinel errors for the dissimilarity engine.
package dissim

import "errors"

// Transform selects the final form of every matrix entry.
//
//   - SumOfSquares — keep the raw error-weighted sum. Default: the quadratic
//     growth exaggerates separation between sub-populations, which is what
//     the downstream group-count selection wants.
//   - Rooted — take the square root of the sum, producing a true metric
//     distance (triangle inequality holds).
type Transform int

const (
	// SumOfSquares keeps the raw error-weighted sum of squared differences.
	SumOfSquares Transform = iota

	// Rooted applies a square root to every entry, yielding a metric distance.
	Rooted
)

// String implements fmt.Stringer for diagnostics and table headers.
func (tr Transform) String() string {
	switch tr {
	case SumOfSquares:
		return "sum-of-squares"
	case Rooted:
		return "rooted"
	default:
		return "unknown"
	}
}

// DefaultWorkers means "serial": the whole matrix is filled by the calling
// goroutine. Values > 1 enable the contiguous row-range split.
const DefaultWorkers = 1

// Options configures Matrix.
//
// Fields:
//   - Transform — SumOfSquares (default) or Rooted; see Transform.
//   - Workers   — number of goroutines filling the matrix. ≤1 ⇒ serial.
//     The result is identical for any worker count.
type Options struct {
	Transform Transform
	Workers   int
}

// DefaultOptions returns the canonical configuration: raw sum, serial fill.
func DefaultOptions() Options {
	return Options{
		Transform: SumOfSquares,
		Workers:   DefaultWorkers,
	}
}

// Sentinel errors. Matched with errors.Is; never wrapped inside this package.
var (
	// ErrNilTable indicates a nil *spectra.Table passed to Matrix.
	ErrNilTable = errors.New("dissim: table is nil")

	// ErrNilMatrix indicates a nil matrix passed to Validate.
	ErrNilMatrix = errors.New("dissim: matrix is nil")

	// ErrTooFewRows indicates a matrix of order < 2; pairwise dissimilarity
	// needs at least two observations.
	ErrTooFewRows = errors.New("dissim: matrix order must be at least 2")

	// ErrBadTransform indicates an unrecognized Transform value.
	ErrBadTransform = errors.New("dissim: unknown transform")

	// ErrNonFiniteDistance indicates a NaN or ±Inf entry. Fatal: clustering
	// and validation must never run over a non-finite dissimilarity.
	ErrNonFiniteDistance = errors.New("dissim: non-finite dissimilarity entry")

	// ErrNegativeDistance indicates a negative entry in an externally
	// produced matrix.
	ErrNegativeDistance = errors.New("dissim: negative dissimilarity entry")

	// ErrNonZeroDiagonal indicates a diagonal entry that is not (near) zero.
	ErrNonZeroDiagonal = errors.New("dissim: non-zero diagonal entry")
)
