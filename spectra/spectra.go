package spectra

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Table is an immutable pair of n×p matrices: observed spectral-index values
// and their standard deviations, with shared row/column order.
//
// Construct via New; the zero value is not usable.
type Table struct {
	values *mat.Dense // n×p observed values, finite
	sigmas *mat.Dense // n×p standard deviations, strictly positive and finite
	n      int        // rows (stars)
	p      int        // columns (indexes)
}

// New validates and deep-copies the given matrices into a Table.
//
// Contracts:
//   - values and sigmas must be non-nil with identical shape n×p, n ≥ 1, p ≥ 1.
//   - every values entry must be finite.
//   - every sigmas entry must be strictly positive and finite.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrEmptyTable, ErrNonFiniteValue,
// ErrNonPositiveSigma.
//
// Complexity: O(n·p) time and space (validation plus one deep copy per matrix).
func New(values, sigmas *mat.Dense) (*Table, error) {
	if values == nil || sigmas == nil {
		return nil, ErrNilMatrix
	}

	var (
		n, p   = values.Dims()
		sn, sp = sigmas.Dims()
	)
	if n != sn || p != sp {
		return nil, ErrShapeMismatch
	}
	if n == 0 || p == 0 {
		return nil, ErrEmptyTable
	}

	// Scan both matrices before allocating: reject NaN/Inf values and any
	// sigma that would divide by zero in the dissimilarity engine.
	var (
		i, j int
		v, s float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			v = values.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNonFiniteValue
			}
			s = sigmas.At(i, j)
			if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
				return nil, ErrNonPositiveSigma
			}
		}
	}

	return &Table{
		values: mat.DenseCopyOf(values),
		sigmas: mat.DenseCopyOf(sigmas),
		n:      n,
		p:      p,
	}, nil
}

// N returns the number of observations (rows).
func (t *Table) N() int { return t.n }

// P returns the number of measured indexes (columns).
func (t *Table) P() int { return t.p }

// Value returns the observed value at row i, column j.
// Indexes are not bounds-checked beyond gonum's own panic; use for hot loops
// after shape has been established via N/P.
func (t *Table) Value(i, j int) float64 { return t.values.At(i, j) }

// Sigma returns the standard deviation at row i, column j.
func (t *Table) Sigma(i, j int) float64 { return t.sigmas.At(i, j) }

// Values returns a deep copy of the observed-value matrix.
// The copy is the caller's to mutate; the Table itself never changes.
func (t *Table) Values() *mat.Dense { return mat.DenseCopyOf(t.values) }

// Sigmas returns a deep copy of the uncertainty matrix.
func (t *Table) Sigmas() *mat.Dense { return mat.DenseCopyOf(t.sigmas) }

// Row returns a copy of the observed values of row i.
//
// Errors: ErrRowOutOfRange when i is outside [0, N).
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.n {
		return nil, ErrRowOutOfRange
	}
	out := make([]float64, t.p)
	mat.Row(out, i, t.values)

	return out, nil
}

// SigmaRow returns a copy of the uncertainties of row i.
//
// Errors: ErrRowOutOfRange when i is outside [0, N).
func (t *Table) SigmaRow(i int) ([]float64, error) {
	if i < 0 || i >= t.n {
		return nil, ErrRowOutOfRange
	}
	out := make([]float64, t.p)
	mat.Row(out, i, t.sigmas)

	return out, nil
}

// Clone returns an independent deep copy of the table. Monte Carlo trials
// clone rather than share so that no state crosses trial boundaries.
func (t *Table) Clone() *Table {
	return &Table{
		values: mat.DenseCopyOf(t.values),
		sigmas: mat.DenseCopyOf(t.sigmas),
		n:      t.n,
		p:      t.p,
	}
}
