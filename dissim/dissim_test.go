package dissim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/dissim"
	"github.com/mattdell71/universe/spectra"
)

// newTable builds a Table from row-major data, failing the test on error.
func newTable(t *testing.T, n, p int, values, sigmas []float64) *spectra.Table {
	t.Helper()
	tbl, err := spectra.New(mat.NewDense(n, p, values), mat.NewDense(n, p, sigmas))
	require.NoError(t, err, "table construction must succeed")

	return tbl
}

// TestMatrix_SymmetricZeroDiagonal verifies the two structural invariants on
// a generic table: D[a,b]==D[b,a] for all pairs and D[i,i]==0 exactly.
func TestMatrix_SymmetricZeroDiagonal(t *testing.T) {
	tbl := newTable(t, 4, 3,
		[]float64{
			1.0, 2.0, 3.0,
			1.5, 1.8, 3.3,
			9.0, 8.5, 7.2,
			0.2, 2.2, 2.9,
		},
		[]float64{
			0.1, 0.2, 0.1,
			0.2, 0.1, 0.3,
			0.1, 0.1, 0.2,
			0.3, 0.2, 0.1,
		})

	d, err := dissim.Matrix(tbl, dissim.DefaultOptions())
	require.NoError(t, err)

	n := d.SymmetricDim()
	assert.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		assert.Zero(t, d.At(i, i), "diagonal must be exactly zero")
		for j := 0; j < n; j++ {
			assert.Equal(t, d.At(i, j), d.At(j, i), "D must be symmetric")
			assert.GreaterOrEqual(t, d.At(i, j), 0.0, "D must be non-negative")
		}
	}
}

// TestMatrix_IdenticalRowsZero verifies that two rows with identical values
// and identical uncertainties are at dissimilarity exactly 0.
func TestMatrix_IdenticalRowsZero(t *testing.T) {
	tbl := newTable(t, 3, 2,
		[]float64{
			4.2, 1.7,
			4.2, 1.7,
			9.9, 5.5,
		},
		[]float64{
			0.1, 0.2,
			0.1, 0.2,
			0.1, 0.2,
		})

	d, err := dissim.Matrix(tbl, dissim.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, d.At(0, 1), "identical rows must be at distance exactly 0")
	assert.Greater(t, d.At(0, 2), 0.0)
}

// TestMatrix_HandComputed checks one pair against a hand-computed value:
// rows (1,2) and (2,4) with σ=(0.1,0.2) each give
// (1−2)²/(0.01+0.01) + (2−4)²/(0.04+0.04) = 50 + 50 = 100.
func TestMatrix_HandComputed(t *testing.T) {
	tbl := newTable(t, 2, 2,
		[]float64{
			1, 2,
			2, 4,
		},
		[]float64{
			0.1, 0.2,
			0.1, 0.2,
		})

	d, err := dissim.Matrix(tbl, dissim.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 100.0, d.At(0, 1), 1e-9)

	// Rooted transform is the square root of the raw sum, entrywise.
	rooted, err := dissim.Matrix(tbl, dissim.Options{Transform: dissim.Rooted})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, rooted.At(0, 1), 1e-9)
}

// TestMatrix_SigmaMonotonicity verifies that inflating one uncertainty value
// never increases the pairwise distance terms involving that feature.
func TestMatrix_SigmaMonotonicity(t *testing.T) {
	values := []float64{
		1.0, 5.0,
		3.0, 2.0,
	}
	tight := newTable(t, 2, 2, values, []float64{
		0.1, 0.1,
		0.1, 0.1,
	})
	loose := newTable(t, 2, 2, values, []float64{
		0.1, 0.5, // only σ[0,1] inflated
		0.1, 0.1,
	})

	dTight, err := dissim.Matrix(tight, dissim.DefaultOptions())
	require.NoError(t, err)
	dLoose, err := dissim.Matrix(loose, dissim.DefaultOptions())
	require.NoError(t, err)

	assert.Less(t, dLoose.At(0, 1), dTight.At(0, 1),
		"larger uncertainty must shrink the weighted distance")
}

// TestMatrix_ParallelMatchesSerial verifies bit-identical output for any
// worker count (disjoint row ranges, same arithmetic order per cell).
func TestMatrix_ParallelMatchesSerial(t *testing.T) {
	const n, p = 12, 3
	values := make([]float64, n*p)
	sigmas := make([]float64, n*p)
	for i := range values {
		values[i] = math.Sin(float64(i)) * 10
		sigmas[i] = 0.05 + 0.01*float64(i%7)
	}
	tbl := newTable(t, n, p, values, sigmas)

	serial, err := dissim.Matrix(tbl, dissim.DefaultOptions())
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 64} {
		parallel, err := dissim.Matrix(tbl, dissim.Options{Workers: workers})
		require.NoError(t, err)
		assert.True(t, mat.Equal(serial, parallel),
			"workers=%d must reproduce the serial matrix exactly", workers)
	}
}

// TestMatrix_InputErrors covers the sentinel errors for malformed calls.
func TestMatrix_InputErrors(t *testing.T) {
	_, err := dissim.Matrix(nil, dissim.DefaultOptions())
	assert.ErrorIs(t, err, dissim.ErrNilTable)

	single := newTable(t, 1, 2, []float64{1, 2}, []float64{0.1, 0.1})
	_, err = dissim.Matrix(single, dissim.DefaultOptions())
	assert.ErrorIs(t, err, dissim.ErrTooFewRows)

	pair := newTable(t, 2, 1, []float64{1, 2}, []float64{0.1, 0.1})
	_, err = dissim.Matrix(pair, dissim.Options{Transform: dissim.Transform(42)})
	assert.ErrorIs(t, err, dissim.ErrBadTransform)
}

// TestValidate_Policy covers the full matrix-policy check used by downstream
// consumers on externally produced dissimilarity matrices.
func TestValidate_Policy(t *testing.T) {
	assert.ErrorIs(t, dissim.Validate(nil), dissim.ErrNilMatrix)
	assert.ErrorIs(t, dissim.Validate(mat.NewSymDense(1, nil)), dissim.ErrTooFewRows)

	ok := mat.NewSymDense(3, nil)
	ok.SetSym(0, 1, 2.5)
	ok.SetSym(0, 2, 1.0)
	ok.SetSym(1, 2, 4.0)
	assert.NoError(t, dissim.Validate(ok))

	nonFinite := mat.NewSymDense(2, nil)
	nonFinite.SetSym(0, 1, math.Inf(1))
	assert.ErrorIs(t, dissim.Validate(nonFinite), dissim.ErrNonFiniteDistance)

	nan := mat.NewSymDense(2, nil)
	nan.SetSym(0, 1, math.NaN())
	assert.ErrorIs(t, dissim.Validate(nan), dissim.ErrNonFiniteDistance)

	negative := mat.NewSymDense(2, nil)
	negative.SetSym(0, 1, -1)
	assert.ErrorIs(t, dissim.Validate(negative), dissim.ErrNegativeDistance)

	dirtyDiag := mat.NewSymDense(2, nil)
	dirtyDiag.SetSym(0, 0, 0.5)
	assert.ErrorIs(t, dissim.Validate(dirtyDiag), dissim.ErrNonZeroDiagonal)
}
