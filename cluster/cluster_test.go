package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/dissim"
	"github.com/mattdell71/universe/spectra"
)

// twoTriples builds the canonical toy dissimilarity matrix: six stars in
// two spectral indexes, observations 0-2 near (0,0) and 3-5 near (10,10),
// all measured at σ = 0.1.
func twoTriples(t *testing.T) *mat.SymDense {
	t.Helper()
	values := mat.NewDense(6, 2, []float64{
		0.0, 0.0,
		0.1, 0.0,
		0.0, 0.1,
		10.0, 10.0,
		10.1, 10.0,
		10.0, 10.1,
	})
	sigmas := mat.NewDense(6, 2, []float64{
		0.1, 0.1,
		0.1, 0.1,
		0.1, 0.1,
		0.1, 0.1,
		0.1, 0.1,
		0.1, 0.1,
	})
	tbl, err := spectra.New(values, sigmas)
	require.NoError(t, err)
	d, err := dissim.Matrix(tbl, dissim.DefaultOptions())
	require.NoError(t, err)

	return d
}

// allMethods enumerates the three strategies under test.
var allMethods = []cluster.Method{cluster.Agglomerative, cluster.Divisive, cluster.Medoid}

// TestPartition_TwoTriples verifies that every method separates the two
// intended triples at k=2, whatever label numbering it picks.
func TestPartition_TwoTriples(t *testing.T) {
	d := twoTriples(t)

	for _, m := range allMethods {
		a, err := cluster.Partition(d, 2, cluster.Options{Method: m})
		require.NoError(t, err, "method %s", m)
		require.Len(t, a.Labels, 6)
		assert.Equal(t, 2, a.K)

		assert.Equal(t, a.Labels[0], a.Labels[1], "method %s: first triple split", m)
		assert.Equal(t, a.Labels[0], a.Labels[2], "method %s: first triple split", m)
		assert.Equal(t, a.Labels[3], a.Labels[4], "method %s: second triple split", m)
		assert.Equal(t, a.Labels[3], a.Labels[5], "method %s: second triple split", m)
		assert.NotEqual(t, a.Labels[0], a.Labels[3], "method %s: triples must part ways", m)
	}
}

// TestPartition_LabelContract verifies that labels are exactly 1..k with
// every observation assigned, for each method and several group counts.
func TestPartition_LabelContract(t *testing.T) {
	d := twoTriples(t)

	for _, m := range allMethods {
		for k := 2; k <= 5; k++ {
			a, err := cluster.Partition(d, k, cluster.Options{Method: m})
			require.NoError(t, err, "method %s k=%d", m, k)

			seen := make(map[int]bool)
			for _, label := range a.Labels {
				assert.GreaterOrEqual(t, label, 1)
				assert.LessOrEqual(t, label, k)
				seen[label] = true
			}
			assert.Len(t, seen, k, "method %s k=%d must use every label", m, k)
		}
	}
}

// TestPartition_Deterministic verifies that repeated calls on the same d
// return identical assignments for all three methods (no hidden randomness).
func TestPartition_Deterministic(t *testing.T) {
	d := twoTriples(t)

	for _, m := range allMethods {
		first, err := cluster.Partition(d, 3, cluster.Options{Method: m})
		require.NoError(t, err)
		for run := 0; run < 5; run++ {
			again, err := cluster.Partition(d, 3, cluster.Options{Method: m})
			require.NoError(t, err)
			assert.Equal(t, first.Labels, again.Labels, "method %s must be deterministic", m)
		}
	}
}

// TestPartition_GroupCountErrors verifies the [2, n−1] guard on every method.
func TestPartition_GroupCountErrors(t *testing.T) {
	d := twoTriples(t)

	for _, m := range allMethods {
		for _, k := range []int{-1, 0, 1, 6, 7} {
			_, err := cluster.Partition(d, k, cluster.Options{Method: m})
			assert.ErrorIs(t, err, cluster.ErrGroupCount, "method %s k=%d", m, k)
		}
	}
}

// TestPartition_InvalidDissimilarity verifies that matrix-policy violations
// surface as the dissim sentinels, never silently masked.
func TestPartition_InvalidDissimilarity(t *testing.T) {
	nan := mat.NewSymDense(4, nil)
	nan.SetSym(0, 1, math.NaN())

	negative := mat.NewSymDense(4, nil)
	negative.SetSym(1, 2, -3)

	for _, m := range allMethods {
		_, err := cluster.Partition(nan, 2, cluster.Options{Method: m})
		assert.ErrorIs(t, err, dissim.ErrNonFiniteDistance, "method %s", m)

		_, err = cluster.Partition(negative, 2, cluster.Options{Method: m})
		assert.ErrorIs(t, err, dissim.ErrNegativeDistance, "method %s", m)

		_, err = cluster.Partition(nil, 2, cluster.Options{Method: m})
		assert.ErrorIs(t, err, dissim.ErrNilMatrix, "method %s", m)
	}
}

// TestPartition_UnknownMethod verifies the dispatcher's method guard.
func TestPartition_UnknownMethod(t *testing.T) {
	d := twoTriples(t)
	_, err := cluster.Partition(d, 2, cluster.Options{Method: cluster.Method(99)})
	assert.ErrorIs(t, err, cluster.ErrUnknownMethod)
}
