package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattdell71/universe/cluster"
)

// TestBuild_CutMatchesPartition verifies that building a hierarchy once and
// cutting it per k yields the same assignments Partition produces, for both
// hierarchical methods — the whole point of reusing one linkage run.
func TestBuild_CutMatchesPartition(t *testing.T) {
	d := twoTriples(t)

	for _, m := range []cluster.Method{cluster.Agglomerative, cluster.Divisive} {
		h, err := cluster.Build(d, m)
		require.NoError(t, err, "method %s", m)
		assert.Equal(t, 6, h.N())

		for k := 2; k <= 5; k++ {
			fromCut, err := h.Cut(k)
			require.NoError(t, err)
			fromPartition, err := cluster.Partition(d, k, cluster.Options{Method: m})
			require.NoError(t, err)
			assert.Equal(t, fromPartition.Labels, fromCut.Labels, "method %s k=%d", m, k)
		}
	}
}

// TestBuild_MergeTable verifies the dendrogram-row contract: n−1 rows,
// non-decreasing heights, A < B, sizes ending in the full set.
func TestBuild_MergeTable(t *testing.T) {
	d := twoTriples(t)

	for _, m := range []cluster.Method{cluster.Agglomerative, cluster.Divisive} {
		h, err := cluster.Build(d, m)
		require.NoError(t, err)

		merges := h.Merges()
		require.Len(t, merges, 5, "method %s: n-1 merges expected", m)
		for i, row := range merges {
			assert.Less(t, row.A, row.B, "method %s row %d", m, i)
			assert.GreaterOrEqual(t, row.Height, 0.0)
			if i > 0 {
				assert.GreaterOrEqual(t, row.Height, merges[i-1].Height,
					"method %s: heights must be non-decreasing", m)
			}
		}
		assert.Equal(t, 6, merges[4].Size, "method %s: final merge holds everything", m)

		// The two triples sit far apart, so the last (highest) merge is
		// the one joining them: cutting it away must cost most.
		assert.Greater(t, merges[4].Height, merges[3].Height*2,
			"method %s: the inter-triple join must tower over the rest", m)
	}
}

// TestHierarchy_CutErrors verifies the cut guards: nil receiver and group
// counts outside [2, n−1].
func TestHierarchy_CutErrors(t *testing.T) {
	var nilH *cluster.Hierarchy
	_, err := nilH.Cut(2)
	assert.ErrorIs(t, err, cluster.ErrNilHierarchy)

	h, err := cluster.Build(twoTriples(t), cluster.Agglomerative)
	require.NoError(t, err)
	for _, k := range []int{0, 1, 6, 10} {
		_, err = h.Cut(k)
		assert.ErrorIs(t, err, cluster.ErrGroupCount, "k=%d", k)
	}
}

// TestBuild_MedoidHasNoHierarchy verifies that Build rejects the
// non-hierarchical method.
func TestBuild_MedoidHasNoHierarchy(t *testing.T) {
	_, err := cluster.Build(twoTriples(t), cluster.Medoid)
	assert.ErrorIs(t, err, cluster.ErrUnknownMethod)
}
