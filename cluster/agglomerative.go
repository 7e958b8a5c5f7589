// Package cluster - agglomerative hierarchical clustering with Ward's
// variance-minimizing linkage.
package cluster

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/dissim"
)

// NewAgglomerative builds the full bottom-up hierarchy of d under Ward's
// minimum-variance criterion.
//
// Algorithm Outline (stored-matrix Lance–Williams):
//  1. Start from n singleton clusters; the working matrix w is a copy of d.
//  2. Repeat n−1 times: find the active pair (i,j), i<j, with minimal
//     w[i,j] (ties broken by smallest i, then smallest j); record the merge
//     at height w[i,j]; fold j into i and update every other active
//     cluster l by Ward's Lance–Williams rule:
//     w[i,l] ← ((sᵢ+sₗ)·w[i,l] + (sⱼ+sₗ)·w[j,l] − sₗ·w[i,j]) / (sᵢ+sⱼ+sₗ)
//     where s are cluster sizes.
//  3. The merge sequence, in order of occurrence, is the Hierarchy.
//
// Deterministic given d: no randomness, index-order tie-breaks.
//
// Errors: those of dissim.Validate (propagated unmasked).
//
// Complexity: O(n³) time, O(n²) space.
func NewAgglomerative(d *mat.SymDense) (*Hierarchy, error) {
	if err := dissim.Validate(d); err != nil {
		return nil, err
	}

	var (
		n = d.SymmetricDim()
		w = make([][]float64, n) // working dissimilarities between active clusters
	)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			w[i][j] = d.At(i, j)
		}
	}

	var (
		active = make([]bool, n) // slot i still holds a live cluster
		size   = make([]int, n)  // observations in slot i
		node   = make([]int, n)  // dendrogram node id currently in slot i
		merges = make([]Merge, 0, n-1)
	)
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
		node[i] = i
	}

	var (
		t, i, j, l int
		bi, bj     int
		best       float64
		si, sj, sl float64
	)
	for t = 0; t < n-1; t++ {
		// Scan the active upper triangle for the closest pair.
		bi, bj = -1, -1
		for i = 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if bi < 0 || w[i][j] < best {
					best = w[i][j]
					bi, bj = i, j
				}
			}
		}

		merges = append(merges, Merge{
			A:      minInt(node[bi], node[bj]),
			B:      maxInt(node[bi], node[bj]),
			Height: best,
			Size:   size[bi] + size[bj],
		})

		// Fold bj into bi under Ward's update.
		si = float64(size[bi])
		sj = float64(size[bj])
		for l = 0; l < n; l++ {
			if !active[l] || l == bi || l == bj {
				continue
			}
			sl = float64(size[l])
			w[bi][l] = ((si+sl)*w[bi][l] + (sj+sl)*w[bj][l] - sl*best) / (si + sj + sl)
			w[l][bi] = w[bi][l]
		}
		size[bi] += size[bj]
		node[bi] = n + t
		active[bj] = false
	}

	return &Hierarchy{n: n, merges: merges}, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
