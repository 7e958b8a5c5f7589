// Package silhouette - ASW comparison grid across methods and group counts.
package silhouette

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/cluster"
)

// ScoreTable is the group-count × method grid of ASW values produced by
// Compare. Rows follow Ks, columns follow Methods, both in call order.
// External reporting renders it; this package only fills it.
type ScoreTable struct {
	Ks      []int
	Methods []cluster.Method
	Scores  [][]float64 // Scores[ki][mi] = ASW for Ks[ki] under Methods[mi]
}

// At returns the ASW at row ki, column mi.
func (st *ScoreTable) At(ki, mi int) float64 { return st.Scores[ki][mi] }

// Best returns the (k, method) pair with the highest ASW, first-found on
// ties scanning rows then columns.
func (st *ScoreTable) Best() (k int, method cluster.Method, asw float64) {
	var first = true
	for ki := range st.Ks {
		for mi := range st.Methods {
			if first || st.Scores[ki][mi] > asw {
				k = st.Ks[ki]
				method = st.Methods[mi]
				asw = st.Scores[ki][mi]
				first = false
			}
		}
	}

	return k, method, asw
}

// Compare partitions the observations behind d for every candidate group
// count in ks under every method, scoring each assignment by its ASW.
//
// Hierarchical methods are linked once and cut per k; the medoid method is
// re-run per k (it has no hierarchy to cut).
//
// Errors: ErrNoCandidates, ErrNoMethods; cluster.ErrGroupCount for any k
// outside [2, n−1]; dissim sentinels for a bad matrix.
//
// Complexity: O(m·n³) worst case for m methods.
func Compare(d *mat.SymDense, ks []int, methods []cluster.Method) (*ScoreTable, error) {
	if len(ks) == 0 {
		return nil, ErrNoCandidates
	}
	if len(methods) == 0 {
		return nil, ErrNoMethods
	}

	var st = &ScoreTable{
		Ks:      append([]int(nil), ks...),
		Methods: append([]cluster.Method(nil), methods...),
		Scores:  make([][]float64, len(ks)),
	}
	for ki := range st.Scores {
		st.Scores[ki] = make([]float64, len(methods))
	}

	for mi, m := range methods {
		// One linkage run serves every k for the hierarchical methods.
		var (
			h   *cluster.Hierarchy
			err error
		)
		if m == cluster.Agglomerative || m == cluster.Divisive {
			if h, err = cluster.Build(d, m); err != nil {
				return nil, err
			}
		}

		for ki, k := range ks {
			var a cluster.Assignment
			if h != nil {
				a, err = h.Cut(k)
			} else {
				a, err = cluster.Partition(d, k, cluster.Options{Method: m})
			}
			if err != nil {
				return nil, err
			}

			asw, err := Mean(d, a.Labels)
			if err != nil {
				return nil, err
			}
			st.Scores[ki][mi] = asw
		}
	}

	return st, nil
}
