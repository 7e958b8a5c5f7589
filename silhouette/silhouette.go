// Package silhouette - per-observation widths and their mean (ASW).
package silhouette

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/dissim"
)

// Widths computes the per-observation silhouette of the given assignment
// over d.
//
// Contracts:
//   - d must satisfy dissim.Validate (violations propagate unmasked).
//   - labels[i] ∈ 1.. is the group of observation i; len(labels) must equal
//     the order of d.
//   - The distinct group count must lie in [2, n−1]; ASW is undefined at
//     the boundaries (one group, or every observation its own group).
//
// Singleton convention: an observation alone in its group scores exactly 0
// (neutral), as does any observation where max(a, b) == 0.
//
// Every returned value lies in [−1, 1].
//
// Errors: ErrLabelMismatch, ErrBadLabel, ErrGroupCount, dissim sentinels.
//
// Complexity: O(n²) time, O(n + g) space for g groups.
func Widths(d *mat.SymDense, labels []int) ([]float64, error) {
	if err := dissim.Validate(d); err != nil {
		return nil, err
	}
	var n = d.SymmetricDim()
	if len(labels) != n {
		return nil, ErrLabelMismatch
	}

	// Group sizes, keyed by label.
	var (
		sizes = make(map[int]int)
		i, j  int
	)
	for i = 0; i < n; i++ {
		if labels[i] < 1 {
			return nil, ErrBadLabel
		}
		sizes[labels[i]]++
	}
	if len(sizes) < 2 || len(sizes) >= n {
		return nil, ErrGroupCount
	}

	var (
		widths = make([]float64, n)
		sums   = make(map[int]float64, len(sizes)) // per-group dissimilarity sums from i
	)
	for i = 0; i < n; i++ {
		if sizes[labels[i]] == 1 {
			// Singleton group: neutral by convention.
			widths[i] = 0

			continue
		}

		for g := range sums {
			delete(sums, g)
		}
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			sums[labels[j]] += d.At(i, j)
		}

		// a: mean to own group (size−1 peers); b: min mean to any other.
		var (
			a     = sums[labels[i]] / float64(sizes[labels[i]]-1)
			b     float64
			first = true
		)
		for g, sum := range sums {
			if g == labels[i] {
				continue
			}
			if m := sum / float64(sizes[g]); first || m < b {
				b = m
				first = false
			}
		}

		denom := a
		if b > denom {
			denom = b
		}
		if denom == 0 {
			widths[i] = 0

			continue
		}
		widths[i] = (b - a) / denom
	}

	return widths, nil
}

// Mean returns the Average Silhouette Width of the assignment: the
// arithmetic mean of Widths. This is the single scalar every group-count
// and method comparison in the module rests on.
//
// Errors: those of Widths.
//
// Complexity: O(n²).
func Mean(d *mat.SymDense, labels []int) (float64, error) {
	widths, err := Widths(d, labels)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, w := range widths {
		sum += w
	}

	return sum / float64(len(widths)), nil
}
