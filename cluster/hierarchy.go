// Package cluster - hierarchy representation shared by the two
// hierarchical methods, with the cut-by-k extraction.
package cluster

// Merge is one row of a dendrogram: two nodes joined at a given
// dissimilarity level.
//
// Node numbering follows the usual linkage convention: ids 0..n−1 are the
// original observations (leaves); the merge at position t of the merge
// sequence creates internal node n+t. A and B always satisfy A < B.
type Merge struct {
	A, B   int     // node ids being joined
	Height float64 // dissimilarity level of the join
	Size   int     // observations contained in the joined node
}

// Hierarchy is a full agglomeration sequence over n observations: exactly
// n−1 merges ordered by non-decreasing height. Both the Agglomerative and
// the Divisive builders produce this form (the divisive split sequence is
// reversed into merges), so Cut and Merges behave identically for either.
//
// A Hierarchy is immutable after construction.
type Hierarchy struct {
	n      int
	merges []Merge
}

// N returns the number of observations under the hierarchy.
func (h *Hierarchy) N() int { return h.n }

// Merges returns a copy of the dendrogram rows in merge order (ascending
// height). This is the data an external dendrogram renderer consumes.
func (h *Hierarchy) Merges() []Merge {
	out := make([]Merge, len(h.merges))
	copy(out, h.merges)

	return out
}

// Cut extracts the k-group assignment by severing the k−1 highest merges:
// only the first n−k merges are applied, leaving exactly k connected
// components. Labels are 1..k in order of first appearance by observation
// index, so repeated calls are bit-identical.
//
// Errors: ErrNilHierarchy; ErrGroupCount when k ∉ [2, n−1].
//
// Complexity: O(n·α(n)) via union-find.
func (h *Hierarchy) Cut(k int) (Assignment, error) {
	if h == nil {
		return Assignment{}, ErrNilHierarchy
	}
	if k < 2 || k > h.n-1 {
		return Assignment{}, ErrGroupCount
	}

	// Union-find over leaf+internal node ids; parent[x]==x ⇒ root.
	var (
		total  = 2*h.n - 1
		parent = make([]int, total)
		i      int
	)
	for i = 0; i < total; i++ {
		parent[i] = i
	}
	var find func(x int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path halving
			x = parent[x]
		}

		return x
	}

	// Apply the first n−k merges; the internal node n+t stands in as the
	// canonical handle of the merged component.
	var t int
	for t = 0; t < h.n-k; t++ {
		m := h.merges[t]
		parent[find(m.A)] = h.n + t
		parent[find(m.B)] = h.n + t
	}

	// Relabel roots 1..k by first appearance over observations 0..n−1.
	var (
		labels = make([]int, h.n)
		seen   = make(map[int]int, k)
		next   = 1
		root   int
	)
	for i = 0; i < h.n; i++ {
		root = find(i)
		label, ok := seen[root]
		if !ok {
			label = next
			seen[root] = label
			next++
		}
		labels[i] = label
	}

	return Assignment{Labels: labels, K: k}, nil
}
