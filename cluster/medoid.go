// Package cluster - medoid-based partitioning (PAM: BUILD + SWAP).
package cluster

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/dissim"
)

// swapTol is the minimum cost improvement accepted by a SWAP step.
// Rejecting zero-gain swaps keeps the search finite and deterministic.
const swapTol = 1e-12

// PAM partitions the n observations behind d into k groups around k medoid
// objects (Partitioning Around Medoids).
//
// Initialization rule (fixed, for reproducibility): the classic greedy
// BUILD — the first medoid is the object minimizing the total
// dissimilarity to all others; each subsequent medoid is the object whose
// addition maximally reduces that total. Ties always break toward the
// lowest observation index. BUILD is followed by SWAP: while some
// (medoid, non-medoid) exchange lowers the total cost by more than a
// fixed tolerance, apply the single best such exchange (ties again toward
// lowest indices). No randomness anywhere, so repeated calls return the
// same Assignment.
//
// Assignment: every observation joins its nearest medoid, ties toward the
// lowest medoid index; labels are 1..k by ascending medoid index.
//
// Unlike the hierarchical methods there is no hierarchy to cut: call PAM
// once per candidate k.
//
// Errors: ErrGroupCount when k ∉ [2, n−1]; dissim.Validate errors
// propagated unmasked.
//
// Complexity: O(n²·k) per BUILD, O(n²·k²) per SWAP pass.
func PAM(d *mat.SymDense, k int) (Assignment, error) {
	if err := dissim.Validate(d); err != nil {
		return Assignment{}, err
	}
	var n = d.SymmetricDim()
	if k < 2 || k > n-1 {
		return Assignment{}, ErrGroupCount
	}

	medoids := buildMedoids(d, n, k)

	// SWAP: greedy steepest descent over all (medoid, candidate) pairs.
	var (
		current  = totalCost(d, n, medoids)
		improved bool
	)
	for {
		improved = false
		var (
			bestM, bestH int
			bestCost     = current
		)
		for mi, m := range medoids {
			for h := 0; h < n; h++ {
				if isMedoid(medoids, h) {
					continue
				}
				medoids[mi] = h
				cost := totalCost(d, n, medoids)
				medoids[mi] = m
				if cost < bestCost-swapTol {
					bestCost = cost
					bestM, bestH = mi, h
					improved = true
				}
			}
		}
		if !improved {
			break
		}
		medoids[bestM] = bestH
		current = bestCost
	}

	// Labels 1..k by ascending medoid index; nearest-medoid assignment
	// with ties toward the lowest medoid index.
	sort.Ints(medoids)
	var labels = make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = nearestMedoid(d, medoids, i) + 1
	}

	return Assignment{Labels: labels, K: k}, nil
}

// buildMedoids performs the greedy BUILD initialization.
func buildMedoids(d *mat.SymDense, n, k int) []int {
	var (
		medoids = make([]int, 0, k)
		i, j    int
	)

	// First medoid: minimal total dissimilarity to all objects.
	var (
		first    = -1
		firstSum float64
	)
	for i = 0; i < n; i++ {
		var sum float64
		for j = 0; j < n; j++ {
			sum += d.At(i, j)
		}
		if first < 0 || sum < firstSum {
			first = i
			firstSum = sum
		}
	}
	medoids = append(medoids, first)

	// Each next medoid: maximal reduction of the nearest-medoid cost.
	nearest := make([]float64, n)
	for i = 0; i < n; i++ {
		nearest[i] = d.At(i, first)
	}
	for len(medoids) < k {
		var (
			pick     = -1
			pickGain float64
		)
		for i = 0; i < n; i++ {
			if isMedoid(medoids, i) {
				continue
			}
			var gain float64
			for j = 0; j < n; j++ {
				if cut := nearest[j] - d.At(j, i); cut > 0 {
					gain += cut
				}
			}
			if pick < 0 || gain > pickGain {
				pick = i
				pickGain = gain
			}
		}
		medoids = append(medoids, pick)
		for j = 0; j < n; j++ {
			if v := d.At(j, pick); v < nearest[j] {
				nearest[j] = v
			}
		}
	}

	return medoids
}

// totalCost sums each object's dissimilarity to its nearest medoid.
func totalCost(d *mat.SymDense, n int, medoids []int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		var (
			best  float64
			first = true
		)
		for _, m := range medoids {
			if v := d.At(i, m); first || v < best {
				best = v
				first = false
			}
		}
		sum += best
	}

	return sum
}

// nearestMedoid returns the position (in the sorted medoid slice) of the
// medoid closest to observation i, ties toward the lowest medoid index.
func nearestMedoid(d *mat.SymDense, medoids []int, i int) int {
	var (
		pos  = 0
		best = d.At(i, medoids[0])
	)
	for p := 1; p < len(medoids); p++ {
		if v := d.At(i, medoids[p]); v < best {
			best = v
			pos = p
		}
	}

	return pos
}

// isMedoid reports whether obs is currently one of the medoids.
func isMedoid(medoids []int, obs int) bool {
	for _, m := range medoids {
		if m == obs {
			return true
		}
	}

	return false
}
