// Package cluster - divisive hierarchical clustering (DIANA).
package cluster

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/dissim"
)

// divNode is one cluster in the divisive tree. Leaves hold a single
// member; internal nodes remember the order in which they were split and
// the diameter at which the split happened.
type divNode struct {
	members     []int // observation indices, ascending
	left, right *divNode
	height      float64 // diameter of this cluster when it was split
	splitOrd    int     // 0-based position in the split sequence
}

// NewDivisive builds the full top-down hierarchy of d in the manner of
// DIANA (DIvisive ANAlysis).
//
// Algorithm Outline:
//  1. Start from one cluster holding all n observations.
//  2. Repeat n−1 times: pick the cluster with the largest diameter
//     (largest pairwise dissimilarity inside it; ties broken by position
//     in the current cluster list, a fixed order). Seed a splinter
//     group with the member of maximal average dissimilarity to the rest,
//     then repeatedly move over the member whose average dissimilarity to
//     the remainder most exceeds its average dissimilarity to the
//     splinter, while any such member exists and the remainder keeps at
//     least one object.
//  3. Reverse the split sequence into a merge sequence: the last split
//     becomes the first merge, each at the diameter of the cluster that
//     was divided. Split diameters are non-increasing (children never
//     exceed their parent), so the reversed merges are ordered by
//     non-decreasing height as Hierarchy requires.
//
// Cutting the resulting Hierarchy at k severs the k−1 largest-diameter
// splits, i.e. keeps exactly the first k−1 divisions.
//
// Deterministic given d: no randomness, index-order tie-breaks.
//
// Errors: those of dissim.Validate (propagated unmasked).
//
// Complexity: O(n³) worst-case time, O(n²) space.
func NewDivisive(d *mat.SymDense) (*Hierarchy, error) {
	if err := dissim.Validate(d); err != nil {
		return nil, err
	}

	var (
		n    = d.SymmetricDim()
		all  = make([]int, n)
		i    int
		live = make([]*divNode, 0, n) // clusters still divisible (size ≥ 2)
	)
	for i = 0; i < n; i++ {
		all[i] = i
	}
	root := &divNode{members: all, splitOrd: -1}
	live = append(live, root)

	var (
		splits = make([]*divNode, 0, n-1) // parents, in split order
		ord    int
	)
	for ord = 0; ord < n-1; ord++ {
		// Pick the widest divisible cluster; ties go to the earliest
		// cluster in the live list (children inherit their parent's
		// position), which is a fixed order for a fixed d.
		var (
			pick     = -1
			pickDiam float64
		)
		for i = range live {
			diam := diameter(d, live[i].members)
			if pick < 0 || diam > pickDiam {
				pick = i
				pickDiam = diam
			}
		}

		parent := live[pick]
		splinter, remainder := splitCluster(d, parent.members)
		parent.height = pickDiam
		parent.splitOrd = ord
		parent.left = &divNode{members: splinter, splitOrd: -1}
		parent.right = &divNode{members: remainder, splitOrd: -1}
		splits = append(splits, parent)

		// Replace the parent with its divisible children, keeping the
		// live list ordered by each cluster's smallest member.
		next := make([]*divNode, 0, len(live)+1)
		next = append(next, live[:pick]...)
		if len(parent.left.members) > 1 {
			next = append(next, parent.left)
		}
		if len(parent.right.members) > 1 {
			next = append(next, parent.right)
		}
		next = append(next, live[pick+1:]...)
		live = next
	}

	// Reverse splits into merges: split ord s becomes merge t = n−2−s.
	var merges = make([]Merge, n-1)
	for _, parent := range splits {
		t := n - 2 - parent.splitOrd
		a := nodeID(parent.left, n)
		b := nodeID(parent.right, n)
		merges[t] = Merge{
			A:      minInt(a, b),
			B:      maxInt(a, b),
			Height: parent.height,
			Size:   len(parent.members),
		}
	}

	return &Hierarchy{n: n, merges: merges}, nil
}

// nodeID maps a divisive tree node to dendrogram numbering: leaves keep
// their observation index; an internal node split at ord s is n+(n−2−s).
func nodeID(c *divNode, n int) int {
	if len(c.members) == 1 {
		return c.members[0]
	}

	return n + (n - 2 - c.splitOrd)
}

// diameter returns the largest pairwise dissimilarity inside members.
func diameter(d *mat.SymDense, members []int) float64 {
	var (
		diam float64
		i, j int
	)
	for i = 0; i < len(members); i++ {
		for j = i + 1; j < len(members); j++ {
			if v := d.At(members[i], members[j]); v > diam {
				diam = v
			}
		}
	}

	return diam
}

// splitCluster divides members into (splinter, remainder) per DIANA.
// Both returned slices are ascending; members must hold ≥ 2 indices.
func splitCluster(d *mat.SymDense, members []int) (splinter, remainder []int) {
	// Seed: the member with maximal average dissimilarity to the others.
	var (
		seed    = -1
		seedAvg float64
		i       int
	)
	for i = range members {
		avg := avgDissim(d, members[i], members, i)
		if seed < 0 || avg > seedAvg {
			seed = i
			seedAvg = avg
		}
	}

	var inSplinter = make([]bool, len(members))
	inSplinter[seed] = true

	// Migration: move the member whose pull toward the splinter is
	// strongest, while any positive pull remains and the remainder keeps
	// at least one object.
	var (
		splinterN = 1
		remainN   = len(members) - 1
	)
	for remainN > 1 {
		var (
			move     = -1
			moveDiff float64
		)
		for i = range members {
			if inSplinter[i] {
				continue
			}
			toRemain := avgGroupDissim(d, members, i, inSplinter, false)
			toSplinter := avgGroupDissim(d, members, i, inSplinter, true)
			diff := toRemain - toSplinter
			if diff > 0 && (move < 0 || diff > moveDiff) {
				move = i
				moveDiff = diff
			}
		}
		if move < 0 {
			break
		}
		inSplinter[move] = true
		splinterN++
		remainN--
	}

	splinter = make([]int, 0, splinterN)
	remainder = make([]int, 0, remainN)
	for i = range members {
		if inSplinter[i] {
			splinter = append(splinter, members[i])
		} else {
			remainder = append(remainder, members[i])
		}
	}

	return splinter, remainder
}

// avgDissim returns the mean dissimilarity from members[self] to every
// other member.
func avgDissim(d *mat.SymDense, obs int, members []int, self int) float64 {
	if len(members) < 2 {
		return 0
	}
	var sum float64
	for i := range members {
		if i == self {
			continue
		}
		sum += d.At(obs, members[i])
	}

	return sum / float64(len(members)-1)
}

// avgGroupDissim returns the mean dissimilarity from members[self] to the
// side of the split selected by toSplinter, excluding self.
func avgGroupDissim(d *mat.SymDense, members []int, self int, inSplinter []bool, toSplinter bool) float64 {
	var (
		sum   float64
		count int
	)
	for i := range members {
		if i == self || inSplinter[i] != toSplinter {
			continue
		}
		sum += d.At(members[self], members[i])
		count++
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}
