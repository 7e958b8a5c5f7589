// Package cluster - methods, options, assignments and sentinel errors.
package cluster

import "errors"

// Method selects the partitioning strategy used by Partition.
// The zero value is Agglomerative, the module-wide default.
type Method int

const (
	// Agglomerative is bottom-up hierarchical merging with Ward's
	// variance-minimizing linkage (Lance–Williams update).
	Agglomerative Method = iota

	// Divisive is top-down hierarchical splitting (DIANA).
	Divisive

	// Medoid is PAM: k representative objects, BUILD + SWAP, no hierarchy.
	Medoid
)

// String implements fmt.Stringer for table headers and error context.
func (m Method) String() string {
	switch m {
	case Agglomerative:
		return "agglomerative"
	case Divisive:
		return "divisive"
	case Medoid:
		return "medoid"
	default:
		return "unknown"
	}
}

// Options configures Partition.
//
// Fields:
//   - Method — one of Agglomerative (default), Divisive, Medoid.
type Options struct {
	Method Method
}

// DefaultOptions returns the canonical configuration (Agglomerative).
func DefaultOptions() Options {
	return Options{Method: Agglomerative}
}

// Assignment maps every observation to exactly one group.
//
// Labels[i] ∈ 1..K is the group of observation i. Labels are arbitrary and
// unordered: the same partition may carry different label numbering across
// methods or runs, so compare partitions by co-membership, not by label.
type Assignment struct {
	Labels []int
	K      int
}

// Sentinel errors. Matrix-policy violations (non-finite, negative,
// non-zero-diagonal entries) are reported through the dissim sentinels,
// propagated unmasked by every entry point in this package.
var (
	// ErrGroupCount indicates a requested group count outside [2, n−1].
	ErrGroupCount = errors.New("cluster: group count must be in [2, n-1]")

	// ErrUnknownMethod indicates an unrecognized Method value.
	ErrUnknownMethod = errors.New("cluster: unknown clustering method")

	// ErrNilHierarchy indicates Cut called on a nil Hierarchy.
	ErrNilHierarchy = errors.New("cluster: hierarchy is nil")
)
