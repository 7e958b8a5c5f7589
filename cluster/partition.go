// Package cluster - unified dispatcher over the three partitioning methods.
package cluster

import (
	"gonum.org/v1/gonum/mat"
)

// Partition routes to the method selected in opts and returns the k-group
// assignment of the observations behind d.
//
// All three methods run strict validation first: d must satisfy
// dissim.Validate (finite, non-negative, zero diagonal — violations
// propagate unmasked) and k must lie in [2, n−1].
//
// The hierarchical methods build their full hierarchy and cut it at k;
// callers scanning several candidate counts over a fixed d and method
// should build the Hierarchy once via NewAgglomerative/NewDivisive and
// call Cut per k instead. The medoid method is re-run per k by nature.
//
// Errors: ErrGroupCount, ErrUnknownMethod, dissim.Validate errors.
//
// Complexity: per chosen method; see NewAgglomerative, NewDivisive, PAM.
func Partition(d *mat.SymDense, k int, opts Options) (Assignment, error) {
	switch opts.Method {
	case Agglomerative:
		h, err := NewAgglomerative(d)
		if err != nil {
			return Assignment{}, err
		}

		return h.Cut(k)
	case Divisive:
		h, err := NewDivisive(d)
		if err != nil {
			return Assignment{}, err
		}

		return h.Cut(k)
	case Medoid:
		return PAM(d, k)
	default:
		return Assignment{}, ErrUnknownMethod
	}
}

// Build constructs the full hierarchy for a hierarchical method, letting
// callers extract assignments for many group counts with Hierarchy.Cut.
// Medoid has no hierarchy and yields ErrUnknownMethod here.
func Build(d *mat.SymDense, method Method) (*Hierarchy, error) {
	switch method {
	case Agglomerative:
		return NewAgglomerative(d)
	case Divisive:
		return NewDivisive(d)
	default:
		return nil, ErrUnknownMethod
	}
}
