// Package silhouette - sentinel errors.
package silhouette

import "errors"

var (
	// ErrGroupCount indicates a degenerate assignment: fewer than 2
	// distinct groups, or as many groups as observations. The silhouette
	// is undefined there.
	ErrGroupCount = errors.New("silhouette: distinct group count must be in [2, n-1]")

	// ErrLabelMismatch indicates len(labels) differs from the matrix order.
	ErrLabelMismatch = errors.New("silhouette: label count does not match matrix order")

	// ErrBadLabel indicates a non-positive group label; labels are 1-based.
	ErrBadLabel = errors.New("silhouette: group labels must be positive")

	// ErrNoCandidates indicates an empty candidate group-count list.
	ErrNoCandidates = errors.New("silhouette: no candidate group counts")

	// ErrNoMethods indicates an empty clustering-method list.
	ErrNoMethods = errors.New("silhouette: no clustering methods")
)
