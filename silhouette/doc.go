// Package silhouette scores how well a group assignment fits the
// dissimilarity structure it was derived from, and reduces that score to
// the single scalar — the Average Silhouette Width (ASW) — used to compare
// group counts and clustering methods throughout this module.
//
// For observation i in group g:
//
//	a(i) = mean dissimilarity from i to the other members of g
//	       (0 by convention when g is a singleton — neutral, not penalized)
//	b(i) = min over groups g' ≠ g of the mean dissimilarity from i to g'
//	s(i) = (b(i) − a(i)) / max(a(i), b(i)),  0 when the denominator is 0
//
// Every s(i) lies in [−1, 1]: near 1 means i sits deep inside its group,
// near 0 on a boundary, negative in the wrong group. ASW is the arithmetic
// mean of s over all observations.
//
// ASW is undefined for a single group and for all-singleton partitions —
// both degenerate cases are rejected with ErrGroupCount rather than
// returning a number that would silently win or lose a comparison.
//
// Compare runs several methods over several candidate group counts on one
// matrix and tabulates the ASW grid; the table is the data an external
// reporting collaborator renders.
package silhouette
