// Package spectra holds the measurement table consumed by every other
// package in this module: an n×p matrix of observed spectral-index values
// together with an n×p matrix of their standard deviations.
//
// Rows are stars (independent units), columns are indexes; row and column
// order is shared between the two matrices and fixed at construction.
//
// A Table is validated exactly once, in New:
//   - both matrices non-nil, non-empty and of identical shape,
//   - every value finite,
//   - every uncertainty strictly positive and finite (a zero uncertainty
//     would divide by zero in the dissimilarity engine downstream).
//
// After construction a Table is immutable: New deep-copies its inputs, and
// accessors hand out copies, never internal storage. Monte Carlo trials that
// need their own mutable view use Clone.
//
// Storage is gonum's *mat.Dense; use Values/Sigmas to interoperate with
// gonum routines and Value/Sigma for cheap per-cell reads.
package spectra
