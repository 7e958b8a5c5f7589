// Package spectra - sentinel error set.
//
// All construction failures are reported through the sentinels below and
// matched with errors.Is. They mark malformed input: per the module's error
// policy they are unrecoverable for the whole run, unlike the per-trial
// failures the resample package records and counts.
package spectra

import "errors"

var (
	// ErrNilMatrix indicates that a nil values or sigmas matrix was passed to New.
	ErrNilMatrix = errors.New("spectra: nil values or sigmas matrix")

	// ErrShapeMismatch indicates that the values and sigmas matrices do not
	// share the same n×p shape, so row/column correspondence is undefined.
	ErrShapeMismatch = errors.New("spectra: values and sigmas dimensions differ")

	// ErrEmptyTable indicates a table with zero rows or zero columns.
	ErrEmptyTable = errors.New("spectra: table must have at least one row and one column")

	// ErrNonFiniteValue indicates a NaN or ±Inf measurement value.
	ErrNonFiniteValue = errors.New("spectra: non-finite measurement value")

	// ErrNonPositiveSigma indicates an uncertainty entry that is zero, negative,
	// NaN or ±Inf. A non-positive sigma makes the error-weighted distance
	// undefined (division by zero), so it is rejected at construction time.
	ErrNonPositiveSigma = errors.New("spectra: uncertainty must be strictly positive and finite")

	// ErrRowOutOfRange indicates a row index outside [0, N).
	ErrRowOutOfRange = errors.New("spectra: row index out of range")
)
