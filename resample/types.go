// Package resample - options, result types and sentinel errors.
package resample

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/dissim"
)

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultTrials is the canonical Monte Carlo trial count.
	DefaultTrials = 50

	// DefaultSeed is the fixed "zero" seed used when callers pass Seed==0.
	// The value is arbitrary but stable to keep reproducible defaults.
	DefaultSeed int64 = 1

	// DefaultMaxFailureRate is the tolerated fraction of failed trials
	// before the whole run is refused.
	DefaultMaxFailureRate = 0.5
)

// Options configures Run.
//
// Fields:
//   - Trials         — number of independent Monte Carlo trials (≥1).
//   - Ks             — candidate group counts, each in [2, n−1]; order is
//     preserved in every TrialResult and in Result.Ks.
//   - Method         — clustering strategy applied inside every trial.
//   - Transform      — dissimilarity transform (raw sum or rooted).
//   - Workers        — concurrent trial executors; ≤0 means NumCPU.
//     The result is bit-identical for any worker count.
//   - Seed           — RNG seed; 0 means DefaultSeed. Fixing it makes the
//     whole run reproducible.
//   - MaxFailureRate — fraction of failed trials in [0,1] above which Run
//     returns ErrTooManyFailures instead of a thinned sample.
type Options struct {
	Trials         int
	Ks             []int
	Method         cluster.Method
	Transform      dissim.Transform
	Workers        int
	Seed           int64
	MaxFailureRate float64
}

// DefaultOptions returns the canonical configuration: 50 trials over
// k ∈ {2,3,4}, agglomerative clustering on the raw error-weighted sum,
// one worker per CPU, deterministic default seed.
func DefaultOptions() Options {
	return Options{
		Trials:         DefaultTrials,
		Ks:             []int{2, 3, 4},
		Method:         cluster.Agglomerative,
		Transform:      dissim.SumOfSquares,
		Workers:        runtime.NumCPU(),
		Seed:           DefaultSeed,
		MaxFailureRate: DefaultMaxFailureRate,
	}
}

// Sentinel errors. Matched with errors.Is; ErrTooManyFailures is returned
// wrapped with the failure tally.
var (
	// ErrNilTable indicates a nil *spectra.Table passed to Run.
	ErrNilTable = errors.New("resample: table is nil")

	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("resample: trial count must be positive")

	// ErrNoCandidates indicates an empty candidate group-count list.
	ErrNoCandidates = errors.New("resample: no candidate group counts")

	// ErrGroupCount indicates a candidate group count outside [2, n−1].
	// This is a configuration error, checked before any trial runs.
	ErrGroupCount = errors.New("resample: candidate group count must be in [2, n-1]")

	// ErrBadFailureRate indicates MaxFailureRate outside [0, 1].
	ErrBadFailureRate = errors.New("resample: MaxFailureRate must be in [0, 1]")

	// ErrTooManyFailures indicates that more than MaxFailureRate of the
	// trials failed; the surviving sample is too thin to trust.
	ErrTooManyFailures = errors.New("resample: too many failed trials")
)

// TrialError records one failed trial: which trial, at which candidate
// group count the pipeline broke (0 when the failure happened before any
// group count was in play, e.g. while rebuilding the dissimilarity
// matrix), and the underlying cause.
type TrialError struct {
	Trial int
	K     int
	Err   error
}

// Error implements the error interface with full context for logs.
func (e TrialError) Error() string {
	if e.K == 0 {
		return fmt.Sprintf("resample: trial %d: %v", e.Trial, e.Err)
	}

	return fmt.Sprintf("resample: trial %d (k=%d): %v", e.Trial, e.K, e.Err)
}

// Unwrap exposes the cause to errors.Is/As.
func (e TrialError) Unwrap() error { return e.Err }

// Result is the output of Run: the empirical ASW distribution per
// candidate group count, plus the full failure record.
//
// ByK[k] holds one ASW value per successful trial, in ascending trial
// order — the same trial contributes the i-th element of every ByK slice.
type Result struct {
	Ks       []int
	ByK      map[int][]float64
	Failures []TrialError
	Trials   int // trials attempted, successful or not
}

// FailureCount returns the number of failed trials.
func (r *Result) FailureCount() int { return len(r.Failures) }

// FailureRate returns the failed fraction of all attempted trials.
func (r *Result) FailureRate() float64 {
	if r.Trials == 0 {
		return 0
	}

	return float64(len(r.Failures)) / float64(r.Trials)
}
