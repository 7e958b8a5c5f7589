// Package resample answers the question the rest of the module sets up:
// how stable is the detected group structure under the measurement noise
// the instrument actually reported?
//
// Run performs R independent Monte Carlo trials. Each trial
//
//  1. redraws every measurement from a Gaussian centered on the observed
//     value with the reported standard deviation (independent per feature;
//     the uncertainties themselves are not perturbed),
//  2. rebuilds the error-weighted dissimilarity matrix,
//  3. partitions it with one chosen clustering method for every candidate
//     group count,
//  4. scores each assignment by its Average Silhouette Width.
//
// The deliverable is not a point estimate but the empirical ASW
// distribution per candidate group count: its spread shows how much the
// "best k" conclusion depends on the noise realization, and its
// median/quartiles are what a downstream boxplot consumes (Summary).
//
// # Determinism and parallelism
//
// Trials are embarrassingly parallel: each owns its synthetic table,
// matrix and assignments, and results land in per-trial slots with no
// shared accumulator. The per-trial random stream is derived from the seed
// and the trial index alone (SplitMix64 mixing into a PCG source), so a
// fixed Seed yields bit-identical Results for any worker count.
//
// # Failure policy
//
// Input-shape problems abort immediately — they are malformed input, not
// noise. A failure inside one trial (an unlucky resample driving the
// dissimilarity matrix or a score degenerate) is recorded with its trial
// index and offending group count, excluded from the aggregate, and the
// batch continues; only when the failure rate exceeds a configurable
// threshold does Run refuse to return a thinned sample and reports
// ErrTooManyFailures instead. No failure is discarded without being
// counted.
package resample
