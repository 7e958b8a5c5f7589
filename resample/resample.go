// Package resample - the Monte Carlo driver over the full
// dissimilarity → clustering → validation pipeline.
package resample

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/dissim"
	"github.com/mattdell71/universe/silhouette"
	"github.com/mattdell71/universe/spectra"
)

// trialOutcome is the private per-trial slot: either one ASW per candidate
// group count (in opts.Ks order) or a recorded failure.
type trialOutcome struct {
	asw []float64
	err *TrialError
}

// Run performs opts.Trials independent noise-resampling trials over t and
// aggregates the ASW distribution per candidate group count.
//
// Each trial redraws X'[i,j] ~ N(X[i,j], S[i,j]²) — independent per
// feature, uncertainties not perturbed — rebuilds the dissimilarity
// matrix, partitions it with opts.Method for every k in opts.Ks, and
// scores each assignment with the Average Silhouette Width.
//
// Configuration errors (nil table, bad trial count, k outside [2, n−1],
// bad failure rate, unknown method) abort immediately. Failures inside a
// trial are recorded in Result.Failures and excluded from ByK; if their
// rate exceeds opts.MaxFailureRate, Run returns ErrTooManyFailures
// (wrapped with the tally) and no Result.
//
// Fixing opts.Seed makes the output bit-identical across runs and worker
// counts.
//
// Complexity: O(Trials · (n²·p + n³)) worst case, spread across Workers.
func Run(t *spectra.Table, opts Options) (*Result, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if opts.Trials < 1 {
		return nil, ErrBadTrials
	}
	if len(opts.Ks) == 0 {
		return nil, ErrNoCandidates
	}
	var n = t.N()
	for _, k := range opts.Ks {
		if k < 2 || k > n-1 {
			return nil, ErrGroupCount
		}
	}
	if opts.MaxFailureRate < 0 || opts.MaxFailureRate > 1 {
		return nil, ErrBadFailureRate
	}
	switch opts.Method {
	case cluster.Agglomerative, cluster.Divisive, cluster.Medoid:
	default:
		return nil, cluster.ErrUnknownMethod
	}

	var workers = opts.Workers
	if workers < 1 {
		workers = DefaultOptions().Workers
	}
	if workers > opts.Trials {
		workers = opts.Trials
	}

	// Each trial writes only its own slot; no locks, no shared state.
	var (
		outcomes = make([]trialOutcome, opts.Trials)
		trials   = make(chan int)
		wg       sync.WaitGroup
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for trial := range trials {
				outcomes[trial] = runTrial(t, opts, trial)
			}
		}()
	}
	for trial := 0; trial < opts.Trials; trial++ {
		trials <- trial
	}
	close(trials)
	wg.Wait()

	// Aggregate in trial order so the output is scheduling-independent.
	var result = &Result{
		Ks:     append([]int(nil), opts.Ks...),
		ByK:    make(map[int][]float64, len(opts.Ks)),
		Trials: opts.Trials,
	}
	for _, k := range opts.Ks {
		result.ByK[k] = make([]float64, 0, opts.Trials)
	}
	for trial := range outcomes {
		if outcomes[trial].err != nil {
			result.Failures = append(result.Failures, *outcomes[trial].err)

			continue
		}
		for ki, k := range opts.Ks {
			result.ByK[k] = append(result.ByK[k], outcomes[trial].asw[ki])
		}
	}

	if result.FailureRate() > opts.MaxFailureRate {
		return nil, fmt.Errorf("resample: %d of %d trials failed: %w",
			result.FailureCount(), result.Trials, ErrTooManyFailures)
	}

	return result, nil
}

// runTrial executes one complete pipeline pass: perturb, rebuild the
// dissimilarity matrix, partition per candidate k, score.
func runTrial(t *spectra.Table, opts Options, trial int) trialOutcome {
	var src = trialSource(opts.Seed, trial)

	synthetic, err := perturb(t, src)
	if err != nil {
		return trialOutcome{err: &TrialError{Trial: trial, Err: err}}
	}

	// A degenerate resample (near-duplicate rows, overflow) surfaces here
	// as a dissim sentinel: fatal for this trial, not for the batch.
	d, err := dissim.Matrix(synthetic, dissim.Options{Transform: opts.Transform})
	if err != nil {
		return trialOutcome{err: &TrialError{Trial: trial, Err: err}}
	}

	// One linkage run serves every candidate k for hierarchical methods.
	var h *cluster.Hierarchy
	if opts.Method == cluster.Agglomerative || opts.Method == cluster.Divisive {
		if h, err = cluster.Build(d, opts.Method); err != nil {
			return trialOutcome{err: &TrialError{Trial: trial, Err: err}}
		}
	}

	var asw = make([]float64, len(opts.Ks))
	for ki, k := range opts.Ks {
		var a cluster.Assignment
		if h != nil {
			a, err = h.Cut(k)
		} else {
			a, err = cluster.PAM(d, k)
		}
		if err != nil {
			return trialOutcome{err: &TrialError{Trial: trial, K: k, Err: err}}
		}

		mean, err := silhouette.Mean(d, a.Labels)
		if err != nil {
			return trialOutcome{err: &TrialError{Trial: trial, K: k, Err: err}}
		}
		asw[ki] = mean
	}

	return trialOutcome{asw: asw}
}

// perturb draws one synthetic table: every value redrawn from a Gaussian
// centered on the observation with the reported standard deviation. The
// sigma matrix is passed through untouched — the synthetic star keeps the
// real star's measurement precision.
func perturb(t *spectra.Table, src *rand.Rand) (*spectra.Table, error) {
	var (
		n      = t.N()
		p      = t.P()
		values = mat.NewDense(n, p, nil)
		i, j   int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			normal := distuv.Normal{
				Mu:    t.Value(i, j),
				Sigma: t.Sigma(i, j),
				Src:   src,
			}
			values.Set(i, j, normal.Rand())
		}
	}

	return spectra.New(values, t.Sigmas())
}
