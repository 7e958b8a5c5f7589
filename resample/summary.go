// Package resample - five-number summaries of the ASW distributions.
package resample

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is the five-number summary of one candidate group count's ASW
// sample — exactly the data an external boxplot renderer consumes.
type Summary struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Count  int // successful trials behind the numbers
}

// Summary reduces each per-k ASW sample to its five-number summary,
// keyed by candidate group count. Quartiles use the empirical quantile
// definition. A group count with no surviving trials yields a zero-valued
// Summary with Count 0.
//
// Complexity: O(K · R log R).
func (r *Result) Summary() map[int]Summary {
	var out = make(map[int]Summary, len(r.Ks))
	for _, k := range r.Ks {
		out[k] = summarize(r.ByK[k])
	}

	return out
}

// summarize computes the five-number summary of one sample.
func summarize(sample []float64) Summary {
	if len(sample) == 0 {
		return Summary{}
	}

	var sorted = append([]float64(nil), sample...)
	sort.Float64s(sorted)

	return Summary{
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Count:  len(sorted),
	}
}

// Median returns the median ASW for candidate group count k. The second
// return is false when no trial survived for k, which keeps an empty
// sample apart from a genuine zero median. Convenience for callers
// ranking candidates.
func (r *Result) Median(k int) (float64, bool) {
	sample := r.ByK[k]
	if len(sample) == 0 {
		return 0, false
	}

	var sorted = append([]float64(nil), sample...)
	sort.Float64s(sorted)

	return stat.Quantile(0.5, stat.Empirical, sorted, nil), true
}
