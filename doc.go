// Package universe detects stellar sub-populations in spectral-index tables
// and quantifies how measurement noise shakes the detected groups.
//
// 🔭 What is universe?
//
//	A small numeric toolkit for unsupervised grouping of per-star index
//	measurements (CN, CH, ... band strengths) with per-measurement
//	uncertainties:
//	  • Error-weighted dissimilarity: pairwise distances where every index
//	    is weighted by the combined uncertainty of both stars
//	  • Three partitioning strategies over one distance matrix:
//	    divisive hierarchical, Ward agglomerative, PAM medoids
//	  • Silhouette validation: a common score to pick the group count and
//	    to compare strategies on equal footing
//	  • Monte Carlo stability: resample the table inside its error bars,
//	    re-cluster, and report the score distribution per group count
//
// ✨ Why choose universe?
//
//   - Deterministic by default – fixed seeds, documented tie-breaks, no
//     hidden global randomness
//   - Honest about noise – the deliverable is a score distribution, not a
//     single lucky point estimate
//   - Strict sentinels – malformed tables fail fast, unlucky resamples are
//     counted, never silently dropped
//
// Under the hood, everything is organized under five subpackages:
//
//	spectra/    — measurement table: values + uncertainties, validated once
//	dissim/     — error-weighted dissimilarity matrix (sum-of-squares or rooted)
//	cluster/    — DIANA, Ward and PAM adapters behind one Partition dispatcher
//	silhouette/ — per-star widths, average silhouette width, method comparison
//	resample/   — seeded Monte Carlo trials, failure accounting, box summaries
//
// A thin CLI lives in cmd/universe (CSV in, tables out); runnable scenarios
// live in examples/.
//
//	go get github.com/mattdell71/universe
package universe
