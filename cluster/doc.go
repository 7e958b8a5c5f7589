// Package cluster partitions n observations into k groups given only their
// n×n dissimilarity matrix. Three strategies share one capability —
// "partition(D, k) → assignment" — and are routed through a single
// dispatcher, Partition, so callers can swap methods without touching the
// rest of the pipeline.
//
// # Methods
//
//   - Agglomerative (default): bottom-up merging under Ward's
//     variance-minimizing criterion, expressed through the Lance–Williams
//     update on the dissimilarity matrix. Deterministic given D.
//   - Divisive: top-down DIANA splitting; at every step the cluster with the
//     largest diameter is divided by growing a splinter group around its
//     most estranged member. Deterministic given D.
//   - Medoid: PAM with the classic BUILD initialization followed by greedy
//     SWAP until no improving swap exists. Fully deterministic — BUILD is
//     the fixed, documented initialization rule; no random restarts.
//
// Both hierarchical methods build a full Hierarchy once; Cut(k) then
// extracts any valid group count by severing the k−1 highest merges, so
// scanning candidate counts costs one linkage run, not one per k. The
// medoid method has no hierarchy to cut and is re-run per k.
//
// # Contracts
//
//   - D must pass dissim.Validate (finite, non-negative, zero diagonal);
//     violations propagate unmasked.
//   - 2 ≤ k ≤ n−1; anything else is ErrGroupCount.
//   - Group labels are 1..k, assigned in order of first appearance (or by
//     ascending medoid index for PAM). Labels carry no meaning across runs
//     or across methods.
//
// Complexity: Agglomerative/Divisive O(n³) worst case, PAM O(n²·k²) per
// SWAP pass — all comfortable at this module's scale (tens to low hundreds
// of observations).
package cluster
