// SPDX-License-Identifier: MIT

// Package bandwidth selects the scale parameter (gamma) of Gaussian-like
// kernels from training data.
//
// It provides one entry point, Estimate, dispatching on a Selector — a
// tagged variant resolved once at configuration time instead of runtime
// type switching:
//
//   - Scale()        — gamma = 1 / (d · Var(X)), where Var(X) is the
//     population variance of all entries of X pooled together.
//     Complexity: O(n·d).
//   - ClassMedian()  — for each class, the median over its members of the
//     minimum Euclidean distance to any out-of-class point; sigma is the
//     mean of the per-class medians and gamma = 1/(2·sigma²). Requires
//     labels 0..k-1, every class with at least one out-of-class point.
//     Complexity: O(n²·d).
//   - Neighbor(k)    — sigma is the average distance to the k-th nearest
//     neighbour over all points (k-d tree backed; k clamps to n-2 when the
//     sample is smaller than the default 50-neighbour budget), and
//     gamma = 1/(2·sigma²). Complexity: O(n log n · d) expected.
//   - Explicit(v)    — a directly supplied positive gamma, no estimation.
//
// Selector also parses the symbolic configuration spellings "scale",
// "avg_ann" and "avg_ann_50" (plus positive float literals) and plugs into
// YAML configuration via yaml.Unmarshaler.
//
// Every successful path yields gamma > 0; degenerate data surfaces as the
// package sentinels in errors.go, never as NaN/Inf results.
//
// References:
//   - Yu, Kumar, Rowley, Chang: “Compact Nonlinear Maps and Circulant
//     Extensions” (the average-nearest-neighbour heuristic).
package bandwidth
