// SPDX-License-Identifier: MIT
// Package bandwidth: Estimate dispatcher plus the closed-form heuristics
// (fixed-scale and class-median). The neighbour heuristic lives in
// neighbors.go next to its index plumbing.
//
// Determinism:
//   - Fixed loop orders, no randomness anywhere in this file.
//   - Median uses mean-of-two-middles on even counts (the convention of the
//     statistics literature this heuristic was published with).

package bandwidth

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/relumap/featmap"
)

// Operation tag for unified error wrapping.
const opEstimate = "bandwidth: estimate"

// Estimate computes the kernel bandwidth gamma for X according to sel.
// labels is consulted only by the ClassMedian variant and may be nil
// otherwise.
//
// Contracts:
//   - X must be non-nil, non-empty, finite (featmap validation applies).
//   - Every successful return yields gamma > 0; degenerate data surfaces as
//     ErrZeroVariance / ErrNonPositiveGamma, never as NaN or Inf.
//
// Errors: featmap input sentinels (wrapped), ErrUnknownSelector,
// ErrMissingLabels, ErrIsolatedClass, ErrTooFewSamples, ErrZeroVariance,
// ErrNonPositiveGamma.
func Estimate(sel Selector, X mat.Matrix, labels []int) (float64, error) {
	n, d, err := featmap.ValidateMatrix(X)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opEstimate, err)
	}

	var gamma float64
	switch sel.kind {
	case kindExplicit:
		gamma = sel.value

	case kindScale:
		gamma, err = scaleGamma(X, d)

	case kindClassMedian:
		if labels == nil {
			return 0, fmt.Errorf("%s: %w", opEstimate, ErrMissingLabels)
		}
		var classes int
		if classes, err = featmap.ValidateLabels(labels, n); err != nil {
			return 0, fmt.Errorf("%s: %w", opEstimate, err)
		}
		gamma, err = classMedianGamma(X, labels, classes)

	case kindNeighbor:
		gamma, err = neighborGamma(X, sel.k)

	default:
		return 0, ErrUnknownSelector
	}
	if err != nil {
		return 0, err
	}

	// Contract: positive finite gamma on every successful path.
	if !(gamma > 0) || math.IsInf(gamma, 1) {
		return 0, ErrNonPositiveGamma
	}
	return gamma, nil
}

// scaleGamma implements the fixed-scale heuristic:
//
//	gamma = 1 / (d · Var(X))
//
// where Var(X) is the population variance of all entries of X treated as
// one pooled sample (not per-feature).
//
// Errors: ErrZeroVariance when the data is constant.
// Complexity: O(n·d) time, O(n·d) space for the non-Dense fallback.
func scaleGamma(X mat.Matrix, d int) (float64, error) {
	variance := stat.PopVariance(flatten(X), nil)
	if variance == 0 {
		return 0, ErrZeroVariance
	}
	return 1 / (float64(d) * variance), nil
}

// classMedianGamma implements the class-median nearest-class heuristic:
//
//	sigma_i = median{ min ||x - q|| over out-of-class q : x in class i }
//	sigma   = mean(sigma_0 .. sigma_{k-1})
//	gamma   = 1 / (2·sigma²)
//
// Precondition: every class 0..classes-1 has at least one member and at
// least one out-of-class point; violations return ErrIsolatedClass.
//
// Complexity: O(n²·d) time (all cross-class pairs), O(n·d) space for the
// row views.
func classMedianGamma(X mat.Matrix, labels []int, classes int) (float64, error) {
	rows := denseRows(X)

	medians := make([]float64, 0, classes)
	for class := 0; class < classes; class++ {
		inClass := make([][]float64, 0, len(rows))
		outClass := make([][]float64, 0, len(rows))
		for i, row := range rows {
			if labels[i] == class {
				inClass = append(inClass, row)
			} else {
				outClass = append(outClass, row)
			}
		}
		if len(inClass) == 0 || len(outClass) == 0 {
			return 0, fmt.Errorf("class %d: %w", class, ErrIsolatedClass)
		}

		// Per-member minimum distance to the out-of-class set.
		minDists := make([]float64, len(inClass))
		for i, p := range inClass {
			best := math.Inf(1)
			for _, q := range outClass {
				if dist := floats.Distance(p, q, 2); dist < best {
					best = dist
				}
			}
			minDists[i] = best
		}
		medians = append(medians, median(minDists))
	}

	sigma := stat.Mean(medians, nil)
	return 1 / (2 * sigma * sigma), nil
}

// median returns the median of xs, averaging the two middle order
// statistics on even counts. xs is not modified.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// flatten returns all entries of X as one row-major slice. Dense inputs
// with a packed stride share their backing buffer; anything else is copied.
func flatten(X mat.Matrix) []float64 {
	if dense, ok := X.(*mat.Dense); ok {
		rm := dense.RawMatrix()
		if rm.Stride == rm.Cols {
			return rm.Data[:rm.Rows*rm.Cols]
		}
	}
	n, d := X.Dims()
	out := make([]float64, 0, n*d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			out = append(out, X.At(i, j))
		}
	}
	return out
}

// denseRows materializes the rows of X as contiguous slices for repeated
// distance computations. Always copies: heuristics must never alias caller
// memory they might outlive.
func denseRows(X mat.Matrix) [][]float64 {
	n, d := X.Dims()
	rows := make([][]float64, n)
	backing := make([]float64, n*d)
	for i := 0; i < n; i++ {
		row := backing[i*d : (i+1)*d]
		for j := 0; j < d; j++ {
			row[j] = X.At(i, j)
		}
		rows[i] = row
	}
	return rows
}
