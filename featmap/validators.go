// SPDX-License-Identifier: MIT
// Package featmap: canonical input validation.
//
// Purpose:
//   - Provide a single source of truth for the shape/finiteness checks every
//     mapping performs on entry to Fit and Transform.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - ValidateMatrix scans every entry once: O(n·d). Dense inputs take a
//     flat-buffer fast path; anything else falls back to At.

package featmap

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateMatrix checks that X is non-nil, non-empty and finite, and
// returns its dimensions.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrNaNInf.
func ValidateMatrix(X mat.Matrix) (n, d int, err error) {
	if X == nil {
		return 0, 0, ErrNilMatrix
	}
	n, d = X.Dims()
	if n == 0 || d == 0 {
		return 0, 0, ErrEmptyMatrix
	}

	// Dense fast path: scan the row-major buffer directly.
	if dense, ok := X.(*mat.Dense); ok {
		rm := dense.RawMatrix()
		for i := 0; i < rm.Rows; i++ {
			row := rm.Data[i*rm.Stride : i*rm.Stride+rm.Cols]
			for _, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return 0, 0, ErrNaNInf
				}
			}
		}
		return n, d, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			if v := X.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, ErrNaNInf
			}
		}
	}
	return n, d, nil
}

// ValidateLabels checks that y holds exactly n nonnegative class labels and
// returns the class count k = max(y)+1. Labels are assumed contiguous
// 0..k-1 by contract; gaps are the caller's precondition violation and are
// surfaced by the heuristics that iterate classes.
//
// Errors: ErrLabelMismatch, ErrNegativeLabel.
func ValidateLabels(y []int, n int) (classes int, err error) {
	if len(y) != n {
		return 0, ErrLabelMismatch
	}
	maxLabel := 0
	for _, label := range y {
		if label < 0 {
			return 0, ErrNegativeLabel
		}
		if label > maxLabel {
			maxLabel = label
		}
	}
	return maxLabel + 1, nil
}
