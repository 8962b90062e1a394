// SPDX-License-Identifier: MIT
// Package featmap: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// feature-map lifecycle. Implementations MUST return these sentinels and
// tests MUST check them via errors.Is. No lifecycle code panics on
// user-triggered error conditions.

package featmap

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "featmap: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrNotFitted is returned when Transform (or any accessor that needs
	// fitted state) is invoked before a successful Fit.
	ErrNotFitted = errors.New("featmap: map is not fitted")

	// ErrDimensionMismatch indicates that the feature count of a Transform
	// input differs from the dimensionality recorded at fit time.
	ErrDimensionMismatch = errors.New("featmap: input dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix was passed where data is
	// required.
	ErrNilMatrix = errors.New("featmap: nil matrix")

	// ErrEmptyMatrix indicates a matrix with zero rows or zero columns.
	ErrEmptyMatrix = errors.New("featmap: empty matrix")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required
	// by the numeric policy.
	ErrNaNInf = errors.New("featmap: NaN or Inf encountered")

	// ErrLabelMismatch indicates that the label slice length differs from
	// the sample count of the accompanying matrix.
	ErrLabelMismatch = errors.New("featmap: label/sample count mismatch")

	// ErrNegativeLabel indicates a class label below zero; labels are
	// contiguous nonnegative integers 0..k-1 by contract.
	ErrNegativeLabel = errors.New("featmap: negative class label")
)
