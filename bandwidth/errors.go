// SPDX-License-Identifier: MIT
// Package bandwidth: sentinel error set (unified, consistent).
// Heuristics MUST return these sentinels and tests MUST check them via
// errors.Is. Constructors panic on nonsensical parameters (programmer
// error); data-dependent failures always surface as errors.

package bandwidth

import "errors"

// ERROR PRIORITY (documented, enforced in tests):
// input shape/finiteness (featmap sentinels) -> selector recognition ->
// heuristic preconditions -> degenerate results.

var (
	// ErrUnknownSelector is returned for an unrecognized symbolic gamma
	// choice, or when a zero-value Selector reaches Estimate.
	ErrUnknownSelector = errors.New("bandwidth: unknown gamma selector")

	// ErrZeroVariance is returned by the fixed-scale heuristic when every
	// entry of X is identical (pooled variance is zero).
	ErrZeroVariance = errors.New("bandwidth: zero variance in data")

	// ErrNonPositiveGamma signals that a heuristic degenerated to a
	// non-positive or non-finite gamma (e.g. sigma collapsed to zero).
	ErrNonPositiveGamma = errors.New("bandwidth: non-positive gamma")

	// ErrMissingLabels is returned when the class-median heuristic is
	// requested without class labels.
	ErrMissingLabels = errors.New("bandwidth: class labels required")

	// ErrIsolatedClass is returned when a class has no members or no
	// out-of-class comparison points; the class-median heuristic requires
	// every class 0..k-1 to be populated on both sides.
	ErrIsolatedClass = errors.New("bandwidth: class without out-of-class points")

	// ErrTooFewSamples is returned when the sample count cannot support the
	// requested neighbour query (fewer than 3 samples, or k+1 neighbours
	// exceeding the sample count).
	ErrTooFewSamples = errors.New("bandwidth: too few samples for neighbour heuristic")
)
