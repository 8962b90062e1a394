// SPDX-License-Identifier: MIT

package featmap

import "gonum.org/v1/gonum/mat"

// FeatureMap is the lifecycle contract of a randomized feature mapping.
//
// Contracts:
//   - Fit learns the mapping hyperparameters from X (and, for label-aware
//     bandwidth heuristics, y; pass nil otherwise). A re-entrant Fit
//     restarts the lifecycle: it either fully succeeds and replaces prior
//     fitted state, or fails and leaves prior state untouched.
//   - Transform is a pure function of its input and the fitted state; it
//     must allocate its output freshly per call and never mutate X.
//   - Concurrent Transform calls against one fitted map are safe; Fit is
//     not safe to run concurrently with either Fit or Transform.
type FeatureMap interface {
	// Fit learns gamma and the random weights from X. y may be nil unless
	// the configured bandwidth heuristic requires class labels.
	Fit(X mat.Matrix, y []int) error

	// Transform maps X into the embedded feature space.
	Transform(X mat.Matrix) (*mat.Dense, error)

	// FitTransform runs Fit and then Transform on the same data.
	FitTransform(X mat.Matrix, y []int) (*mat.Dense, error)

	// IsFitted reports whether a successful Fit has completed.
	IsFitted() bool

	// Len returns the mapped feature length, intercept included.
	// Zero while unfitted.
	Len() int
}

// AppendIntercept returns a fresh n×(d+1) copy of X with a trailing
// constant-one column. Downstream linear models consume this column as the
// intercept term; the mapping heuristics themselves never look at it.
//
// Complexity: O(n·d) time and space.
func AppendIntercept(X mat.Matrix) *mat.Dense {
	n, d := X.Dims()
	out := mat.NewDense(n, d+1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			out.Set(i, j, X.At(i, j))
		}
		out.Set(i, d, 1)
	}
	return out
}
