// SPDX-License-Identifier: MIT

package featmap

// State is the immutable fitted-state value of a feature map.
//
// A State is never mutated: MarkFitted returns a new value, so a failed fit
// can simply discard the candidate and keep the previous State intact. The
// zero value (plus NewState for the intercept flag) is the canonical
// "unfitted" state.
type State struct {
	fitted    bool
	inDim     int  // input dimensionality recorded at fit time
	nFeatures int  // mapped feature count, intercept excluded
	intercept bool // whether Len reports one extra intercept slot
}

// NewState returns an unfitted State with the given intercept policy.
func NewState(intercept bool) State {
	return State{intercept: intercept}
}

// MarkFitted returns a fitted copy of s recording the input dimensionality
// and the mapped feature count. The receiver is unchanged.
func (s State) MarkFitted(inDim, nFeatures int) State {
	s.fitted = true
	s.inDim = inDim
	s.nFeatures = nFeatures
	return s
}

// IsFitted reports whether the state belongs to a completed fit.
func (s State) IsFitted() bool { return s.fitted }

// InDim returns the input dimensionality recorded at fit time; zero while
// unfitted.
func (s State) InDim() int { return s.inDim }

// Intercept reports whether the mapped feature length includes an
// intercept slot.
func (s State) Intercept() bool { return s.intercept }

// Len returns the mapped feature length: nFeatures plus one when the
// intercept is enabled. Zero while unfitted.
func (s State) Len() int {
	if !s.fitted {
		return 0
	}
	if s.intercept {
		return s.nFeatures + 1
	}
	return s.nFeatures
}

// Require validates that the state is fitted and that d matches the input
// dimensionality recorded at fit time. Returns ErrNotFitted or
// ErrDimensionMismatch as plain sentinels; callers wrap with context.
//
// Complexity: O(1).
func (s State) Require(d int) error {
	if !s.fitted {
		return ErrNotFitted
	}
	if d != s.inDim {
		return ErrDimensionMismatch
	}
	return nil
}
