// Package relu: the Map lifecycle (fit / transform) and its immutable
// fitted state.

package relu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/relumap/bandwidth"
	"github.com/katalvlaran/relumap/featmap"
)

// Operation tags for unified error wrapping.
const (
	opFit       = "relu: fit"
	opTransform = "relu: transform"
)

// Map is a random ReLU feature map. Construct with New, configure with
// functional options, then Fit once and Transform any number of times.
//
// Concurrency: after a successful Fit, concurrent Transform calls are safe
// (fitted state is immutable and read-only). Fit must not run concurrently
// with Fit or Transform on the same Map.
type Map struct {
	opts   options
	state  featmap.State
	fitted *Fitted
}

var _ featmap.FeatureMap = (*Map)(nil)

// New returns an unfitted Map with the given options applied over the
// documented defaults.
func New(opts ...Option) *Map {
	o := gatherOptions(opts)
	return &Map{
		opts:  o,
		state: featmap.NewState(o.intercept),
	}
}

// Fitted is the immutable result of one successful fit: the bandwidth, the
// unit-column weight matrix and the input dimensionality it validates
// against. A Fitted value is never mutated after creation.
type Fitted struct {
	gamma       float64
	weights     *mat.Dense // (inDim+1) × nComponents, unit-norm columns
	inDim       int
	nComponents int
	state       featmap.State // always fitted; owns the dimension contract
}

// Gamma returns the bandwidth selected at fit time.
func (f *Fitted) Gamma() float64 { return f.gamma }

// InDim returns the input dimensionality recorded at fit time.
func (f *Fitted) InDim() int { return f.inDim }

// NComponents returns the embedding width.
func (f *Fitted) NComponents() int { return f.nComponents }

// Weights returns a defensive copy of the (inDim+1)×nComponents projection
// matrix; the fitted state itself stays immutable.
func (f *Fitted) Weights() *mat.Dense {
	return mat.DenseCopyOf(f.weights)
}

// Transform maps X (n×inDim) into the embedded space:
//
//	Step 1: prepend the constant bias coordinate 1/gamma to every sample.
//	Step 2: one dense multiply against the weight matrix.
//	Step 3: elementwise ReLU, clamping negatives to zero.
//
// The output is a freshly allocated n×nComponents matrix with all entries
// >= 0; X is never modified. Pure function: safe to call concurrently.
//
// Errors: featmap.ErrDimensionMismatch (wrapped) when X has the wrong
// feature count; featmap input sentinels for nil/empty/non-finite X.
//
// Complexity: O(n·inDim·nComponents), dominated by the multiply.
func (f *Fitted) Transform(X mat.Matrix) (*mat.Dense, error) {
	n, d, err := featmap.ValidateMatrix(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	if err := f.state.Require(d); err != nil {
		return nil, fmt.Errorf("%s: got %d features, fitted with %d: %w",
			opTransform, d, f.inDim, err)
	}

	// Stage 1: bias-augmented copy of X. The leading column carries 1/gamma
	// so the first weight row acts as a scaled bias term.
	bias := 1 / f.gamma
	augmented := mat.NewDense(n, d+1, nil)
	for i := 0; i < n; i++ {
		augmented.Set(i, 0, bias)
		for j := 0; j < d; j++ {
			augmented.Set(i, j+1, X.At(i, j))
		}
	}

	// Stage 2: raw projections.
	out := mat.NewDense(n, f.nComponents, nil)
	out.Mul(augmented, f.weights)

	// Stage 3: ReLU in place on the freshly allocated result.
	rm := out.RawMatrix()
	for i := range rm.Data {
		if rm.Data[i] < 0 {
			rm.Data[i] = 0
		}
	}
	return out, nil
}

// Fit learns gamma from X (and labels, when the class-median heuristic is
// configured) and draws the random projection weights.
//
// The candidate fitted state is assembled completely before being swapped
// in: a failing Fit leaves any previously fitted state untouched and
// usable. Passing y is required only for selectors with NeedsLabels();
// otherwise it is ignored.
//
// Errors: featmap input sentinels and every bandwidth sentinel, wrapped
// with the fit operation tag.
func (m *Map) Fit(X mat.Matrix, y []int) error {
	n, d, err := featmap.ValidateMatrix(X)
	if err != nil {
		return fmt.Errorf("%s: %w", opFit, err)
	}

	gamma, err := bandwidth.Estimate(m.opts.selector, X, y)
	if err != nil {
		return fmt.Errorf("%s: %w", opFit, err)
	}

	weights := sampleWeights(d, m.opts.nComponents, rngFromSeed(m.opts.seed))

	// All computation succeeded; only now replace the fitted state.
	state := featmap.NewState(m.opts.intercept).MarkFitted(d, m.opts.nComponents)
	m.fitted = &Fitted{
		gamma:       gamma,
		weights:     weights,
		inDim:       d,
		nComponents: m.opts.nComponents,
		state:       state,
	}
	m.state = state

	m.opts.log.Debug().
		Float64("gamma", gamma).
		Stringer("selector", m.opts.selector).
		Int("n_samples", n).
		Int("n_features", d).
		Int("n_components", m.opts.nComponents).
		Msg("fitted random relu feature map")
	return nil
}

// Transform maps X through the fitted state. See Fitted.Transform for the
// procedure and guarantees.
//
// Errors: featmap.ErrNotFitted before a successful Fit, then everything
// Fitted.Transform can return.
func (m *Map) Transform(X mat.Matrix) (*mat.Dense, error) {
	if X == nil {
		return nil, fmt.Errorf("%s: %w", opTransform, featmap.ErrNilMatrix)
	}
	_, d := X.Dims()
	if err := m.state.Require(d); err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}
	return m.fitted.Transform(X)
}

// FitTransform runs Fit and then Transform on the same data.
func (m *Map) FitTransform(X mat.Matrix, y []int) (*mat.Dense, error) {
	if err := m.Fit(X, y); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// IsFitted reports whether a successful Fit has completed.
func (m *Map) IsFitted() bool { return m.state.IsFitted() }

// Len returns the mapped feature length (nComponents, plus one when
// fit_intercept is enabled). Zero while unfitted.
func (m *Map) Len() int { return m.state.Len() }

// Gamma returns the bandwidth selected at fit time, or
// featmap.ErrNotFitted before a successful Fit.
func (m *Map) Gamma() (float64, error) {
	if m.fitted == nil {
		return 0, featmap.ErrNotFitted
	}
	return m.fitted.gamma, nil
}

// Fitted returns the immutable fitted state, or nil while unfitted. The
// returned value stays valid even after a subsequent re-fit replaces it.
func (m *Map) Fitted() *Fitted { return m.fitted }
