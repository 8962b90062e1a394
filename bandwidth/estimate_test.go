package bandwidth_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/relumap/bandwidth"
	"github.com/katalvlaran/relumap/featmap"
)

// randomMatrix builds a deterministic n×d matrix of uniform draws; tests
// must never depend on time-based randomness.
func randomMatrix(n, d int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(n, d, data)
}

// bruteForceNeighborGamma recomputes the neighbour heuristic by exhaustive
// pairwise distances: for each point, the k-th smallest distance to another
// point (self excluded), averaged into sigma, then 1/(2·sigma²).
func bruteForceNeighborGamma(X *mat.Dense, k int) float64 {
	n, d := X.Dims()
	total := 0.0
	for i := 0; i < n; i++ {
		dists := make([]float64, n)
		for j := 0; j < n; j++ {
			sumSq := 0.0
			for c := 0; c < d; c++ {
				diff := X.At(i, c) - X.At(j, c)
				sumSq += diff * diff
			}
			dists[j] = math.Sqrt(sumSq)
		}
		sort.Float64s(dists)
		// dists[0] is the self-match at zero; dists[k] is the k-th neighbour.
		total += dists[k]
	}
	sigma := total / float64(n)
	return 1 / (2 * sigma * sigma)
}

// TestEstimate_Scale checks the closed form gamma = 1/(d·Var(X)) on a
// hand-computed pooled population variance.
func TestEstimate_Scale(t *testing.T) {
	// Entries {0,1,2,3}: mean 1.5, population variance 1.25, d = 2.
	X := mat.NewDense(2, 2, []float64{0, 1, 2, 3})

	gamma, err := bandwidth.Estimate(bandwidth.Scale(), X, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0/(2*1.25), gamma, 1e-15)
}

// TestEstimate_Scale_Reproducible: the fixed-scale heuristic is a pure
// function of X.
func TestEstimate_Scale_Reproducible(t *testing.T) {
	X := randomMatrix(40, 5, 7)

	first, err := bandwidth.Estimate(bandwidth.Scale(), X, nil)
	require.NoError(t, err)
	second, err := bandwidth.Estimate(bandwidth.Scale(), X, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestEstimate_Scale_ZeroVariance: constant data cannot define a scale.
func TestEstimate_Scale_ZeroVariance(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{5, 5, 5, 5, 5, 5})

	_, err := bandwidth.Estimate(bandwidth.Scale(), X, nil)
	require.ErrorIs(t, err, bandwidth.ErrZeroVariance)
}

// TestEstimate_Explicit passes a supplied gamma through untouched.
func TestEstimate_Explicit(t *testing.T) {
	X := randomMatrix(10, 3, 1)

	gamma, err := bandwidth.Estimate(bandwidth.Explicit(0.75), X, nil)
	require.NoError(t, err)
	require.Equal(t, 0.75, gamma)
}

// TestEstimate_ZeroSelector: the zero-value Selector is invalid by design.
func TestEstimate_ZeroSelector(t *testing.T) {
	X := randomMatrix(10, 3, 1)

	_, err := bandwidth.Estimate(bandwidth.Selector{}, X, nil)
	require.ErrorIs(t, err, bandwidth.ErrUnknownSelector)
}

// TestEstimate_InputValidation: featmap input sentinels pass through
// wrapped and still match via errors.Is.
func TestEstimate_InputValidation(t *testing.T) {
	_, err := bandwidth.Estimate(bandwidth.Scale(), nil, nil)
	require.ErrorIs(t, err, featmap.ErrNilMatrix)

	withNaN := mat.NewDense(2, 2, []float64{1, math.NaN(), 3, 4})
	_, err = bandwidth.Estimate(bandwidth.Scale(), withNaN, nil)
	require.ErrorIs(t, err, featmap.ErrNaNInf)
}

// TestEstimate_ClassMedian checks the two-class heuristic against a fully
// hand-computed 1-D instance.
func TestEstimate_ClassMedian(t *testing.T) {
	// class 0 at {0, 0.1}, class 1 at {1.0, 1.2}.
	// Per-class medians of minimum cross-class distances:
	//   class 0: median{1.0, 0.9}  = 0.95
	//   class 1: median{0.9, 1.1}  = 1.0
	// sigma = 0.975, gamma = 1/(2·sigma²).
	X := mat.NewDense(4, 1, []float64{0, 0.1, 1.0, 1.2})
	y := []int{0, 0, 1, 1}

	gamma, err := bandwidth.Estimate(bandwidth.ClassMedian(), X, y)
	require.NoError(t, err)
	require.InDelta(t, 1.0/(2*0.975*0.975), gamma, 1e-12)
	require.Greater(t, gamma, 0.0)

	// Reproducible across identical invocations.
	again, err := bandwidth.Estimate(bandwidth.ClassMedian(), X, y)
	require.NoError(t, err)
	require.Equal(t, gamma, again)
}

// TestEstimate_ClassMedian_MissingLabels: the variant demands labels.
func TestEstimate_ClassMedian_MissingLabels(t *testing.T) {
	X := randomMatrix(10, 2, 3)

	_, err := bandwidth.Estimate(bandwidth.ClassMedian(), X, nil)
	require.ErrorIs(t, err, bandwidth.ErrMissingLabels)
	require.ErrorContains(t, err, "bandwidth: estimate")
}

// TestEstimate_ClassMedian_IsolatedClass: a single class has no
// out-of-class points, which is a precondition violation.
func TestEstimate_ClassMedian_IsolatedClass(t *testing.T) {
	X := randomMatrix(6, 2, 3)
	y := []int{0, 0, 0, 0, 0, 0}

	_, err := bandwidth.Estimate(bandwidth.ClassMedian(), X, y)
	require.ErrorIs(t, err, bandwidth.ErrIsolatedClass)
}

// TestEstimate_ClassMedian_LabelMismatch: label shape errors surface as
// the featmap sentinel.
func TestEstimate_ClassMedian_LabelMismatch(t *testing.T) {
	X := randomMatrix(6, 2, 3)

	_, err := bandwidth.Estimate(bandwidth.ClassMedian(), X, []int{0, 1})
	require.ErrorIs(t, err, featmap.ErrLabelMismatch)
}

// TestEstimate_Neighbor_HandComputed pins the heuristic to a literal
// expected value on a 1-D instance small enough to work by hand:
// X = {0, 1, 2, 10}, so k = n-2 = 2 and the per-point distances to the
// 2nd-nearest other point are {2, 1, 2, 9}. sigma = 14/4 = 3.5 and
// gamma = 1/(2·3.5²). In particular the self-match at distance zero must
// never be the distance that gets averaged.
func TestEstimate_Neighbor_HandComputed(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 1, 2, 10})

	gamma, err := bandwidth.Estimate(bandwidth.Neighbor(50), X, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0/(2*3.5*3.5), gamma, 1e-12)
}

// TestEstimate_Neighbor_SmallSample: for n = 30 the effective neighbour
// count is n-2 = 28; the brute-force recomputation pins that down exactly.
func TestEstimate_Neighbor_SmallSample(t *testing.T) {
	X := randomMatrix(30, 3, 11)

	gamma, err := bandwidth.Estimate(bandwidth.Neighbor(50), X, nil)
	require.NoError(t, err)
	require.InEpsilon(t, bruteForceNeighborGamma(X, 28), gamma, 1e-9)
}

// TestEstimate_Neighbor_FullBudget: for n = 60 the full 50-neighbour
// budget applies.
func TestEstimate_Neighbor_FullBudget(t *testing.T) {
	X := randomMatrix(60, 3, 13)

	gamma, err := bandwidth.Estimate(bandwidth.Neighbor(50), X, nil)
	require.NoError(t, err)
	require.InEpsilon(t, bruteForceNeighborGamma(X, 50), gamma, 1e-9)
}

// TestEstimate_Neighbor_TooFewSamples: below 3 samples the clamped budget
// cannot form a single neighbour.
func TestEstimate_Neighbor_TooFewSamples(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{0, 0, 1, 1})

	_, err := bandwidth.Estimate(bandwidth.Neighbor(50), X, nil)
	require.ErrorIs(t, err, bandwidth.ErrTooFewSamples)
}

// TestEstimate_Neighbor_BudgetEdge: n equal to the budget leaves no room
// for the k-th neighbour plus the self-match; the heuristic refuses rather
// than silently shrinking k.
func TestEstimate_Neighbor_BudgetEdge(t *testing.T) {
	X := randomMatrix(50, 2, 17)

	_, err := bandwidth.Estimate(bandwidth.Neighbor(50), X, nil)
	require.ErrorIs(t, err, bandwidth.ErrTooFewSamples)
}
