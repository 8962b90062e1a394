// SPDX-License-Identifier: MIT
// Package bandwidth: the average-nearest-neighbour heuristic.
//
// The neighbour index is an implementation detail of this file, not part of
// the package contract; it is a gonum k-d tree today and may change.

package bandwidth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// minNeighborSamples is the smallest sample count the heuristic accepts:
// below 3 samples the clamped budget n-2 cannot form a single neighbour.
const minNeighborSamples = 3

// neighborGamma implements the average k-th-nearest-neighbour heuristic:
//
//	sigma = mean over all points of the distance to their k-th nearest
//	        neighbour (self excluded), gamma = 1/(2·sigma²)
//
// The effective neighbour count follows the published rule: the full budget
// when n >= budget, otherwise n-2. Each query asks for k+1 neighbours
// because a point is always its own 0th neighbour at distance zero.
//
// Errors: ErrTooFewSamples when n < 3 or when k+1 neighbours exceed the
// sample count (possible only for n within two of the budget).
//
// Complexity: O(n log n) tree build plus n queries of O(log n) expected,
// each O(d) per visited node.
func neighborGamma(X mat.Matrix, budget int) (float64, error) {
	n, d := X.Dims()
	if n < minNeighborSamples {
		return 0, fmt.Errorf("n=%d: %w", n, ErrTooFewSamples)
	}

	k := budget
	if n < budget {
		k = n - 2
	}
	if k+1 > n {
		return 0, fmt.Errorf("k=%d n=%d: %w", k, n, ErrTooFewSamples)
	}

	points := make(kdtree.Points, n)
	for i := 0; i < n; i++ {
		p := make(kdtree.Point, d)
		for j := 0; j < d; j++ {
			p[j] = X.At(i, j)
		}
		points[i] = p
	}
	tree := kdtree.New(points, false)

	total := 0.0
	for _, p := range points {
		keeper := kdtree.NewNKeeper(k + 1)
		tree.NearestSet(keeper, p)

		// NearestSet returns the keeper sorted in ascending distance order,
		// so the tail element is the farthest of the k+1 kept points: the
		// k-th neighbour once the guaranteed self-match at distance zero is
		// discounted. kdtree reports squared Euclidean distances.
		kth := keeper.Heap[len(keeper.Heap)-1]
		total += math.Sqrt(kth.Dist)
	}

	sigma := total / float64(n)
	return 1 / (2 * sigma * sigma), nil
}
