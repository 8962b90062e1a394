// Package relu: the weight sampler.

package relu

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// sampleWeights draws the (d+1)×nComponents projection matrix whose columns
// are uniform on the unit hypersphere in d+1 dimensions:
//
//	Step 1: fill with i.i.d. standard normal draws (rotationally symmetric).
//	Step 2: rescale every column to unit Euclidean norm.
//
// The rng state is consumed in row-major fill order, so a given seed yields
// bit-identical weights on every run. Independent of gamma by construction.
//
// Complexity: O((d+1)·nComponents).
func sampleWeights(d, nComponents int, rng *rand.Rand) *mat.Dense {
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}

	weights := mat.NewDense(d+1, nComponents, nil)
	rm := weights.RawMatrix()
	for i := range rm.Data {
		rm.Data[i] = normal.Rand()
	}

	// Column-wise normalization over the raw buffer (stride-aware).
	for j := 0; j < nComponents; j++ {
		var sumSq float64
		for i := 0; i < rm.Rows; i++ {
			v := rm.Data[i*rm.Stride+j]
			sumSq += v * v
		}
		norm := math.Sqrt(sumSq)
		for i := 0; i < rm.Rows; i++ {
			rm.Data[i*rm.Stride+j] /= norm
		}
	}
	return weights
}
