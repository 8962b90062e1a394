// Package relu implements the random ReLU feature map: a randomized
// embedding whose inner products approximate a shift-invariant
// (Gaussian-like) kernel.
//
// Fitting selects a bandwidth gamma (see relumap/bandwidth), then draws a
// (d+1)×n_components weight matrix whose columns are uniform on the unit
// hypersphere: i.i.d. standard normal entries normalized column-wise
// (normal vectors are rotationally symmetric, hence uniform on the sphere
// after scaling). Transforming prepends a constant 1/gamma bias coordinate
// to every sample, multiplies by the weights, and clamps negatives to zero:
//
//	phi(x) = max(0, wᵀ · (1/gamma, x))
//
// Lifecycle: Unfit → Fit (single transition; a repeated Fit restarts it) →
// any number of Transform calls. Fitted state is an immutable value — a
// failed re-fit leaves the previous state fully usable, and concurrent
// Transform calls against one fitted map are safe.
//
// Determinism: every random draw flows from the explicit seed passed via
// WithSeed; there is no global or time-based randomness. Same seed, data
// and configuration reproduce gamma and the weights bit-for-bit.
//
// Use this package as a preprocessing stage ahead of a linear classifier
// when an explicit O(n²) kernel matrix is too expensive.
//
// References:
//   - Sun, Gilbert, Tewari: “On the Approximation Properties of Random
//     ReLU Features” (arXiv:1810.04374).
package relu
