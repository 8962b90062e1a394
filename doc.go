// Package relumap is your in-memory toolkit for randomized kernel
// approximation: fit once, then embed your data into a fixed-size feature
// space whose inner products approximate a Gaussian-like kernel — without
// ever materializing an O(n²) kernel matrix.
//
// 🚀 What is relumap?
//
//	A deterministic, seed-driven library that brings together:
//		• Bandwidth selection: fixed-scale, class-median and nearest-neighbour
//		  heuristics for the kernel scale parameter (gamma)
//		• Random projections: weight directions sampled uniformly on the unit
//		  hypersphere in (d+1) dimensions
//		• ReLU embedding: bias-augmented linear projection clamped at zero,
//		  ready for any downstream linear classifier
//
// ✨ Why choose relumap?
//
//   - Reproducible – every random draw flows from one explicit seed
//   - Immutable after fit – concurrent Transform calls are safe by design
//   - Idiomatic – sentinel errors, functional options, gonum numerics
//
// Under the hood, everything is organized under three subpackages:
//
//	featmap/   — the generic feature-map lifecycle contract (fitted state,
//	             input validation, intercept bookkeeping)
//	bandwidth/ — gamma estimation heuristics and the selector variant
//	relu/      — the random ReLU feature map itself (sampler + transform)
//
// Quick sketch of the pipeline:
//
//	X ──fit──▶ {gamma, W} ──transform──▶ max(0, [1/gamma | X]·W)
//
// Dive into README.md for full examples and the heuristic reference list
// (Sun, Gilbert & Tewari, “On the Approximation Properties of Random ReLU
// Features”; Yu et al., “Compact Nonlinear Maps and Circulant Extensions”).
//
//	go get github.com/katalvlaran/relumap
package relumap
