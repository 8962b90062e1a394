// SPDX-License-Identifier: MIT

// Package featmap defines the generic feature-map lifecycle contract shared
// by every randomized feature mapping in relumap.
//
// What lives here:
//
//   - FeatureMap — the Fit/Transform interface every mapping implements.
//   - State — an immutable fitted-state value recording the input
//     dimensionality seen at fit time, the mapped feature length and the
//     intercept flag. A new State is produced by MarkFitted; nothing is
//     mutated in place.
//   - Validators — canonical input checks (nil/empty matrices, NaN/Inf
//     entries, label shape and sign) returning plain sentinel errors.
//   - AppendIntercept — the constant-one trailing column downstream linear
//     models consume when fit_intercept is enabled.
//
// Error policy: all user-triggered failures surface as the package sentinels
// declared in errors.go, matched with errors.Is. Wrapping with context
// happens at the outer call boundary, never here.
//
// The package is deliberately small: concrete mappings (see relumap/relu)
// own the numerics; featmap owns only the lifecycle bookkeeping that is
// identical across mappings.
package featmap
