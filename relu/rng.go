// Package relu - RNG utilities for the weight sampler.
//
// This file centralizes deterministic random generation for the map.
//
// Goals:
//   - Determinism: same seed ⇒ identical weights across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Compatibility: golang.org/x/exp/rand sources plug directly into
//     gonum's distuv samplers.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe. Each Fit call builds its own stream
//     from the configured seed and never shares it.
package relu

import "golang.org/x/exp/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed
// verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
