// Package relu: functional configuration for the feature map. This file
// defines:
//   - Option (functional options over internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error, not data error).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume
//     ...Option.

package relu

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/relumap/bandwidth"
)

// DEFAULTS - single source of truth for zero-argument behavior.
const (
	// DefaultNComponents is the embedding width when WithNComponents is not
	// supplied: 300 Monte Carlo directions.
	DefaultNComponents = 300

	// DefaultFitIntercept mirrors the downstream-linear-model convention:
	// the mapped feature length reserves one intercept slot.
	DefaultFitIntercept = true

	// DefaultSeed routes through the seed-zero policy in rng.go: callers
	// who never set a seed still get reproducible draws.
	DefaultSeed uint64 = 0
)

// DefaultSelector is the bandwidth heuristic used when WithSelector is not
// supplied: the average-50th-nearest-neighbour rule ("avg_ann_50").
func DefaultSelector() bandwidth.Selector {
	return bandwidth.Neighbor(bandwidth.DefaultNeighborCount)
}

// Internal panic messages (no magic strings).
const panicNComponents = "relu: WithNComponents: n must be positive"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	selector    bandwidth.Selector
	nComponents int
	seed        uint64
	intercept   bool
	log         zerolog.Logger
}

func defaultOptions() options {
	return options{
		selector:    DefaultSelector(),
		nComponents: DefaultNComponents,
		seed:        DefaultSeed,
		intercept:   DefaultFitIntercept,
		log:         zerolog.Nop(),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSelector sets the gamma-selection heuristic. The zero-value Selector
// is accepted here but will fail Fit with bandwidth.ErrUnknownSelector;
// resolution is deferred to fit time so configuration errors surface where
// the spec places them.
func WithSelector(sel bandwidth.Selector) Option {
	return func(o *options) { o.selector = sel }
}

// WithGamma fixes gamma to an explicit positive value, bypassing
// estimation. Panics (via bandwidth.Explicit) unless v is positive finite.
func WithGamma(v float64) Option {
	sel := bandwidth.Explicit(v)
	return func(o *options) { o.selector = sel }
}

// WithNComponents sets the embedding width. Panics if n <= 0.
func WithNComponents(n int) Option {
	if n <= 0 {
		panic(panicNComponents)
	}
	return func(o *options) { o.nComponents = n }
}

// WithSeed sets the seed of the random source that draws the projection
// weights. Seed 0 selects the fixed default stream (see rng.go), so every
// configuration is reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithFitIntercept toggles the intercept slot in the reported mapped
// feature length. The heuristics and the transform itself never consult it;
// it is bookkeeping for the downstream linear model.
func WithFitIntercept(intercept bool) Option {
	return func(o *options) { o.intercept = intercept }
}

// WithLogger attaches a structured logger; the map emits one debug event
// per successful fit. Defaults to a no-op logger — a library stays quiet
// unless asked.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}
