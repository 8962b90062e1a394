// SPDX-License-Identifier: MIT
// Package bandwidth: the Selector tagged variant and its parsing surface.
//
// Design:
//   - A Selector is resolved ONCE at configuration time; Estimate dispatches
//     on the tag, never on runtime types.
//   - The zero value is intentionally invalid (kindUnknown) so an
//     unconfigured Selector fails fast with ErrUnknownSelector instead of
//     silently picking a heuristic.
//   - Constructors panic only on nonsensical parameters (programmer error);
//     ParseSelector returns errors for user-supplied configuration.

package bandwidth

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Symbolic configuration spellings recognized by ParseSelector.
const (
	selectorScale       = "scale"      // fixed-scale heuristic
	selectorClassMedian = "avg_ann"    // class-median nearest-class heuristic
	selectorNeighbor50  = "avg_ann_50" // average 50th-nearest-neighbour heuristic
)

// DefaultNeighborCount is the neighbour budget of the "avg_ann_50"
// spelling and the canonical default for Neighbor-based selection.
const DefaultNeighborCount = 50

// Internal panic messages (no magic strings).
const (
	panicNeighborCount = "bandwidth: Neighbor: k must be positive"
	panicExplicitGamma = "bandwidth: Explicit: gamma must be a positive finite float"
)

type kind uint8

const (
	kindUnknown kind = iota
	kindScale
	kindClassMedian
	kindNeighbor
	kindExplicit
)

// Selector is the tagged gamma-selection variant:
// FixedScale | ClassMedian | Neighbor(k) | Explicit(v).
//
// The zero value is invalid and yields ErrUnknownSelector from Estimate.
// Selector is a small comparable value; pass it by value.
type Selector struct {
	kind  kind
	k     int     // neighbour budget, kindNeighbor only
	value float64 // explicit gamma, kindExplicit only
}

// Scale selects the fixed-scale heuristic: gamma = 1 / (d · Var(X)).
func Scale() Selector { return Selector{kind: kindScale} }

// ClassMedian selects the class-median nearest-class heuristic.
// Estimate will require class labels for this variant.
func ClassMedian() Selector { return Selector{kind: kindClassMedian} }

// Neighbor selects the average k-th-nearest-neighbour heuristic with the
// given neighbour budget. Panics if k <= 0 (programmer error).
func Neighbor(k int) Selector {
	if k <= 0 {
		panic(panicNeighborCount)
	}
	return Selector{kind: kindNeighbor, k: k}
}

// Explicit selects a directly supplied gamma, bypassing estimation.
// Panics unless v is a positive finite float (programmer error).
func Explicit(v float64) Selector {
	if !(v > 0) || math.IsInf(v, 1) {
		panic(panicExplicitGamma)
	}
	return Selector{kind: kindExplicit, value: v}
}

// ParseSelector resolves a configuration string into a Selector.
// Recognized spellings: "scale", "avg_ann", "avg_ann_50", or a positive
// float literal (an explicit gamma).
//
// Errors:
//   - ErrNonPositiveGamma for float literals that are not positive finite.
//   - ErrUnknownSelector for anything else.
func ParseSelector(s string) (Selector, error) {
	switch s {
	case selectorScale:
		return Scale(), nil
	case selectorClassMedian:
		return ClassMedian(), nil
	case selectorNeighbor50:
		return Neighbor(DefaultNeighborCount), nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if !(v > 0) || math.IsInf(v, 1) || math.IsNaN(v) {
			return Selector{}, fmt.Errorf("%q: %w", s, ErrNonPositiveGamma)
		}
		return Selector{kind: kindExplicit, value: v}, nil
	}
	return Selector{}, fmt.Errorf("%q: %w", s, ErrUnknownSelector)
}

// NeedsLabels reports whether Estimate will require class labels for this
// selector (true only for ClassMedian).
func (s Selector) NeedsLabels() bool { return s.kind == kindClassMedian }

// String returns the canonical configuration spelling of the selector.
func (s Selector) String() string {
	switch s.kind {
	case kindScale:
		return selectorScale
	case kindClassMedian:
		return selectorClassMedian
	case kindNeighbor:
		if s.k == DefaultNeighborCount {
			return selectorNeighbor50
		}
		return fmt.Sprintf("avg_ann_%d", s.k)
	case kindExplicit:
		return strconv.FormatFloat(s.value, 'g', -1, 64)
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler using the canonical
// spelling, so a Selector round-trips through text-based configuration.
func (s Selector) MarshalText() ([]byte, error) {
	if s.kind == kindUnknown {
		return nil, ErrUnknownSelector
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseSelector.
func (s *Selector) UnmarshalText(text []byte) error {
	sel, err := ParseSelector(string(text))
	if err != nil {
		return err
	}
	*s = sel
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A YAML scalar may carry either
// a symbolic spelling or a positive float, mirroring the string/float union
// accepted in configuration files.
func (s *Selector) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("gamma must be a scalar: %w", ErrUnknownSelector)
	}
	return s.UnmarshalText([]byte(node.Value))
}
