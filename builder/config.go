// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • labelFn  = ExcelColumnLabel ("A","B",…,"Z","AA",…)
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (constant 1)
//   • radius   = 200

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	labelFn  LabelFn
	rng      *rand.Rand
	weightFn WeightFn
	radius   float64
}

const defaultRadius = 200.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order; last-wins semantics.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  ExcelColumnLabel,
		weightFn: DefaultWeightFn,
		radius:   defaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight and clamps it to the core minimum.
func (c builderConfig) weight() int64 {
	w := c.weightFn(c.rng)
	if w < DefaultEdgeWeight {
		return DefaultEdgeWeight
	}

	return w
}
