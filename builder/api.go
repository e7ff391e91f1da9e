// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order, lays out nodes.
//   - Every constructor appends nodes after those already present, so composing
//     constructors yields disjoint components (Path(3), Path(2) ⇒ a 3+2 forest).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes with IDs g.NodeCount(), g.NodeCount()+1, … labelled by cfg.labelFn.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, applies all constructors in order, and places every node on a circle.
// Any constructor error is wrapped with the context "BuildGraph" and returned
// immediately; no partial graph is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; layout O(V).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}
	if err := circleLayout(g, cfg.radius); err != nil {
		return nil, errors.Wrap(err, "BuildGraph: layout")
	}

	return g, nil
}

// Topology factories - implemented in impl_*.go
//
//	Path(n)                 simple path P_n (n ≥ 2)
//	Cycle(n)                simple cycle C_n (n ≥ 3)
//	Complete(n)             complete graph K_n (n ≥ 1)
//	RandomConnected(n, k)   random spanning chain plus k extra distinct edges (n ≥ 1, needs rng)
//	Components(sizes...)    one RandomConnected component per size (needs rng)
