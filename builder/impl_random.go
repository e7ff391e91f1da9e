// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_random.go - RandomConnected(n, extra) and Components(sizes...) constructors.
//
// Canonical model:
//   - Connectivity first: a random spanning chain over a shuffled node order
//     (n-1 edges), then `extra` distinct random edges, skipping pairs already used.
//   - Components composes one RandomConnected per size; no edge crosses components.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - extra ≤ n(n-1)/2 - (n-1) (else ErrTooManyEdges).
//
// Determinism:
//   - Deterministic outcomes for fixed seed/options due to fixed draw order.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
)

const (
	methodRandomConnected = "RandomConnected"
	methodComponents      = "Components"
	minRandomNodes        = 1
)

// RandomConnected returns a Constructor for a connected random graph on n nodes
// with n-1+extra edges.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodRandomConnected, n, minRandomNodes)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomConnected)
		}
		if free := n*(n-1)/2 - (n - 1); extra < 0 || extra > free {
			return errors.Wrapf(ErrTooManyEdges, "%s: extra=%d, free pairs=%d", methodRandomConnected, extra, free)
		}

		base, err := addNodes(g, cfg, n, methodRandomConnected)
		if err != nil {
			return err
		}

		// 1) Spanning chain over a shuffled order.
		order := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, base+order[i-1], base+order[i], methodRandomConnected); err != nil {
				return err
			}
		}

		// 2) Extra distinct edges; rejection sampling terminates because free pairs ≥ extra.
		for added := 0; added < extra; {
			u, v := base+cfg.rng.Intn(n), base+cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if _, err = g.EdgeBetween(u, v); err == nil {
				continue
			}
			if err = addEdge(g, cfg, u, v, methodRandomConnected); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// Components returns a Constructor that adds one connected random component per
// size, each with no extra edges beyond its spanning chain plus one chord when possible.
func Components(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) == 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: no component sizes", methodComponents)
		}
		for i, n := range sizes {
			extra := 0
			if n >= minCycleNodes {
				extra = 1
			}
			if err := RandomConnected(n, extra)(g, cfg); err != nil {
				return errors.Wrapf(err, "%s[%d]", methodComponents, i)
			}
		}

		return nil
	}
}
