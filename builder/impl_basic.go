// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// impl_basic.go - Path(n), Cycle(n) and Complete(n) constructors.
//
// Contract:
//   • Adds nodes after the existing ones, labelled via cfg.labelFn.
//   • Emits edges in a stable, documented order; weights come from cfg.weightFn(cfg.rng).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Path/Cycle: O(n). Complete: O(n²).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
)

// File-local constants (stable method tags and domains).
const (
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodComplete   = "Complete"
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor for the simple path P_n: i - i+1 for i ascending.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		base, err := addNodes(g, cfg, n, methodPath)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err = addEdge(g, cfg, base+i, base+i+1, methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n: i - (i+1)%n for i ascending.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
		}
		base, err := addNodes(g, cfg, n, methodCycle)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, base+i, base+(i+1)%n, methodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: pairs {i,j}, i<j, in lexicographic order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteNodes)
		}
		base, err := addNodes(g, cfg, n, methodComplete)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, base+i, base+j, methodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
