// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
)

// addNodes appends n nodes after those already in g and returns the first new ID.
// IDs and labels continue the global index, so composed constructors never collide.
func addNodes(g *core.Graph, cfg builderConfig, n int, method string) (int, error) {
	base := g.NodeCount()
	for i := 0; i < n; i++ {
		id := base + i
		if err := g.AddNode(id, cfg.labelFn(id), core.Position{}); err != nil {
			return 0, errors.Wrapf(err, "%s: AddNode(%d)", method, id)
		}
	}

	return base, nil
}

// addEdge adds u-v with the next configured weight.
func addEdge(g *core.Graph, cfg builderConfig, u, v int, method string) error {
	w := cfg.weight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%d-%d, w=%d)", method, u, v, w)
	}

	return nil
}

// circleLayout places nodes evenly on a circle of radius r centred at (r, r),
// in node insertion order. Positions are presentation-only.
func circleLayout(g *core.Graph, r float64) error {
	nodes := g.Nodes()
	n := len(nodes)
	for i, node := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := core.Position{
			X: r + r*math.Cos(angle),
			Y: r + r*math.Sin(angle),
		}
		if err := g.SetPosition(node.ID, pos); err != nil {
			return err
		}
	}

	return nil
}
