// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mststep/core"
)

// edgeText renders an edge as "A-B (3)" using node labels.
func edgeText(g *core.Graph, e core.Edge) string {
	return fmt.Sprintf("%s-%s (%d)", g.Label(e.From), g.Label(e.To), e.Weight)
}

// setText renders a node set as "{A, B, C}".
func setText(g *core.Graph, ids []int) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = g.Label(id)
	}

	return "{" + strings.Join(labels, ", ") + "}"
}

// partitionText renders a partition as "{A, B} {C}".
func partitionText(g *core.Graph, sets [][]int) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = setText(g, s)
	}

	return strings.Join(parts, " ")
}

// summaryText renders the closing narration of a run.
func summaryText(algorithm string, nodes, accepted int, total int64) string {
	if nodes <= 1 {
		return fmt.Sprintf("%s finished: a single node needs no edges", algorithm)
	}
	if accepted < nodes-1 {
		return fmt.Sprintf("%s finished with a spanning forest: %d of %d edges, total weight %d (graph is disconnected)",
			algorithm, accepted, nodes-1, total)
	}

	return fmt.Sprintf("%s finished: minimum spanning tree with %d edges, total weight %d", algorithm, accepted, total)
}
