// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm
// that records every decision into a steplog.Log.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// Kruskal runs Kruskal's algorithm and returns the frozen step log.
//
// Error Conditions:
//   - ErrEmptyGraph (ErrInvalidInput): graph is nil or has no nodes. No log is returned.
//
// Steps:
//  1. Validate; copy all edges and sort them by ascending Weight with sort.SliceStable,
//     so equal weights keep edge insertion order.
//  2. Initialize one singleton set per node; emit a none step with the full sorted list.
//  3. For each sorted edge, until |V|-1 edges are accepted:
//     a. Emit considerEdge with the not-yet-considered suffix.
//     b. find(u) != find(v): union, emit addEdge, then a none step showing the merged partition.
//     c. Otherwise emit discardEdge (the edge would close a cycle).
//  4. Emit the closing none step.
//
// Complexity: O(E log E + E·α(V)) for the algorithm, plus O(V + E) per snapshot.
func Kruskal(graph *core.Graph) (*steplog.Log, error) {
	// 1. Validate and sort.
	if graph == nil || graph.NodeCount() == 0 {
		return nil, errors.Wrap(ErrEmptyGraph, "kruskal")
	}
	ids := graph.NodeIDs()
	sorted := graph.Edges()
	for i := range sorted {
		sorted[i].InMST = false
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 2. Singletons.
	sets := newDSU(ids)
	b := steplog.NewBuilder(steplog.Meta{
		Algorithm: MethodKruskal,
		StartNode: -1,
		NodeCount: len(ids),
		EdgeCount: len(sorted),
	})
	emit := func(action steplog.Action, e *core.Edge, narrative string, remaining []core.Edge) {
		b.Append(action, e, narrative, steplog.KruskalSnapshot{
			Remaining: remaining,
			Partition: sets.partition(),
		})
	}
	emit(steplog.ActionNone, nil, fmt.Sprintf("Sorted %d edge(s) by weight; every node starts in its own set",
		len(sorted)), sorted)

	// 3. Scan.
	var (
		need     = len(ids) - 1
		accepted int
		total    int64
		i        int
	)
	for ; i < len(sorted) && accepted < need; i++ {
		e := sorted[i]
		rest := sorted[i+1:]
		emit(steplog.ActionConsiderEdge, &e, "Consider "+edgeText(graph, e), rest)

		if !sets.union(e.From, e.To) {
			emit(steplog.ActionDiscardEdge, &e, fmt.Sprintf("Discard %s: %s and %s are already connected, it would form a cycle",
				edgeText(graph, e), graph.Label(e.From), graph.Label(e.To)), rest)
			continue
		}
		accepted++
		total += e.Weight
		emit(steplog.ActionAddEdge, &e, fmt.Sprintf("Add %s to the tree", edgeText(graph, e)), rest)
		emit(steplog.ActionNone, nil, "Sets merged: "+partitionText(graph, sets.partition()), rest)
	}

	// 4. Close. Edges left unconsidered once the tree is complete stay in the snapshot.
	emit(steplog.ActionNone, nil, summaryText("Kruskal", len(ids), accepted, total), sorted[i:])

	return b.Freeze(), nil
}
