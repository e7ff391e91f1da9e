// SPDX-License-Identifier: MIT
// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree algorithm
// that records every decision into a steplog.Log.
package prim_kruskal

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// Prim runs Prim's algorithm from start and returns the frozen step log.
//
// Error Conditions:
//   - ErrEmptyGraph (ErrInvalidInput): graph is nil or has no nodes. No log is returned.
//
// Warnings (attached to the log, never returned as error):
//   - ErrStartNodeNotFound: start does not exist; the first node of graph.Nodes() is used instead.
//
// Steps:
//  1. Validate the graph; resolve the start node (fallback + warning).
//  2. Mark start visited, push its edges to unvisited neighbors, emit an opening none step.
//  3. While visited < |V|:
//     a. Frontier empty: stop (ComponentOnly) or restart from the lowest unvisited id (none step).
//     b. Pop the first minimum-weight entry, emit considerEdge.
//     c. Exactly one endpoint visited: visit the other, emit addEdge, push its edges to
//     unvisited neighbors, re-sort, emit a none step with the updated frontier.
//     d. Both endpoints visited (stale entry): emit discardEdge.
//  4. Emit the closing none step.
//
// Every snapshot is the post-action state of the frontier and the visited set.
//
// Complexity: O(E · E log E) worst case because of the full stable re-sort per push batch;
// the frontier is bounded by E, which keeps teaching-size graphs instant.
func Prim(graph *core.Graph, start int, opts ...Option) (*steplog.Log, error) {
	o := NewOptions(opts...)
	o.Method = MethodPrim
	o.Root, o.RootSet = start, true

	return prim(graph, o)
}

// primRun is the live state of one Prim execution.
type primRun struct {
	g        *core.Graph
	b        *steplog.Builder
	visited  visitedSet
	frontier frontier
}

func prim(graph *core.Graph, opts MSTOptions) (*steplog.Log, error) {
	// 1. Validate.
	if graph == nil || graph.NodeCount() == 0 {
		return nil, errors.Wrap(ErrEmptyGraph, "prim")
	}
	nodes := graph.Nodes()

	start := nodes[0].ID
	var warning error
	if opts.RootSet {
		if graph.HasNode(opts.Root) {
			start = opts.Root
		} else {
			warning = errors.Wrapf(ErrStartNodeNotFound, "node %d, starting at %s instead", opts.Root, nodes[0].Label)
			klog.Warningf("prim: %v", warning)
		}
	}

	run := &primRun{
		g: graph,
		b: steplog.NewBuilder(steplog.Meta{
			Algorithm: MethodPrim,
			StartNode: start,
			NodeCount: len(nodes),
			EdgeCount: graph.EdgeCount(),
		}),
		visited: newVisitedSet(),
	}
	if warning != nil {
		run.b.Warn(warning)
	}

	// 2. Seed.
	if err := run.visit(start); err != nil {
		return nil, errors.Wrap(err, "prim: seed")
	}
	run.emit(steplog.ActionNone, nil, fmt.Sprintf("Start at %s; frontier holds its %d edges",
		graph.Label(start), run.frontier.Len()))

	// 3. Main loop.
	var (
		accepted int
		total    int64
		order    = graph.NodeIDs()
	)
	for run.visited.size() < len(nodes) {
		// 3a. Frontier exhausted before every node was reached: the graph is disconnected.
		if run.frontier.Len() == 0 {
			if opts.ComponentOnly {
				break
			}
			next := run.lowestUnvisited(order)
			if err := run.visit(next); err != nil {
				return nil, errors.Wrap(err, "prim: restart")
			}
			run.emit(steplog.ActionNone, nil, fmt.Sprintf("Frontier is empty; restart from unreached node %s",
				graph.Label(next)))
			continue
		}

		// 3b. Dequeue the cheapest candidate.
		entry := run.frontier.popMin()
		e := entry.Edge
		run.emit(steplog.ActionConsiderEdge, &e, "Consider "+edgeText(graph, e))

		fromIn, toIn := run.visited.contains(e.From), run.visited.contains(e.To)
		if fromIn == toIn {
			// 3d. Stale entry: both endpoints joined the tree after it was pushed.
			run.emit(steplog.ActionDiscardEdge, &e, fmt.Sprintf("Discard %s: both endpoints already in the tree",
				edgeText(graph, e)))
			continue
		}

		// 3c. Accept and expand.
		fresh := e.To
		if toIn {
			fresh = e.From
		}
		run.visited.add(fresh)
		accepted++
		total += e.Weight
		run.emit(steplog.ActionAddEdge, &e, fmt.Sprintf("Add %s to the tree; %s joins the visited set",
			edgeText(graph, e), graph.Label(fresh)))

		pushed, err := run.pushFrom(fresh)
		if err != nil {
			return nil, errors.Wrap(err, "prim: expand")
		}
		run.emit(steplog.ActionNone, nil, fmt.Sprintf("Queue updated: %d new edge(s) from %s, %d candidate(s) in the frontier",
			pushed, graph.Label(fresh), run.frontier.Len()))
	}

	// 4. Close.
	run.emit(steplog.ActionNone, nil, summaryText("Prim", len(nodes), accepted, total))

	return run.b.Freeze(), nil
}

// visit marks id visited and pushes its edges toward unvisited neighbors.
func (r *primRun) visit(id int) error {
	r.visited.add(id)
	_, err := r.pushFrom(id)

	return err
}

// pushFrom pushes every edge from id to a still-unvisited neighbor, in edge insertion order.
func (r *primRun) pushFrom(id int) (int, error) {
	incident, err := r.g.Neighbors(id)
	if err != nil {
		return 0, err
	}
	batch := make([]core.Edge, 0, len(incident))
	for _, e := range incident {
		if !r.visited.contains(e.Other(id)) {
			e.InMST = false
			batch = append(batch, e)
		}
	}
	r.frontier.push(batch...)

	return len(batch), nil
}

// lowestUnvisited returns the smallest node ID not yet visited. order is ascending.
// Only called while visited < |V|, so a result always exists.
func (r *primRun) lowestUnvisited(order []int) int {
	for _, id := range order {
		if !r.visited.contains(id) {
			return id
		}
	}

	return order[len(order)-1]
}

// emit appends a step carrying the current frontier and visited set.
func (r *primRun) emit(action steplog.Action, e *core.Edge, narrative string) {
	r.b.Append(action, e, narrative, steplog.PrimSnapshot{
		Frontier: r.frontier.entries,
		Visited:  r.visited.ids(),
	})
}
