// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/EdgeBetween/Edges/EdgeCount/Neighbors,
//       plus nextEdgeID().
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to.
//
// Steps:
//  1. Validate weight and loops.
//  2. Lock mu, check both endpoints exist.
//  3. Check the unordered pair is still free.
//  4. Generate eid, store the edge, append it to the incidence lists of both endpoints.
//
// Errors:
//   - ErrBadWeight: weight < MinWeight.
//   - ErrLoopNotAllowed: from == to.
//   - ErrNodeNotFound: an endpoint is missing.
//   - ErrMultiEdgeNotAllowed: an edge over {from,to} already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) (string, error) {
	if weight < MinWeight {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return "", ErrNodeNotFound
	}
	key := keyOf(from, to)
	if _, dup := g.pairs[key]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := g.nextEdgeID()
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, eid)
	g.pairs[key] = eid
	g.incident[from] = append(g.incident[from], eid)
	g.incident[to] = append(g.incident[to], eid)

	return eid, nil
}

// Edge returns a copy of the edge with the given ID.
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
func (g *Graph) Edge(eid string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// EdgeBetween returns the edge over the unordered pair {a,b}.
//
// Errors:
//   - ErrEdgeNotFound: if no such edge exists.
func (g *Graph) EdgeBetween(a, b int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.pairs[keyOf(a, b)]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *g.edges[eid], nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// Neighbors returns copies of the edges incident to id, in insertion order.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	inc := g.incident[id]
	out := make([]Edge, 0, len(inc))
	for _, eid := range inc {
		out = append(out, *g.edges[eid])
	}

	return out, nil
}

// nextEdgeID returns the next textual edge ID. Caller must hold mu for writing.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
