// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over the edge ID counter so AddEdge on the clone continues the textual sequence.
//   - Insertion order of nodes, edges and incidence lists is preserved.
// Concurrency:
//   - Read lock on the source only; the clone is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: nodes, edges (including InMST flags),
// pair index and incidence lists.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.nodeOrder), len(g.edgeOrder)))
	clone.edgeSeq = g.edgeSeq

	for _, id := range g.nodeOrder {
		n := *g.nodes[id]
		clone.nodes[id] = &n
		clone.nodeOrder = append(clone.nodeOrder, id)
	}
	for _, eid := range g.edgeOrder {
		e := *g.edges[eid]
		clone.edges[eid] = &e
		clone.edgeOrder = append(clone.edgeOrder, eid)
		clone.pairs[keyOf(e.From, e.To)] = eid
	}
	for id, inc := range g.incident {
		cp := make([]string, len(inc))
		copy(cp, inc)
		clone.incident[id] = cp
	}

	return clone
}
