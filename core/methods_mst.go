// SPDX-License-Identifier: MIT
// File: methods_mst.go
// Role: MST-membership flags and the derived MST view.
// Policy:
//   - The flags are written only by the navigator; engines read graphs and never call these setters.
//   - MSTEdges() is derived from the flags and is never stored separately.
// Determinism:
//   - MSTEdges() and MSTEdgeIDs() follow edge insertion order.

package core

// SetInMST sets the InMST flag of edge eid.
//
// Errors:
//   - ErrEdgeNotFound: if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) SetInMST(eid string, in bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.InMST = in

	return nil
}

// ClearMST resets every InMST flag to false.
// Complexity: O(E).
func (g *Graph) ClearMST() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.edges {
		e.InMST = false
	}
}

// MSTEdges returns copies of all edges flagged InMST, in insertion order.
// Complexity: O(E).
func (g *Graph) MSTEdges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0)
	for _, eid := range g.edgeOrder {
		if e := g.edges[eid]; e.InMST {
			out = append(out, *e)
		}
	}

	return out
}

// MSTEdgeIDs returns the IDs of all edges flagged InMST, in insertion order.
// Complexity: O(E).
func (g *Graph) MSTEdgeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0)
	for _, eid := range g.edgeOrder {
		if g.edges[eid].InMST {
			out = append(out, eid)
		}
	}

	return out
}

// TotalWeight sums the weights of all edges flagged InMST.
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int64
	for _, e := range g.edges {
		if e.InMST {
			total += e.Weight
		}
	}

	return total
}
