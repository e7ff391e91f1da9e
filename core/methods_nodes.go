// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion order.
//   - NodeIDs() returns IDs sorted ascending.
//
// Concurrency:
//   - Node catalog protected by mu.

package core

import (
	"sort"
	"strconv"
)

// AddNode inserts a node with the given id, label and position.
//
// Implementation:
//   - Stage 1: Under mu write lock, reject an id that is already registered.
//   - Stage 2: Default an empty label to the decimal id.
//   - Stage 3: Register the node and append it to the insertion order.
//
// Errors:
//   - ErrDuplicateNode: if id is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(id int, label string, pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNode
	}
	if label == "" {
		label = strconv.Itoa(id)
	}
	g.nodes[id] = &Node{ID: id, Label: label, Position: pos}
	g.nodeOrder = append(g.nodeOrder, id)

	return nil
}

// HasNode reports whether the node id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given id.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Label returns the label of node id, or its decimal id when the node is unknown.
// Narratives use it, so it never fails.
func (g *Graph) Label(id int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if n, ok := g.nodes[id]; ok {
		return n.Label
	}

	return strconv.Itoa(id)
}

// Nodes returns copies of all nodes in insertion order.
// The first element is "the first node in the node list" used for start-node fallback.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	ids := make([]int, len(g.nodeOrder))
	copy(ids, g.nodeOrder)
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeOrder)
}

// SetPosition moves node id. Positions are presentation-only.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
func (g *Graph) SetPosition(id int, pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Position = pos

	return nil
}
