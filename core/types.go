// SPDX-License-Identifier: MIT
// Package core defines the Graph, Node and Edge types analysed by the MST
// engines, and the MST-membership flags the navigator toggles during replay.
//
// This file declares Node, Position, Edge, Graph, GraphOption, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateNode       - node id already present.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - edge weight below 1.
//	ErrLoopNotAllowed      - edge endpoints are equal.
//	ErrMultiEdgeNotAllowed - second edge over the same unordered pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates that a node with the same ID already exists.
	ErrDuplicateNode = errors.New("core: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight below MinWeight.
	ErrBadWeight = errors.New("core: edge weight must be >= 1")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// MinWeight is the smallest admissible edge weight.
const MinWeight int64 = 1

// Position is a presentation-only coordinate. The algorithmic packages never read it.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Node represents a vertex of the graph.
//
// ID is unique and stable for the graph's lifetime.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID int

	// Label is the human-readable name used in narratives ("A", "B", ...).
	Label string

	// Position is where a renderer draws the node.
	Position Position
}

// Edge is an undirected, weighted connection between two distinct nodes.
//
// From/To carry the insertion orientation only; the pair is unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as given to AddEdge.
	From int

	// To is the second endpoint as given to AddEdge.
	To int

	// Weight is the cost of the edge (>= MinWeight).
	Weight int64

	// InMST reports whether the edge currently belongs to the displayed tree.
	// Only the navigator writes it, through SetInMST/ClearMST.
	InMST bool
}

// Other returns the endpoint opposite to id.
// If id is not an endpoint, From is returned.
func (e Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Touches reports whether id is one of the edge's endpoints.
func (e Edge) Touches(id int) bool { return e.From == id || e.To == id }

// pairKey is the normalized unordered endpoint pair used for uniqueness checks.
type pairKey struct{ lo, hi int }

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and edge catalogs.
// Negative values are treated as zero.
func WithCapacity(nodes, edges int) GraphOption {
	return func(g *Graph) {
		if nodes < 0 {
			nodes = 0
		}
		if edges < 0 {
			edges = 0
		}
		g.nodeCap, g.edgeCap = nodes, edges
	}
}

// Graph is the in-memory GraphModel.
//
// Nodes and edges are kept in insertion order; that order is the
// tie-break order every engine relies on. mu guards all catalogs.
type Graph struct {
	mu sync.RWMutex

	nodeCap, edgeCap int

	// Storage
	edgeSeq   uint64           // monotonic edge ID generator
	nodeOrder []int            // node IDs in insertion order
	nodes     map[int]*Node    // node ID → Node
	edgeOrder []string         // edge IDs in insertion order
	edges     map[string]*Edge // edge ID → Edge

	// pairs[{lo,hi}] = edge ID; enforces at most one edge per unordered pair.
	pairs map[pairKey]string

	// incident[nodeID] = edge IDs in insertion order.
	incident map[int][]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any pre-sizing requested via WithCapacity.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodeOrder = make([]int, 0, g.nodeCap)
	g.nodes = make(map[int]*Node, g.nodeCap)
	g.edgeOrder = make([]string, 0, g.edgeCap)
	g.edges = make(map[string]*Edge, g.edgeCap)
	g.pairs = make(map[pairKey]string, g.edgeCap)
	g.incident = make(map[int][]string, g.nodeCap)

	return g
}
