// Package core provides the in-memory GraphModel read by the MST engines and
// replayed against by the navigator.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, weighted edges only; weights are integers >= 1.
//   - No self-loops, no parallel edges: at most one edge per unordered pair.
//   - Node IDs are caller-chosen integers, stable for the graph's lifetime.
//   - Stable textual Edge.ID generation ("e1", "e2", …).
//   - Insertion order is preserved for nodes, edges and incidence lists.
//     Engines inherit their tie-break order from it.
//   - One sync.RWMutex guards the catalogs.
//
// MST membership:
//
//	Every Edge carries an InMST flag. The set of flagged edges is the MST view
//	(MSTEdges, TotalWeight); it is derived, never stored separately. Only the
//	navigator flips the flags during playback.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int, label string, pos Position) error // O(1)
//	HasNode(id int) bool                              // O(1)
//	Nodes() []Node                                    // O(V), insertion order
//	NodeIDs() []int                                   // O(V·log V), ascending
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight int64) (edgeID string, err error) // O(1)
//	EdgeBetween(a, b int) (Edge, error)                            // O(1)
//	Edges() []Edge                                                 // O(E), insertion order
//	Neighbors(id int) ([]Edge, error)                              // O(d), insertion order
//
//	// MST view
//	SetInMST(edgeID string, in bool) error // O(1)
//	ClearMST()                             // O(E)
//	MSTEdges() []Edge                      // O(E)
//	TotalWeight() int64                    // O(E)
//
//	// Cloning
//	Clone() *Graph // O(V+E)
//
// Errors:
//
//	ErrDuplicateNode       – repeated node id
//	ErrNodeNotFound        – missing node
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – weight < 1
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – second edge over the same pair
package core
