// Package prim_kruskal provides two step-recording algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// Instead of returning only the final edge set, each engine returns a *steplog.Log: an ordered,
// immutable list of decisions (consider / add / discard / bookkeeping), each carrying a deep copy of
// the engine's auxiliary state at that moment. The navigator package replays such a log forward and
// backward for teaching.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (*steplog.Log, error)
//
//   - Strategy: Sort all edges by weight (stable), then iterate from smallest to largest, merging
//     components with a disjoint-set forest and discarding edges whose endpoints are already connected.
//     Stops once |V|−1 edges are accepted or the list is exhausted.
//
//   - Snapshot: the not-yet-considered suffix of the sorted list and the partition, grouped by root in
//     first-encounter order of ascending node IDs.
//
//   - Prim(g *core.Graph, start int, opts ...Option) (*steplog.Log, error)
//
//   - Strategy: Grow a tree from start. The frontier holds edges with one visited endpoint and is kept
//     sorted by weight with a stable sort after every push. Entries that turn stale (both endpoints
//     visited) are not deduplicated: they are popped, considered, and discarded, so the narrative
//     shows them.
//
//   - Snapshot: the full frontier and the visited set.
//
//   - Disconnected graphs: by default Prim restarts from the lowest unvisited node when its frontier
//     empties, yielding a spanning forest like Kruskal. WithComponentOnly() stops at the start node's
//     component instead.
//
// Determinism
//
//   - core.Graph keeps edges in insertion order; both engines sort with sort.SliceStable, so equal
//     weights break ties by insertion order. Prim pushes incident edges in insertion order.
//   - Every run is a pure function of the input graph (and start node).
//
// Error Conditions
//
// ErrInvalidInput is the root class; no log is returned for:
//
//   - ErrEmptyGraph: graph is nil or has no nodes.
//   - ErrUnknownMethod: Compute was asked for an unknown method.
//
// ErrStartNodeNotFound is a warning, attached to the log (Log.Warning()) and logged with klog.
// Prim substitutes the first node of graph.Nodes().
//
// Disconnected input is not an error: the log's Outcome() reports steplog.OutcomeForest.
package prim_kruskal
