// SPDX-License-Identifier: MIT
// Package steplog defines the ordered, immutable record of an MST run: one Step
// per algorithmic decision, each carrying a deep copy of the engine's auxiliary
// state (frontier and visited set for Prim, remaining edges and partition for Kruskal).
package steplog

import (
	"github.com/katalvlaran/mststep/core"
)

// Action classifies a Step.
type Action int

const (
	// ActionNone marks bookkeeping or narration-only steps ("frontier updated", "done").
	ActionNone Action = iota
	// ActionConsiderEdge marks the dequeue/selection of the next candidate edge.
	ActionConsiderEdge
	// ActionAddEdge marks the acceptance of an edge into the tree.
	ActionAddEdge
	// ActionDiscardEdge marks the rejection of a candidate edge.
	ActionDiscardEdge
)

// String returns the lower-camel name of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionConsiderEdge:
		return "considerEdge"
	case ActionAddEdge:
		return "addEdge"
	case ActionDiscardEdge:
		return "discardEdge"
	default:
		return "unknown"
	}
}

// Outcome classifies a finished run (or a fully replayed navigator).
type Outcome int

const (
	// OutcomeEmpty means the graph had a single node: nothing to span.
	OutcomeEmpty Outcome = iota
	// OutcomeSpanningTree means nodeCount-1 edges were accepted.
	OutcomeSpanningTree
	// OutcomeForest means fewer than nodeCount-1 edges were accepted: the graph is disconnected.
	OutcomeForest
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "empty"
	case OutcomeSpanningTree:
		return "spanning-tree"
	case OutcomeForest:
		return "forest"
	default:
		return "unknown"
	}
}

// Classify derives the outcome of accepting accepted edges on a graph of nodeCount nodes.
func Classify(nodeCount, accepted int) Outcome {
	switch {
	case nodeCount <= 1:
		return OutcomeEmpty
	case accepted >= nodeCount-1:
		return OutcomeSpanningTree
	default:
		return OutcomeForest
	}
}

// Snapshot is the algorithm-specific auxiliary state recorded at the end of a Step.
// Implementations are PrimSnapshot and KruskalSnapshot.
type Snapshot interface {
	// Clone returns a deep, independent copy.
	Clone() Snapshot

	isSnapshot()
}

// FrontierEntry is one candidate edge in Prim's priority frontier.
type FrontierEntry struct {
	Edge   core.Edge
	Weight int64
}

// PrimSnapshot is Prim's frontier (ascending by weight, stable) plus the visited set (ascending ids).
type PrimSnapshot struct {
	Frontier []FrontierEntry
	Visited  []int
}

// Clone returns a deep copy of s.
func (s PrimSnapshot) Clone() Snapshot {
	out := PrimSnapshot{
		Frontier: make([]FrontierEntry, len(s.Frontier)),
		Visited:  make([]int, len(s.Visited)),
	}
	copy(out.Frontier, s.Frontier)
	copy(out.Visited, s.Visited)

	return out
}

func (PrimSnapshot) isSnapshot() {}

// KruskalSnapshot is the not-yet-considered suffix of the sorted edge list plus
// the union-find partition, grouped per root in first-encounter order of ascending node ids.
type KruskalSnapshot struct {
	Remaining []core.Edge
	Partition [][]int
}

// Clone returns a deep copy of s.
func (s KruskalSnapshot) Clone() Snapshot {
	out := KruskalSnapshot{
		Remaining: make([]core.Edge, len(s.Remaining)),
		Partition: make([][]int, len(s.Partition)),
	}
	copy(out.Remaining, s.Remaining)
	for i, set := range s.Partition {
		out.Partition[i] = make([]int, len(set))
		copy(out.Partition[i], set)
	}

	return out
}

func (KruskalSnapshot) isSnapshot() {}

// Step is one immutable algorithmic event.
type Step struct {
	// Index is the position of the step in its Log (0-based).
	Index int

	// Action classifies the event.
	Action Action

	// Edge is the edge under consideration; nil for most ActionNone steps.
	Edge *core.Edge

	// Narrative is a human-readable description. It is never parsed.
	Narrative string

	// Snapshot is the auxiliary state after the step's action took effect.
	Snapshot Snapshot
}

// clone returns a deep copy of s.
func (s Step) clone() Step {
	out := s
	if s.Edge != nil {
		e := *s.Edge
		out.Edge = &e
	}
	if s.Snapshot != nil {
		out.Snapshot = s.Snapshot.Clone()
	}

	return out
}

// Meta describes the run that produced a Log.
type Meta struct {
	// Algorithm is the method name ("prim" or "kruskal").
	Algorithm string

	// StartNode is the node Prim actually started from (after any fallback); -1 for Kruskal.
	StartNode int

	// NodeCount and EdgeCount describe the input graph.
	NodeCount int
	EdgeCount int
}
