// SPDX-License-Identifier: MIT
// File: log.go
// Role: Append-only Builder and the frozen Log it produces.
// Policy:
//   - Builder.Append deep-copies the edge and snapshot it is handed; engines may keep mutating their live state.
//   - Freeze is one-shot. Appending afterwards is a programmer error and panics.
//   - Log accessors hand out independent copies; a Log never changes after Freeze.

package steplog

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mststep/core"
)

// Builder accumulates Steps during one engine run.
type Builder struct {
	meta    Meta
	steps   []Step
	warning error
	frozen  bool
}

// NewBuilder starts a new log for the given run description.
func NewBuilder(meta Meta) *Builder {
	return &Builder{meta: meta, steps: make([]Step, 0, 4*meta.EdgeCount+2)}
}

// Append records one step. edge may be nil; snapshot may be nil only for
// narration that has no auxiliary state. Both are deep-copied.
//
// Complexity: O(size of snapshot).
func (b *Builder) Append(action Action, edge *core.Edge, narrative string, snapshot Snapshot) {
	if b.frozen {
		panic("steplog: Append after Freeze")
	}
	s := Step{
		Index:     len(b.steps),
		Action:    action,
		Edge:      edge,
		Narrative: narrative,
		Snapshot:  snapshot,
	}
	b.steps = append(b.steps, s.clone())
}

// Warn attaches a non-fatal warning to the run. The last call wins.
func (b *Builder) Warn(err error) { b.warning = err }

// Len returns the number of steps appended so far.
func (b *Builder) Len() int { return len(b.steps) }

// Freeze returns the immutable Log and stamps it with a fresh run ID.
func (b *Builder) Freeze() *Log {
	if b.frozen {
		panic("steplog: Freeze called twice")
	}
	b.frozen = true

	return &Log{
		runID:   uuid.New(),
		meta:    b.meta,
		steps:   b.steps,
		warning: b.warning,
	}
}

// Log is an ordered, immutable sequence of Steps produced by exactly one engine run.
type Log struct {
	runID   uuid.UUID
	meta    Meta
	steps   []Step
	warning error
}

// RunID identifies the run; a renderer can use it to notice that the log was replaced.
func (l *Log) RunID() uuid.UUID { return l.runID }

// Meta returns the run description.
func (l *Log) Meta() Meta { return l.meta }

// Warning returns the non-fatal warning recorded during the run, if any
// (e.g. the Prim start node was substituted).
func (l *Log) Warning() error { return l.warning }

// Len returns the number of steps.
func (l *Log) Len() int { return len(l.steps) }

// At returns an independent copy of step i.
func (l *Log) At(i int) (Step, bool) {
	if i < 0 || i >= len(l.steps) {
		return Step{}, false
	}

	return l.steps[i].clone(), true
}

// Steps returns independent copies of all steps.
// Complexity: O(total snapshot size).
func (l *Log) Steps() []Step {
	out := make([]Step, len(l.steps))
	for i, s := range l.steps {
		out[i] = s.clone()
	}

	return out
}

// Effect reports, for step i, the edge whose InMST flag the step sets.
// ok is false for every action other than ActionAddEdge, and for out-of-range i.
// Complexity: O(1).
func (l *Log) Effect(i int) (edgeID string, ok bool) {
	e, ok := l.EffectEdge(i)
	if !ok {
		return "", false
	}

	return e.ID, true
}

// EffectEdge is Effect returning a copy of the whole edge. The step's snapshot
// is not copied.
// Complexity: O(1).
func (l *Log) EffectEdge(i int) (core.Edge, bool) {
	if i < 0 || i >= len(l.steps) {
		return core.Edge{}, false
	}
	s := l.steps[i]
	if s.Action != ActionAddEdge || s.Edge == nil || s.Edge.ID == "" {
		return core.Edge{}, false
	}

	return *s.Edge, true
}

// AddedEdges returns the edges of every ActionAddEdge step, in log order.
func (l *Log) AddedEdges() []core.Edge {
	out := make([]core.Edge, 0, l.meta.NodeCount)
	for _, s := range l.steps {
		if s.Action == ActionAddEdge && s.Edge != nil {
			out = append(out, *s.Edge)
		}
	}

	return out
}

// TotalWeight sums the weights of AddedEdges.
func (l *Log) TotalWeight() int64 {
	var total int64
	for _, e := range l.AddedEdges() {
		total += e.Weight
	}

	return total
}

// Outcome classifies the run: spanning tree, forest (disconnected input) or empty.
func (l *Log) Outcome() Outcome {
	return Classify(l.meta.NodeCount, len(l.AddedEdges()))
}

// Count returns how many steps carry action a.
func (l *Log) Count(a Action) int {
	n := 0
	for _, s := range l.steps {
		if s.Action == a {
			n++
		}
	}

	return n
}
