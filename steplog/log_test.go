package steplog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// TestBuilder_SnapshotIsDeepCopy verifies that mutating live engine state after
// Append never leaks into an emitted step.
func TestBuilder_SnapshotIsDeepCopy(t *testing.T) {
	b := steplog.NewBuilder(steplog.Meta{Algorithm: "kruskal", NodeCount: 3, EdgeCount: 2})

	live := steplog.KruskalSnapshot{
		Remaining: []core.Edge{{ID: "e1", From: 0, To: 1, Weight: 1}},
		Partition: [][]int{{0}, {1}, {2}},
	}
	edge := &core.Edge{ID: "e1", From: 0, To: 1, Weight: 1}
	b.Append(steplog.ActionConsiderEdge, edge, "consider", live)

	live.Remaining[0].Weight = 99
	live.Partition[0][0] = 42
	edge.Weight = 77

	log := b.Freeze()
	s, ok := log.At(0)
	require.True(t, ok)
	snap, ok := s.Snapshot.(steplog.KruskalSnapshot)
	require.True(t, ok)
	assert.Equal(t, int64(1), snap.Remaining[0].Weight)
	assert.Equal(t, 0, snap.Partition[0][0])
	assert.Equal(t, int64(1), s.Edge.Weight)

	// Copies handed out by At are independent too.
	snap.Partition[1][0] = 5
	again, _ := log.At(0)
	assert.Equal(t, 1, again.Snapshot.(steplog.KruskalSnapshot).Partition[1][0])
}

// TestBuilder_Freeze verifies one-shot freezing and run metadata.
func TestBuilder_Freeze(t *testing.T) {
	b := steplog.NewBuilder(steplog.Meta{Algorithm: "prim", NodeCount: 2})
	warn := errors.New("fallback")
	b.Warn(warn)
	b.Append(steplog.ActionNone, nil, "start", steplog.PrimSnapshot{Visited: []int{0}})
	assert.Equal(t, 1, b.Len())

	log := b.Freeze()
	assert.ErrorIs(t, log.Warning(), warn)
	assert.NotEqual(t, log.RunID().String(), steplog.NewBuilder(steplog.Meta{}).Freeze().RunID().String())
	assert.Equal(t, "prim", log.Meta().Algorithm)

	assert.Panics(t, func() { b.Append(steplog.ActionNone, nil, "late", nil) })
	assert.Panics(t, func() { b.Freeze() })

	_, ok := log.At(1)
	assert.False(t, ok)
	_, ok = log.At(-1)
	assert.False(t, ok)
}

// TestLog_EffectsAndOutcome verifies the derived views used by the navigator.
func TestLog_EffectsAndOutcome(t *testing.T) {
	b := steplog.NewBuilder(steplog.Meta{Algorithm: "kruskal", NodeCount: 3, EdgeCount: 3})
	ab := &core.Edge{ID: "e1", From: 0, To: 1, Weight: 2}
	bc := &core.Edge{ID: "e2", From: 1, To: 2, Weight: 3}
	b.Append(steplog.ActionConsiderEdge, ab, "", nil)
	b.Append(steplog.ActionAddEdge, ab, "", nil)
	b.Append(steplog.ActionDiscardEdge, bc, "", nil)
	log := b.Freeze()

	eid, ok := log.Effect(1)
	assert.True(t, ok)
	assert.Equal(t, "e1", eid)
	_, ok = log.Effect(0)
	assert.False(t, ok)
	_, ok = log.Effect(2)
	assert.False(t, ok)
	_, ok = log.Effect(3)
	assert.False(t, ok)

	e, ok := log.EffectEdge(1)
	require.True(t, ok)
	assert.Equal(t, *ab, e)
	_, ok = log.EffectEdge(2)
	assert.False(t, ok)
	_, ok = log.EffectEdge(-1)
	assert.False(t, ok)

	assert.Equal(t, int64(2), log.TotalWeight())
	assert.Equal(t, steplog.OutcomeForest, log.Outcome())
	assert.Equal(t, 1, log.Count(steplog.ActionAddEdge))
	assert.Len(t, log.Steps(), 3)
}

// TestClassify pins the outcome table.
func TestClassify(t *testing.T) {
	assert.Equal(t, steplog.OutcomeEmpty, steplog.Classify(1, 0))
	assert.Equal(t, steplog.OutcomeEmpty, steplog.Classify(0, 0))
	assert.Equal(t, steplog.OutcomeSpanningTree, steplog.Classify(4, 3))
	assert.Equal(t, steplog.OutcomeForest, steplog.Classify(5, 3))
	assert.Equal(t, "forest", steplog.OutcomeForest.String())
	assert.Equal(t, "addEdge", steplog.ActionAddEdge.String())
}
