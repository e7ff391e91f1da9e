// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order guarantees (Nodes/Edges/Neighbors), the ordering every engine tie-breaks on.
//   - Validate constraint enforcement (weights, loops, multi-edges, missing endpoints).
//   - Check the MST flag view and Clone independence.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/core"
)

// buildSquare constructs A(0) B(1) C(2) D(3) with A-B:1, B-C:2, C-D:3, A-D:10, A-C:5.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, l := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(i, l, core.Position{X: float64(i)}))
	}
	for _, e := range []struct {
		u, v int
		w    int64
	}{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {0, 3, 10}, {0, 2, 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// TestGraph_AddNode verifies duplicate rejection and label defaulting.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(7, "", core.Position{}))
	assert.ErrorIs(t, g.AddNode(7, "X", core.Position{}), core.ErrDuplicateNode)

	n, err := g.Node(7)
	require.NoError(t, err)
	assert.Equal(t, "7", n.Label)
	assert.Equal(t, "7", g.Label(7))
	assert.Equal(t, "42", g.Label(42))

	_, err = g.Node(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.True(t, g.HasNode(7))
	assert.False(t, g.HasNode(42))
}

// TestGraph_AddEdgeConstraints verifies every AddEdge sentinel.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, "A", core.Position{}))
	require.NoError(t, g.AddNode(1, "B", core.Position{}))

	_, err := g.AddEdge(0, 1, 0)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge(0, 0, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge(0, 9, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	eid, err := g.AddEdge(0, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	// The pair is unordered: B-A collides with A-B.
	_, err = g.AddEdge(1, 0, 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_Ordering pins insertion order for Nodes/Edges/Neighbors and ascending NodeIDs.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []int{3, 1, 2} {
		require.NoError(t, g.AddNode(id, "", core.Position{}))
	}
	_, _ = g.AddEdge(3, 2, 5)
	_, _ = g.AddEdge(1, 3, 5)

	var order []int
	for _, n := range g.Nodes() {
		order = append(order, n.ID)
	}
	assert.Equal(t, []int{3, 1, 2}, order)
	assert.Equal(t, []int{1, 2, 3}, g.NodeIDs())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e2", edges[1].ID)

	nb, err := g.Neighbors(3)
	require.NoError(t, err)
	require.Len(t, nb, 2)
	assert.Equal(t, 2, nb[0].Other(3))
	assert.Equal(t, 1, nb[1].Other(3))
	assert.True(t, nb[1].Touches(1))

	_, err = g.Neighbors(99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_MSTFlags verifies the derived MST view.
func TestGraph_MSTFlags(t *testing.T) {
	g := buildSquare(t)
	assert.Empty(t, g.MSTEdges())
	assert.Zero(t, g.TotalWeight())

	ab, err := g.EdgeBetween(1, 0)
	require.NoError(t, err)
	cd, err := g.EdgeBetween(2, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetInMST(cd.ID, true))
	require.NoError(t, g.SetInMST(ab.ID, true))
	assert.Equal(t, []string{ab.ID, cd.ID}, g.MSTEdgeIDs())
	assert.Equal(t, int64(4), g.TotalWeight())

	assert.ErrorIs(t, g.SetInMST("e99", true), core.ErrEdgeNotFound)

	g.ClearMST()
	assert.Empty(t, g.MSTEdges())
}

// TestGraph_Clone verifies the clone is deep and continues the edge ID sequence.
func TestGraph_Clone(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.SetInMST("e1", true))

	c := g.Clone()
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.Nodes(), c.Nodes())

	c.ClearMST()
	require.NoError(t, c.SetPosition(0, core.Position{X: 99}))
	assert.Equal(t, []string{"e1"}, g.MSTEdgeIDs(), "source flags untouched")
	n, _ := g.Node(0)
	assert.Zero(t, n.Position.X)

	require.NoError(t, c.AddNode(4, "E", core.Position{}))
	eid, err := c.AddEdge(3, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, "e6", eid)
	assert.Equal(t, 5, g.EdgeCount())
}
