package navigator_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/builder"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/navigator"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/katalvlaran/mststep/steplog"
)

// buildSquare is A-B:1, B-C:2, C-D:3, A-D:10, A-C:5 (MST weight 6).
func buildSquare(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, label := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(i, label, core.Position{}))
	}
	for _, e := range [][3]int64{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {0, 3, 10}, {0, 2, 5}} {
		_, err := g.AddEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

// strategies enumerates both backward strategies.
var strategies = []struct {
	name string
	opts []navigator.Option
}{
	{"replay", nil},
	{"inverse", []navigator.Option{navigator.WithInverseUndo()}},
}

// expectedIDs returns the addEdge effects of log[0..k-1].
func expectedIDs(log *steplog.Log, k int) []string {
	out := []string{}
	for i := 0; i < k; i++ {
		if eid, ok := log.Effect(i); ok {
			out = append(out, eid)
		}
	}

	return out
}

// membership captures the observable MST state for byte-level comparison.
func membership(g *core.Graph) (string, int64) {
	return fmt.Sprint(g.MSTEdgeIDs()), g.TotalWeight()
}

func loaded(t *testing.T, g *core.Graph, method string, opts ...navigator.Option) *navigator.Navigator {
	t.Helper()
	log, err := prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod(method)))
	require.NoError(t, err)
	nav := navigator.New(g, opts...)
	nav.Load(log)

	return nav
}

func TestNavigator_MembershipMatchesPrefix(t *testing.T) {
	for _, st := range strategies {
		for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
			t.Run(st.name+"/"+method, func(t *testing.T) {
				g := buildSquare(t)
				nav := loaded(t, g, method, st.opts...)
				log := nav.Log()

				for k := 0; k <= log.Len(); k++ {
					require.NoError(t, nav.JumpTo(0))
					for i := 0; i < k; i++ {
						require.NoError(t, nav.StepForward())
						assert.ElementsMatch(t, expectedIDs(log, i+1), g.MSTEdgeIDs())
					}
					for i := k; i > 0; i-- {
						require.NoError(t, nav.StepBackward())
						assert.ElementsMatch(t, expectedIDs(log, i-1), g.MSTEdgeIDs())
					}
					assert.Empty(t, g.MSTEdgeIDs(), "k=%d", k)
					assert.Equal(t, 0, nav.Cursor())
				}
			})
		}
	}
}

func TestNavigator_ReplayIsIdempotent(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			g := buildSquare(t)
			nav := loaded(t, g, prim_kruskal.MethodKruskal, st.opts...)
			n := nav.Len()

			for k := 1; k <= n; k++ {
				for j := 0; j < k; j++ {
					require.NoError(t, nav.JumpTo(k))
					ids1, w1 := membership(g)
					view1 := nav.CurrentView()

					for nav.Cursor() > j {
						require.NoError(t, nav.StepBackward())
					}
					for nav.Cursor() < k {
						require.NoError(t, nav.StepForward())
					}
					ids2, w2 := membership(g)
					assert.Equal(t, ids1, ids2, "k=%d j=%d", k, j)
					assert.Equal(t, w1, w2)
					assert.Equal(t, view1.MSTEdges, nav.CurrentView().MSTEdges)
				}
			}
		})
	}
}

func TestNavigator_StrategiesAgree(t *testing.T) {
	g1, g2 := buildSquare(t), buildSquare(t)
	a := loaded(t, g1, prim_kruskal.MethodPrim)
	b := loaded(t, g2, prim_kruskal.MethodPrim, navigator.WithInverseUndo())

	moves := []int{3, 7, 2, 11, 0, 5, 4, 9}
	for _, k := range moves {
		require.NoError(t, a.JumpTo(k))
		require.NoError(t, b.JumpTo(k))
		assert.Equal(t, g1.MSTEdgeIDs(), g2.MSTEdgeIDs(), "k=%d", k)
		assert.Equal(t, a.CurrentView().TotalWeight, b.CurrentView().TotalWeight)
	}
}

func TestNavigator_Boundaries(t *testing.T) {
	g := buildSquare(t)
	nav := loaded(t, g, prim_kruskal.MethodKruskal)

	err := nav.StepBackward()
	assert.True(t, errors.Is(err, navigator.ErrAtStart))
	assert.True(t, errors.Is(err, navigator.ErrNavigationBoundary))
	assert.Equal(t, 0, nav.Cursor())

	require.NoError(t, nav.JumpTo(nav.Len()))
	ids, w := membership(g)
	err = nav.StepForward()
	assert.True(t, errors.Is(err, navigator.ErrAtEnd))
	assert.True(t, errors.Is(err, navigator.ErrNavigationBoundary))
	ids2, w2 := membership(g)
	assert.Equal(t, ids, ids2)
	assert.Equal(t, w, w2)

	err = nav.JumpTo(nav.Len() + 1)
	assert.True(t, errors.Is(err, navigator.ErrOutOfRange))
	err = nav.JumpTo(-1)
	assert.True(t, errors.Is(err, navigator.ErrNavigationBoundary))
	assert.Equal(t, nav.Len(), nav.Cursor())
}

func TestNavigator_NoLog(t *testing.T) {
	nav := navigator.New(core.NewGraph())
	assert.Equal(t, 0, nav.Len())
	assert.True(t, errors.Is(nav.StepForward(), navigator.ErrAtEnd))

	v := nav.CurrentView()
	assert.Equal(t, uuid.Nil, v.RunID)
	assert.Nil(t, v.Step)
}

func TestNavigator_CurrentView(t *testing.T) {
	g := buildSquare(t)
	nav := loaded(t, g, prim_kruskal.MethodKruskal)
	log := nav.Log()

	v := nav.CurrentView()
	assert.Equal(t, navigator.StatusNotStarted, v.Status)
	assert.Nil(t, v.Step)
	assert.Equal(t, log.RunID(), v.RunID)
	assert.Equal(t, log.Len(), v.Total)

	// Steps: 0 none, 1 consider A-B, 2 add A-B.
	require.NoError(t, nav.JumpTo(3))
	v = nav.CurrentView()
	assert.Equal(t, navigator.StatusRunning, v.Status)
	require.NotNil(t, v.Step)
	assert.Equal(t, steplog.ActionAddEdge, v.Step.Action)
	assert.IsType(t, steplog.KruskalSnapshot{}, v.Step.Snapshot)
	require.Len(t, v.MSTEdges, 1)
	assert.True(t, v.MSTEdges[0].InMST)
	assert.Equal(t, int64(1), v.TotalWeight)

	require.NoError(t, nav.JumpTo(nav.Len()))
	v = nav.CurrentView()
	assert.Equal(t, navigator.StatusComplete, v.Status)
	assert.Equal(t, steplog.OutcomeSpanningTree, v.Outcome)
	assert.Equal(t, int64(6), v.TotalWeight)
	assert.Equal(t, g.TotalWeight(), v.TotalWeight)
}

func TestNavigator_ForestSurfaced(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Path(2))
	require.NoError(t, err)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		nav := loaded(t, g, method)
		require.NoError(t, nav.JumpTo(nav.Len()))
		v := nav.CurrentView()
		assert.Equal(t, navigator.StatusComplete, v.Status)
		assert.Equal(t, steplog.OutcomeForest, v.Outcome, method)
		assert.Len(t, v.MSTEdges, 3)
	}
}

func TestNavigator_LoadAndReset(t *testing.T) {
	g := buildSquare(t)
	nav := loaded(t, g, prim_kruskal.MethodKruskal, navigator.WithInverseUndo())
	require.NoError(t, nav.JumpTo(nav.Len()))
	require.NotEmpty(t, g.MSTEdgeIDs())

	log, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	nav.Load(log)
	assert.Equal(t, 0, nav.Cursor())
	assert.Empty(t, g.MSTEdgeIDs())
	assert.Same(t, log, nav.Log())
	assert.True(t, errors.Is(nav.StepBackward(), navigator.ErrAtStart))

	require.NoError(t, nav.StepForward())
	nav.Reset()
	assert.Nil(t, nav.Log())
	assert.Equal(t, 0, nav.Len())
	assert.Empty(t, g.MSTEdgeIDs())
}

func TestNavigator_ForeignLogFails(t *testing.T) {
	log, err := prim_kruskal.Kruskal(buildSquare(t))
	require.NoError(t, err)

	// Path(2) only has e1; the square log also accepts e2 and e3.
	other, err := builder.BuildGraph(nil, builder.Path(2))
	require.NoError(t, err)
	nav := navigator.New(other)
	nav.Load(log)

	var stepErr error
	for stepErr == nil {
		stepErr = nav.StepForward()
	}
	assert.True(t, errors.Is(stepErr, core.ErrEdgeNotFound))
	assert.False(t, errors.Is(stepErr, navigator.ErrNavigationBoundary))
}

func TestNavigator_FailedMoveKeepsState(t *testing.T) {
	log, err := prim_kruskal.Kruskal(buildSquare(t))
	require.NoError(t, err)

	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			// Path(2) has e1 (A-B) only: steps 0..4 apply, step 5 adds e2 and fails.
			other, err := builder.BuildGraph(nil, builder.Path(2))
			require.NoError(t, err)
			nav := navigator.New(other, st.opts...)
			nav.Load(log)
			require.NoError(t, nav.JumpTo(3))
			ids, weight := membership(other)

			err = nav.JumpTo(log.Len())
			assert.True(t, errors.Is(err, core.ErrEdgeNotFound))
			assert.Equal(t, 3, nav.Cursor())
			gotIDs, gotWeight := membership(other)
			assert.Equal(t, ids, gotIDs)
			assert.Equal(t, weight, gotWeight)
			assert.Equal(t, []string{"e1"}, other.MSTEdgeIDs())
			assert.Len(t, nav.CurrentView().MSTEdges, 1)

			// The navigator stays usable from where it was.
			require.NoError(t, nav.StepBackward())
			assert.Equal(t, 2, nav.Cursor())
			require.NoError(t, nav.JumpTo(5))
			err = nav.StepForward()
			assert.True(t, errors.Is(err, core.ErrEdgeNotFound))
			assert.Equal(t, 5, nav.Cursor())
			assert.Equal(t, []string{"e1"}, other.MSTEdgeIDs())
		})
	}
}
