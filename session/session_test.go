package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mststep/builder"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/navigator"
	"github.com/katalvlaran/mststep/playback"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/katalvlaran/mststep/session"
	"github.com/katalvlaran/mststep/steplog"
)

func forest(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
		builder.Path(3), builder.Path(2),
	)
	require.NoError(t, err)

	return g
}

func TestSession_RunAndStep(t *testing.T) {
	g := forest(t)
	s, err := session.New(g)
	require.NoError(t, err)

	warning, err := s.Run(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(0))
	require.NoError(t, err)
	assert.NoError(t, warning)
	require.NotNil(t, s.Log())

	require.NoError(t, s.Navigator().JumpTo(s.Log().Len()))
	v := s.View()
	assert.Equal(t, navigator.StatusComplete, v.Status)
	assert.Equal(t, steplog.OutcomeForest, v.Outcome)
	assert.Equal(t, int64(6), v.TotalWeight)

	// The caller's graph is never touched.
	assert.Empty(t, g.MSTEdges())
	assert.Len(t, s.Graph().MSTEdges(), 3)
}

func TestSession_RunReplacesLog(t *testing.T) {
	s, err := session.New(forest(t))
	require.NoError(t, err)

	_, err = s.Run()
	require.NoError(t, err)
	first := s.Log()
	require.NoError(t, s.Navigator().JumpTo(first.Len()))

	_, err = s.Run(prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	require.NoError(t, err)
	assert.NotEqual(t, first.RunID(), s.Log().RunID())
	assert.Equal(t, 0, s.Navigator().Cursor())
	assert.Empty(t, s.Graph().MSTEdges())
}

func TestSession_StartFallbackWarning(t *testing.T) {
	s, err := session.New(forest(t))
	require.NoError(t, err)

	warning, err := s.Run(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(99))
	require.NoError(t, err)
	assert.True(t, errors.Is(warning, prim_kruskal.ErrStartNodeNotFound))
	assert.Equal(t, 0, s.Log().Meta().StartNode)
}

func TestSession_InvalidInputKeepsPreviousLog(t *testing.T) {
	s, err := session.New(forest(t))
	require.NoError(t, err)
	_, err = s.Run()
	require.NoError(t, err)
	prev := s.Log()

	_, err = s.Run(prim_kruskal.WithMethod("bogus"))
	assert.True(t, errors.Is(err, prim_kruskal.ErrInvalidInput))
	assert.Same(t, prev, s.Log())

	empty, err := session.New(core.NewGraph())
	require.NoError(t, err)
	_, err = empty.Run()
	assert.True(t, errors.Is(err, prim_kruskal.ErrEmptyGraph))
	assert.Nil(t, empty.Log())
}

func TestSession_NewErrors(t *testing.T) {
	_, err := session.New(nil)
	assert.True(t, errors.Is(err, session.ErrNilGraph))

	_, err = session.New(forest(t), session.WithInterval(0))
	assert.True(t, errors.Is(err, playback.ErrInvalidInterval))
}

func TestSession_PlayToCompletion(t *testing.T) {
	finished := make(chan struct{})
	s, err := session.New(forest(t),
		session.WithInverseUndo(),
		session.WithInterval(time.Millisecond),
		session.WithObserver(func(e playback.Event) {
			if e.Kind == playback.EventFinished {
				close(finished)
			}
		}),
	)
	require.NoError(t, err)
	_, err = s.Run()
	require.NoError(t, err)

	require.NoError(t, s.Player().Play(context.Background()))
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("playback did not finish")
	}
	v := s.View()
	assert.Equal(t, navigator.StatusComplete, v.Status)
	assert.Len(t, v.MSTEdges, 3)

	require.NoError(t, s.Player().StepBackward())
	assert.Equal(t, s.Log().Len()-1, s.Navigator().Cursor())
}
