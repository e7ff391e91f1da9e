// SPDX-License-Identifier: MIT
// Package session ties one working graph to the engines, a Navigator and a Player:
// the caller hands in a graph, picks an algorithm, and then steps or plays the result.
//
// The session owns a clone of the caller's graph, so replay never touches the original.
package session

import (
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/navigator"
	"github.com/katalvlaran/mststep/playback"
	"github.com/katalvlaran/mststep/prim_kruskal"
	"github.com/katalvlaran/mststep/steplog"
)

// ErrNilGraph indicates New was given no graph.
var ErrNilGraph = errors.New("session: graph is nil")

// config collects the pass-through options.
type config struct {
	navOpts    []navigator.Option
	playerOpts []playback.Option
}

// Option configures a Session.
type Option func(c *config)

// WithInterval sets the auto-play tick period.
func WithInterval(d time.Duration) Option {
	return func(c *config) { c.playerOpts = append(c.playerOpts, playback.WithInterval(d)) }
}

// WithClock substitutes the playback tick source.
func WithClock(clock playback.Clock) Option {
	return func(c *config) { c.playerOpts = append(c.playerOpts, playback.WithClock(clock)) }
}

// WithObserver registers a playback observer.
func WithObserver(fn func(playback.Event)) Option {
	return func(c *config) { c.playerOpts = append(c.playerOpts, playback.WithObserver(fn)) }
}

// WithInverseUndo selects the O(1) backward strategy of the Navigator.
func WithInverseUndo() Option {
	return func(c *config) { c.navOpts = append(c.navOpts, navigator.WithInverseUndo()) }
}

// Session is a working graph plus its replay machinery.
type Session struct {
	graph  *core.Graph
	nav    *navigator.Navigator
	player *playback.Player
}

// New clones g and wires a Navigator and a Player around the copy.
//
// Error Conditions:
//   - ErrNilGraph: g is nil.
//   - playback.ErrInvalidInterval: WithInterval(d) with d <= 0.
func New(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	work := g.Clone()
	work.ClearMST()
	nav := navigator.New(work, cfg.navOpts...)
	player, err := playback.New(nav, cfg.playerOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "session")
	}

	return &Session{graph: work, nav: nav, player: player}, nil
}

// Run pauses playback, computes a log with the given engine options and loads it.
// The previous log is discarded and MST membership reset.
//
// warning is non-nil when the run succeeded with a substitution
// (prim_kruskal.ErrStartNodeNotFound). err wraps prim_kruskal.ErrInvalidInput
// on failure, in which case nothing is loaded and the previous log is kept.
func (s *Session) Run(opts ...prim_kruskal.Option) (warning error, err error) {
	s.player.Pause()

	log, err := prim_kruskal.Compute(s.graph, prim_kruskal.NewOptions(opts...))
	if err != nil {
		return nil, errors.Wrap(err, "session: run")
	}
	s.nav.Load(log)
	if w := log.Warning(); w != nil {
		klog.Warningf("session: %v", w)
		return w, nil
	}

	return nil, nil
}

// Graph returns the working copy.
func (s *Session) Graph() *core.Graph { return s.graph }

// Navigator returns the session's Navigator. Use Player for stepping while auto-play may be active.
func (s *Session) Navigator() *navigator.Navigator { return s.nav }

// Player returns the auto-play driver.
func (s *Session) Player() *playback.Player { return s.player }

// Log returns the loaded log, or nil.
func (s *Session) Log() *steplog.Log { return s.nav.Log() }

// View returns the Navigator's current view.
func (s *Session) View() navigator.View { return s.nav.CurrentView() }
