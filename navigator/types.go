// SPDX-License-Identifier: MIT
// Package navigator replays a frozen steplog.Log against a core.Graph, one step at a time.
//
// This file declares the Navigator, its options, the View handed to renderers and
// the boundary sentinels.
//
// Errors:
//
//	ErrNavigationBoundary - root of every boundary report; no state changes.
//	ErrAtEnd              - StepForward with the cursor at Len().
//	ErrAtStart            - StepBackward with the cursor at 0.
//	ErrOutOfRange         - JumpTo outside [0, Len()].
package navigator

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// ErrNavigationBoundary is the root of every non-fatal boundary report.
var ErrNavigationBoundary = errors.New("navigator: navigation boundary")

// ErrAtEnd is returned by StepForward when every step has been applied.
var ErrAtEnd = errors.WithMessage(ErrNavigationBoundary, "at end of log")

// ErrAtStart is returned by StepBackward when no step has been applied.
var ErrAtStart = errors.WithMessage(ErrNavigationBoundary, "at start of log")

// ErrOutOfRange is returned by JumpTo for a target outside [0, Len()].
var ErrOutOfRange = errors.WithMessage(ErrNavigationBoundary, "cursor out of range")

// Status tells a renderer where the cursor stands.
type Status int

const (
	// StatusNotStarted means no step has been applied (cursor 0).
	StatusNotStarted Status = iota
	// StatusRunning means some but not all steps have been applied.
	StatusRunning
	// StatusComplete means the cursor is at Len(); the total weight is final.
	StatusComplete
)

// String returns "not-started", "running" or "complete".
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusRunning:
		return "running"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// View is everything a renderer needs to redraw after a transition.
type View struct {
	Status Status
	Cursor int
	Total  int

	// Step is a copy of the most recently applied step; nil when not started.
	Step *steplog.Step

	// MSTEdges are the accepted edges in acceptance order.
	MSTEdges []core.Edge

	// TotalWeight is the sum of MSTEdges weights.
	TotalWeight int64

	// Outcome is set only when Status is StatusComplete. OutcomeForest means the
	// graph is disconnected and MSTEdges spans fewer than nodeCount-1 edges.
	Outcome steplog.Outcome

	// RunID identifies the loaded log; uuid.Nil when none is loaded.
	RunID uuid.UUID
}

// Option configures a Navigator.
type Option func(n *Navigator)

// WithInverseUndo makes StepBackward pop a recorded inverse action instead of
// replaying the log prefix. Observable results are identical; backward steps become O(1).
func WithInverseUndo() Option {
	return func(n *Navigator) {
		n.undo = arraystack.New()
	}
}

// Navigator holds a log, a cursor and the graph whose InMST flags it drives.
//
// Invariant: after every operation the graph's InMST flags are exactly the
// addEdge effects of log[0..cursor-1].
//
// A Navigator is single-owner; callers serialize access (playback does).
type Navigator struct {
	g      *core.Graph
	log    *steplog.Log
	cursor int

	// tree mirrors the InMST flags in acceptance order.
	tree []core.Edge

	// undo holds one inverse record per applied step; nil selects full replay.
	undo *arraystack.Stack
}

// inverse undoes one step: it clears edgeID's flag, or does nothing when edgeID is "".
type inverse struct {
	edgeID string
}

// New creates a Navigator over g with no log loaded.
func New(g *core.Graph, opts ...Option) *Navigator {
	n := &Navigator{g: g}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
