// SPDX-License-Identifier: MIT
// Package prim_kruskal defines configuration options and sentinel errors for the
// step-recording MST engines. It supports selecting between Kruskal and Prim via MSTOptions.
package prim_kruskal

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// ErrInvalidInput is the root of every error that aborts log generation.
// No partial log is ever returned together with it.
var ErrInvalidInput = errors.New("prim_kruskal: invalid input")

// ErrEmptyGraph indicates that the graph is nil or has no nodes.
var ErrEmptyGraph = errors.WithMessage(ErrInvalidInput, "graph has no nodes")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.WithMessage(ErrInvalidInput, "unknown MST method")

// ErrStartNodeNotFound is a warning, not a failure: Prim substituted the first
// node of the node list for a start node that does not exist. It is attached to
// the produced log (steplog.Log.Warning) and never returned as the error value.
var ErrStartNodeNotFound = errors.New("prim_kruskal: start node not found")

// MethodPrim selects Prim's algorithm (grow from a start node over a sorted frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, where to start.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method        string - one of MethodPrim or MethodKruskal.
//	Root          int    - start node for Prim; meaningful only when RootSet.
//	RootSet       bool   - false means "start at the first node", without a warning.
//	ComponentOnly bool   - Prim stops when its frontier empties instead of restarting
//	                       in the next unvisited component.
//
// Complexity: O(E log E) per frontier re-sort for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the start node for Prim. Unused by Kruskal.
	Root int

	// RootSet reports whether Root was chosen by the caller.
	RootSet bool

	// ComponentOnly restricts Prim to the start node's component.
	ComponentOnly bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets Prim's start node; Kruskal ignores it.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.RootSet = true
	}
}

// WithComponentOnly keeps Prim inside the start node's component: on a
// disconnected graph the run ends with the frontier empty and a partial tree.
func WithComponentOnly() Option {
	return func(opts *MSTOptions) {
		opts.ComponentOnly = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method  = MethodKruskal
//	– RootSet = false (Prim would start at the first node).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST engine based on opts.Method.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim over opts.Root (first node when !opts.RootSet).
//	– Otherwise:     ErrUnknownMethod.
//
// Returns the frozen step log, or an error wrapping ErrInvalidInput and a nil log.
func Compute(graph *core.Graph, opts MSTOptions) (*steplog.Log, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return prim(graph, opts)
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "method %q", opts.Method)
	}
}
