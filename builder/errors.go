// SPDX-License-Identifier: MIT
// Package: mststep/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with errors.Wrap / errors.Wrapf.

package builder

import (
	"github.com/pkg/errors"
)

// ErrTooFewVertices indicates that a size parameter is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates that more extra edges were requested than free node pairs exist.
var ErrTooManyEdges = errors.New("builder: too many edges requested")

// ErrConstructFailed indicates a programmer error in composition (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
