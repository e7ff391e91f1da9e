// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the weighted,
// undirected graphs fed to the MST engines: paths, cycles, complete graphs,
// seeded random connected graphs and multi-component forests.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{
//			builder.WithSeed(42),
//			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
//		},
//		builder.Components(4, 3),
//	)
//
// Nodes are numbered 0..V-1 across all constructors in call order and are
// labelled by the configured LabelFn (Excel-style "A", "B", … by default).
// After construction every node is placed on a circle so front ends have a
// position to draw.
//
// Errors:
//   - ErrTooFewVertices  if a size parameter is below the topology minimum.
//   - ErrNeedRandSource  if a random constructor runs without WithSeed/WithRand.
//   - ErrTooManyEdges    if more extra edges are requested than free pairs exist.
//   - ErrConstructFailed if a nil constructor is supplied.
package builder
