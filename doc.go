// Package mststep records minimum spanning tree runs step by step and replays them,
// forward and backward, for teaching and visualisation.
//
// 🚀 What is mststep?
//
//	A small, deterministic library that brings together:
//		• Core primitives: weighted undirected graphs with stable insertion order
//		• Engines: Prim and Kruskal, each producing an immutable step log
//		• Replay: a navigator that applies or reverts one step at a time
//		• Playback: a cancellable auto-play task on an injectable clock
//		• Input: an inline edge-list notation and YAML graph documents
//
// ✨ Why choose mststep?
//
//   - Every decision is visible: consider, add, discard and bookkeeping steps with narratives
//   - Deterministic: stable sorts break weight ties by edge insertion order
//   - Honest about disconnected input: runs end in a spanning forest, reported as such
//   - Testable: no global state, no real time needed in tests
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         - Graph, Node, Edge and the InMST flags the navigator drives
//	steplog/      - Step, Action, snapshots and the frozen Log
//	prim_kruskal/ - the step-recording Prim and Kruskal engines
//	navigator/    - cursor over a Log with replay or inverse-undo backward steps
//	playback/     - timed auto-play with pause, resume and manual steps
//	session/      - one working graph wired to engines, navigator and player
//	graphio/      - edge-list parser and YAML documents
//	builder/      - deterministic and seeded graph fixtures
//	cmd/mststep/  - CLI: run and play
//
// Quick ASCII example:
//
//	    A──1──B
//	    │╲    │
//	   10  5  2
//	    │    ╲│
//	    D──3──C
//
//	mststep run --edges "A-B:1, B-C:2, C-D:3, A-D:10, A-C:5"
//
// accepts A-B, B-C and C-D for a total weight of 6.
package mststep
