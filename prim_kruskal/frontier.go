// SPDX-License-Identifier: MIT
// File: frontier.go
// Role: Prim's priority frontier and visited set.
// Determinism:
//   - The frontier is re-sorted with sort.SliceStable after every push batch:
//     equal weights keep their push order, and pushes follow edge insertion order.
//   - Stale entries (both endpoints visited) are kept; the engine discards them on pop.

package prim_kruskal

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// frontier is an ascending, stable-sorted list of candidate edges.
type frontier struct {
	entries []steplog.FrontierEntry
}

// Len returns the number of candidate entries, stale ones included.
func (f *frontier) Len() int { return len(f.entries) }

// push appends edges in the given order, then re-sorts stably by weight.
// Complexity: O(F log F) for a frontier of F entries.
func (f *frontier) push(edges ...core.Edge) {
	if len(edges) == 0 {
		return
	}
	for _, e := range edges {
		f.entries = append(f.entries, steplog.FrontierEntry{Edge: e, Weight: e.Weight})
	}
	sort.SliceStable(f.entries, func(i, j int) bool {
		return f.entries[i].Weight < f.entries[j].Weight
	})
}

// popMin removes and returns the first minimum-weight entry. Caller checks Len() > 0.
func (f *frontier) popMin() steplog.FrontierEntry {
	head := f.entries[0]
	f.entries = f.entries[1:]

	return head
}

// visitedSet keeps visited node IDs ordered ascending so snapshots are deterministic.
type visitedSet struct {
	set *treeset.Set
}

func newVisitedSet() visitedSet {
	return visitedSet{set: treeset.NewWithIntComparator()}
}

func (v visitedSet) add(id int)           { v.set.Add(id) }
func (v visitedSet) contains(id int) bool { return v.set.Contains(id) }
func (v visitedSet) size() int            { return v.set.Size() }

// ids returns the visited IDs ascending.
func (v visitedSet) ids() []int {
	vals := v.set.Values()
	out := make([]int, len(vals))
	for i, x := range vals {
		out[i] = x.(int)
	}

	return out
}
