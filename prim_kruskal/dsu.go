// SPDX-License-Identifier: MIT
// File: dsu.go
// Role: Disjoint-set forest for Kruskal and its partition snapshot.
// Determinism:
//   - Partition() groups nodes by current root, roots ordered by first encounter
//     while scanning node IDs ascending; members inside a group are ascending.

package prim_kruskal

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// dsu is a union-find over node IDs with full path compression and union by size.
type dsu struct {
	ids    []int // node IDs ascending, the scan order of Partition
	parent map[int]int
	size   map[int]int
}

// newDSU creates one singleton set per id. ids must be sorted ascending.
func newDSU(ids []int) *dsu {
	d := &dsu{
		ids:    ids,
		parent: make(map[int]int, len(ids)),
		size:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
		d.size[id] = 1
	}

	return d
}

// find returns the root of x, pointing every node on the path straight at it.
// Iterative, so deep chains cannot overflow the stack.
func (d *dsu) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// union merges the sets of a and b. It reports false when they already share a root.
// The smaller tree goes under the larger one; on equal sizes b's root goes under a's.
func (d *dsu) union(a, b int) bool {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]

	return true
}

// partition returns the current disjoint sets.
// Complexity: O(V·α(V)).
func (d *dsu) partition() [][]int {
	groups := linkedhashmap.New()
	for _, id := range d.ids {
		r := d.find(id)
		if members, found := groups.Get(r); found {
			groups.Put(r, append(members.([]int), id))
		} else {
			groups.Put(r, []int{id})
		}
	}

	out := make([][]int, 0, groups.Size())
	for _, members := range groups.Values() {
		out = append(out, members.([]int))
	}

	return out
}
