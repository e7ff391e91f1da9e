// SPDX-License-Identifier: MIT

package navigator

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/steplog"
)

// Load discards any previous log, clears MST membership and sets the cursor to 0.
// A nil log is equivalent to Reset.
func (n *Navigator) Load(log *steplog.Log) {
	n.Reset()
	n.log = log
	if log != nil {
		klog.V(2).Infof("navigator: loaded run %s (%s, %d steps)", log.RunID(), log.Meta().Algorithm, log.Len())
	}
}

// Reset sets the cursor to 0, clears MST membership and discards the log.
func (n *Navigator) Reset() {
	n.log = nil
	n.cursor = 0
	n.clear()
}

// Log returns the loaded log, or nil.
func (n *Navigator) Log() *steplog.Log { return n.log }

// Cursor returns the number of applied steps.
func (n *Navigator) Cursor() int { return n.cursor }

// Len returns the length of the loaded log (0 when none).
func (n *Navigator) Len() int {
	if n.log == nil {
		return 0
	}

	return n.log.Len()
}

// Graph returns the graph whose flags the Navigator drives.
func (n *Navigator) Graph() *core.Graph { return n.g }

// StepForward applies log[cursor] and advances the cursor.
//
// Error Conditions:
//   - ErrAtEnd: cursor == Len(). Nothing changes.
//   - core.ErrEdgeNotFound (wrapped): the log references an edge the graph lacks.
//
// Complexity: O(1).
func (n *Navigator) StepForward() error {
	if n.cursor >= n.Len() {
		return errors.Wrapf(ErrAtEnd, "cursor %d", n.cursor)
	}
	if err := n.apply(n.cursor); err != nil {
		return err
	}
	n.cursor++
	klog.V(2).Infof("navigator: forward to %d/%d", n.cursor, n.Len())

	return nil
}

// StepBackward moves the cursor back by one and restores the membership it had there.
// With full replay the flags are cleared and log[0..cursor-1] re-applied: O(cursor).
// WithInverseUndo pops the last inverse record instead: O(1).
//
// Error Conditions:
//   - ErrAtStart: cursor == 0. Nothing changes.
//   - a failed replay leaves cursor and membership as they were.
func (n *Navigator) StepBackward() error {
	if n.cursor == 0 {
		return ErrAtStart
	}
	prev := n.cursor
	var err error
	if n.undo != nil {
		if err = n.popInverse(); err == nil {
			n.cursor--
		}
	} else {
		err = n.rebuild(n.cursor - 1)
	}
	if err != nil {
		return n.restore(prev, err)
	}
	klog.V(2).Infof("navigator: backward to %d/%d", n.cursor, n.Len())

	return nil
}

// JumpTo moves the cursor to k, applying or undoing steps as needed.
//
// Error Conditions:
//   - ErrOutOfRange: k < 0 or k > Len(). Nothing changes.
//   - a failed apply or undo leaves cursor and membership as they were.
func (n *Navigator) JumpTo(k int) error {
	if k < 0 || k > n.Len() {
		return errors.Wrapf(ErrOutOfRange, "target %d, length %d", k, n.Len())
	}
	prev := n.cursor
	var err error
	switch {
	case k >= n.cursor:
		for err == nil && n.cursor < k {
			if err = n.apply(n.cursor); err == nil {
				n.cursor++
			}
		}
	case n.undo != nil:
		for err == nil && n.cursor > k {
			if err = n.popInverse(); err == nil {
				n.cursor--
			}
		}
	default:
		err = n.rebuild(k)
	}
	if err != nil {
		return n.restore(prev, err)
	}
	klog.V(2).Infof("navigator: jump to %d/%d", n.cursor, n.Len())

	return nil
}

// CurrentView describes the most recently applied step and the derived tree.
func (n *Navigator) CurrentView() View {
	v := View{
		Cursor:      n.cursor,
		Total:       n.Len(),
		MSTEdges:    append([]core.Edge(nil), n.tree...),
		TotalWeight: n.weight(),
		RunID:       uuid.Nil,
	}
	if n.log != nil {
		v.RunID = n.log.RunID()
	}

	switch {
	case n.cursor == 0:
		v.Status = StatusNotStarted
	case n.cursor < v.Total:
		v.Status = StatusRunning
	default:
		v.Status = StatusComplete
		v.Outcome = steplog.Classify(n.g.NodeCount(), len(n.tree))
	}
	if n.cursor > 0 {
		if s, ok := n.log.At(n.cursor - 1); ok {
			v.Step = &s
		}
	}

	return v
}

// apply performs the effect of step i on the graph and records its inverse.
func (n *Navigator) apply(i int) error {
	var eid string
	if e, ok := n.log.EffectEdge(i); ok {
		if err := n.g.SetInMST(e.ID, true); err != nil {
			return errors.Wrapf(err, "navigator: step %d", i)
		}
		eid = e.ID
		e.InMST = true
		n.tree = append(n.tree, e)
	}
	if n.undo != nil {
		n.undo.Push(inverse{edgeID: eid})
	}

	return nil
}

// popInverse undoes the most recently applied step.
func (n *Navigator) popInverse() error {
	top, ok := n.undo.Pop()
	if !ok {
		return ErrAtStart
	}
	inv := top.(inverse)
	if inv.edgeID == "" {
		return nil
	}
	if err := n.g.SetInMST(inv.edgeID, false); err != nil {
		return errors.Wrap(err, "navigator: undo")
	}
	n.tree = n.tree[:len(n.tree)-1]

	return nil
}

// rebuild clears membership and replays log[0..k-1].
func (n *Navigator) rebuild(k int) error {
	n.clear()
	n.cursor = 0
	for n.cursor < k {
		if err := n.apply(n.cursor); err != nil {
			return err
		}
		n.cursor++
	}

	return nil
}

// restore rebuilds the state of cursor k after a move failed with cause, and returns cause.
// Steps below k were applied before, so a rebuild that fails too is only logged.
func (n *Navigator) restore(k int, cause error) error {
	if err := n.rebuild(k); err != nil {
		klog.Warningf("navigator: restore to %d failed: %v", k, err)
	}

	return cause
}

// clear drops every InMST flag, the derived tree and the inverse stack.
func (n *Navigator) clear() {
	if n.g != nil {
		n.g.ClearMST()
	}
	n.tree = n.tree[:0]
	if n.undo != nil {
		n.undo.Clear()
	}
}

func (n *Navigator) weight() int64 {
	var total int64
	for _, e := range n.tree {
		total += e.Weight
	}

	return total
}
