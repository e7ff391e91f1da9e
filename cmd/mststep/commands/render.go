// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/navigator"
	"github.com/katalvlaran/mststep/steplog"
)

// styles colours one line per action.
type styles struct {
	Header  lipgloss.Style
	Index   lipgloss.Style
	Add     lipgloss.Style
	Discard lipgloss.Style
	Check   lipgloss.Style
	Note    lipgloss.Style
	Detail  lipgloss.Style
	Warn    lipgloss.Style
}

func newStyles() styles {
	return styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f")),
		Index:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
		Add:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3fb950")),
		Discard: lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149")),
		Check:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d29922")),
		Note:    lipgloss.NewStyle(),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")).PaddingLeft(9),
		Warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d29922")),
	}
}

// renderer writes views of one graph.
type renderer struct {
	w  io.Writer
	g  *core.Graph
	st styles
}

func (r renderer) header(log *steplog.Log) {
	m := log.Meta()
	title := fmt.Sprintf("%s on %d nodes, %d edges", m.Algorithm, m.NodeCount, m.EdgeCount)
	if m.StartNode >= 0 {
		title += ", start " + r.g.Label(m.StartNode)
	}
	fmt.Fprintln(r.w, r.st.Header.Render(title))
	fmt.Fprintln(r.w, r.st.Index.Render("run "+log.RunID().String()))
}

func (r renderer) warning(err error) {
	fmt.Fprintln(r.w, r.st.Warn.Render("warning: "+err.Error()))
}

// view prints the most recently applied step with its auxiliary state.
func (r renderer) view(v navigator.View) {
	if v.Step == nil {
		return
	}
	s := v.Step
	style := r.st.Note
	switch s.Action {
	case steplog.ActionAddEdge:
		style = r.st.Add
	case steplog.ActionDiscardEdge:
		style = r.st.Discard
	case steplog.ActionConsiderEdge:
		style = r.st.Check
	}
	idx := r.st.Index.Render(fmt.Sprintf("[%3d/%d]", v.Cursor, v.Total))
	fmt.Fprintf(r.w, "%s %s %s\n", idx, style.Render(fmt.Sprintf("%-12s", s.Action)), s.Narrative)
	if detail := r.snapshot(s.Snapshot); detail != "" {
		fmt.Fprintln(r.w, r.st.Detail.Render(detail))
	}
}

// summary prints the tree and outcome once the cursor reaches the end.
func (r renderer) summary(v navigator.View) {
	edges := make([]string, len(v.MSTEdges))
	for i, e := range v.MSTEdges {
		edges[i] = r.edge(e)
	}
	line := fmt.Sprintf("outcome: %s, total weight %d, edges: %s", v.Outcome, v.TotalWeight, strings.Join(edges, " "))
	if v.Outcome == steplog.OutcomeForest {
		fmt.Fprintln(r.w, r.st.Warn.Render(line+" (graph is disconnected)"))
		return
	}
	fmt.Fprintln(r.w, r.st.Header.Render(line))
}

func (r renderer) snapshot(s steplog.Snapshot) string {
	switch snap := s.(type) {
	case steplog.PrimSnapshot:
		frontier := make([]string, len(snap.Frontier))
		for i, f := range snap.Frontier {
			frontier[i] = r.edge(f.Edge)
		}
		return "frontier: [" + strings.Join(frontier, " ") + "]  visited: " + r.set(snap.Visited)
	case steplog.KruskalSnapshot:
		remaining := make([]string, len(snap.Remaining))
		for i, e := range snap.Remaining {
			remaining[i] = r.edge(e)
		}
		sets := make([]string, len(snap.Partition))
		for i, p := range snap.Partition {
			sets[i] = r.set(p)
		}
		return "remaining: [" + strings.Join(remaining, " ") + "]  sets: " + strings.Join(sets, " ")
	default:
		return ""
	}
}

func (r renderer) edge(e core.Edge) string {
	return fmt.Sprintf("%s-%s(%d)", r.g.Label(e.From), r.g.Label(e.To), e.Weight)
}

func (r renderer) set(ids []int) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = r.g.Label(id)
	}

	return "{" + strings.Join(labels, ",") + "}"
}
