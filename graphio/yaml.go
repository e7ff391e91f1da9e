// SPDX-License-Identifier: MIT

package graphio

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mststep/core"
)

// Document is the YAML form of a graph.
//
//	nodes:
//	  - {label: A, x: 0, y: 0}
//	  - {id: 7, label: B}
//	edges:
//	  - {from: A, to: B, weight: 3}
type Document struct {
	Nodes []NodeDoc `yaml:"nodes"`
	Edges []EdgeDoc `yaml:"edges"`
}

// NodeDoc is one node. A missing id defaults to the node's index in the list.
type NodeDoc struct {
	ID    *int    `yaml:"id,omitempty"`
	Label string  `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// EdgeDoc is one edge between two node labels.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// DecodeYAML reads one Document from r and builds the graph.
//
// Error Conditions:
//   - ErrSyntax: malformed YAML, unknown fields, or a node without a label.
//   - ErrUnknownNode: an edge endpoint label is not in nodes.
//   - core sentinels (wrapped) for duplicate ids, loops, multi-edges or bad weights.
func DecodeYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	return doc.Graph()
}

// LoadFile reads a YAML graph document from path.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphio")
	}
	defer f.Close()

	g, err := DecodeYAML(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "graphio: %s", path)
	}

	return g, nil
}

// Graph builds a core.Graph from d, nodes first, in document order.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(d.Nodes), len(d.Edges)))
	ids := make(map[string]int, len(d.Nodes))

	for i, n := range d.Nodes {
		if n.Label == "" {
			return nil, errors.Wrapf(ErrSyntax, "node #%d has no label", i)
		}
		if _, dup := ids[n.Label]; dup {
			return nil, errors.Wrapf(core.ErrDuplicateNode, "graphio: label %q", n.Label)
		}
		id := i
		if n.ID != nil {
			id = *n.ID
		}
		if err := g.AddNode(id, n.Label, core.Position{X: n.X, Y: n.Y}); err != nil {
			return nil, errors.Wrapf(err, "graphio: node %q", n.Label)
		}
		ids[n.Label] = id
	}

	for i, e := range d.Edges {
		from, ok := ids[e.From]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "edge #%d: %q", i, e.From)
		}
		to, ok := ids[e.To]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "edge #%d: %q", i, e.To)
		}
		if _, err := g.AddEdge(from, to, e.Weight); err != nil {
			return nil, errors.Wrapf(err, "graphio: edge #%d %s-%s", i, e.From, e.To)
		}
	}

	return g, nil
}

// EncodeYAML writes g as a Document, nodes and edges in insertion order.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	var doc Document
	for _, n := range g.Nodes() {
		id := n.ID
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: &id, Label: n.Label, X: n.Position.X, Y: n.Position.Y})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: g.Label(e.From), To: g.Label(e.To), Weight: e.Weight})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "graphio: encode")
	}

	return enc.Close()
}
