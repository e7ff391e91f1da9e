// SPDX-License-Identifier: MIT
// Package graphio reads graphs from text: the inline edge-list notation
// ("A-B:1, B-C:2; E") and YAML documents.
//
// Errors:
//
//	ErrSyntax      - the input does not follow the notation or the YAML schema.
//	ErrUnknownNode - a YAML edge names a label missing from the node list.
//
// Graph-level violations (duplicate ids, loops, multi-edges, weights < 1) are
// reported with the core sentinels, wrapped with the offending position.
package graphio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/mststep/core"
)

// ErrSyntax indicates malformed input.
var ErrSyntax = errors.New("graphio: syntax error")

// ErrUnknownNode indicates an edge endpoint that was never declared.
var ErrUnknownNode = errors.New("graphio: unknown node")

// EdgeListExpr is a whole edge list: items separated by "," or ";".
type EdgeListExpr struct {
	Items []*ItemExpr `parser:"( @@ ( ( ',' | ';' ) @@ )* )?"`
}

// ItemExpr is a lone node "E" or an edge "A-B:3".
type ItemExpr struct {
	Pos  lexer.Position
	From string    `parser:"@( Ident | Int )"`
	Link *LinkExpr `parser:"@@?"`
}

// LinkExpr is the "-B:3" tail of an edge item.
type LinkExpr struct {
	To     string `parser:"'-' @( Ident | Int )"`
	Weight int64  `parser:"':' @Int"`
}

var edgeListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-:,;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseEdgeListExpr = participle.MustBuild[EdgeListExpr](
	participle.Lexer(edgeListLexer),
	participle.Elide("Whitespace"),
)

// ParseEdgeList builds a graph from the inline notation.
//
// Node ids are assigned 0, 1, … in order of first appearance; labels are the
// names as written. Edges are added in the order written.
//
// Error Conditions:
//   - ErrSyntax: the text does not parse.
//   - core.ErrLoopNotAllowed, core.ErrMultiEdgeNotAllowed, core.ErrBadWeight (wrapped).
func ParseEdgeList(src string) (*core.Graph, error) {
	expr, err := parseEdgeListExpr.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	g := core.NewGraph()
	ids := make(map[string]int)
	node := func(label string) (int, error) {
		if id, ok := ids[label]; ok {
			return id, nil
		}
		id := len(ids)
		if err := g.AddNode(id, label, core.Position{}); err != nil {
			return 0, err
		}
		ids[label] = id

		return id, nil
	}

	for _, item := range expr.Items {
		from, err := node(item.From)
		if err != nil {
			return nil, errors.Wrapf(err, "graphio: %s", item.Pos)
		}
		if item.Link == nil {
			continue
		}
		to, err := node(item.Link.To)
		if err != nil {
			return nil, errors.Wrapf(err, "graphio: %s", item.Pos)
		}
		if _, err = g.AddEdge(from, to, item.Link.Weight); err != nil {
			return nil, errors.Wrapf(err, "graphio: %s: edge %s-%s", item.Pos, item.From, item.Link.To)
		}
	}

	return g, nil
}
