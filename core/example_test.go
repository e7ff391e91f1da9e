package core_test

import (
	"fmt"

	"github.com/katalvlaran/mststep/core"
)

// ExampleGraph_MSTEdges shows how MST flags derive the displayed tree.
func ExampleGraph_MSTEdges() {
	g := core.NewGraph()
	_ = g.AddNode(0, "A", core.Position{})
	_ = g.AddNode(1, "B", core.Position{})
	_ = g.AddNode(2, "C", core.Position{})
	ab, _ := g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)

	_ = g.SetInMST(ab, true)
	for _, e := range g.MSTEdges() {
		fmt.Printf("%s-%s(%d)\n", g.Label(e.From), g.Label(e.To), e.Weight)
	}
	fmt.Println("total:", g.TotalWeight())
	// Output:
	// A-B(1)
	// total: 1
}
