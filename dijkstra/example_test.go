package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/fretpath/core"
	"github.com/katalvlaran/fretpath/dijkstra"
)

// ExampleDijkstra demonstrates computing distances on a small directed graph.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("B=%d C=%d D=%d\n", dist["B"], dist["C"], dist["D"])
	// Output: B=2 C=1 D=5
}

// ExampleShortestPath shows path reconstruction toward a single target.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1)
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	p, err := dijkstra.ShortestPath(g, dijkstra.Source("A"), dijkstra.WithTarget("D"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Vertices, p.Cost)
	// Output: [A B D] 5
}
