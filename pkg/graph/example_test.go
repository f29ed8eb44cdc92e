package graph_test

import (
	"fmt"

	"github.com/matzehuels/sugiyama/pkg/graph"
)

func ExampleBuilder() {
	g := graph.NewBuilder[string]().
		AddEdge("app", "auth").
		AddEdge("app", "cache").
		AddEdge("auth", "db").
		AddEdge("cache", "db")

	fmt.Println("nodes:", len(g.Nodes()))
	fmt.Println("edges:", len(g.Edges()))
	// Output:
	// nodes: 4
	// edges: 4
}

func ExampleFromNodesEdges() {
	g := graph.FromNodesEdges(
		[]int{1, 2, 3},
		[]graph.Edge[int]{{From: 1, To: 2}, {From: 2, To: 3}},
	)
	fmt.Println("nodes:", len(g.Nodes()))
	fmt.Println("edges:", len(g.Edges()))
	// Output:
	// nodes: 3
	// edges: 2
}
