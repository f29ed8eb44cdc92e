package transform

import (
	"testing"

	"github.com/matzehuels/sugiyama/pkg/dag"
)

func countReversed(g *dag.DAG) int {
	n := 0
	for _, e := range g.Edges() {
		if e.Reversed {
			n++
		}
	}
	return n
}

func TestBreakCycles_NoCycles(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddNode(dag.Node{ID: "c"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "b", To: "c"})

	reversed := BreakCycles(g)

	if reversed != 0 {
		t.Errorf("BreakCycles() reversed %d edges, want 0", reversed)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
}

func TestBreakCycles_SimpleCycle(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "b", To: "a"})

	reversed := BreakCycles(g)

	if reversed != 1 {
		t.Errorf("BreakCycles() reversed %d edges, want 1", reversed)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2 (edges are flipped, not dropped)", g.EdgeCount())
	}
	if countReversed(g) != 1 {
		t.Errorf("countReversed(g) = %d, want 1", countReversed(g))
	}
}

func TestBreakCycles_TriangleCycle(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddNode(dag.Node{ID: "c"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "b", To: "c"})
	g.AddEdge(dag.Edge{From: "c", To: "a"})

	reversed := BreakCycles(g)

	if reversed != 1 {
		t.Errorf("BreakCycles() reversed %d edges, want 1", reversed)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
}

func TestBreakCycles_MultipleCycles(t *testing.T) {
	// Two separate cycles: a<->b and c<->d
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddNode(dag.Node{ID: "c"})
	g.AddNode(dag.Node{ID: "d"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "b", To: "a"})
	g.AddEdge(dag.Edge{From: "c", To: "d"})
	g.AddEdge(dag.Edge{From: "d", To: "c"})

	reversed := BreakCycles(g)

	if reversed != 2 {
		t.Errorf("BreakCycles() reversed %d edges, want 2", reversed)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
}

func TestBreakCycles_SelfLoop(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddEdge(dag.Edge{From: "a", To: "a"})

	reversed := BreakCycles(g)

	if reversed != 1 {
		t.Errorf("BreakCycles() reversed %d edges, want 1", reversed)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (self-loop retained, not dropped)", g.EdgeCount())
	}
	edges := g.Edges()
	if edges[0].From != "a" || edges[0].To != "a" || !edges[0].Reversed {
		t.Errorf("self-loop edge = %+v, want From=a To=a Reversed=true", edges[0])
	}
}

func TestBreakCycles_DiamondNoCycle(t *testing.T) {
	//   a
	//  / \
	// b   c
	//  \ /
	//   d
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddNode(dag.Node{ID: "c"})
	g.AddNode(dag.Node{ID: "d"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "c"})
	g.AddEdge(dag.Edge{From: "b", To: "d"})
	g.AddEdge(dag.Edge{From: "c", To: "d"})

	reversed := BreakCycles(g)

	if reversed != 0 {
		t.Errorf("BreakCycles() reversed %d edges, want 0", reversed)
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
}

func TestBreakCycles_ResultIsAcyclic(t *testing.T) {
	// Complex graph with cycle
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})
	g.AddNode(dag.Node{ID: "b"})
	g.AddNode(dag.Node{ID: "c"})
	g.AddNode(dag.Node{ID: "d"})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "b", To: "c"})
	g.AddEdge(dag.Edge{From: "c", To: "d"})
	g.AddEdge(dag.Edge{From: "d", To: "b"}) // back-edge creating cycle

	BreakCycles(g)

	// Run again - should find no more cycles
	reversed := BreakCycles(g)
	if reversed != 0 {
		t.Errorf("graph still has cycles after BreakCycles(): reversed %d more edges", reversed)
	}
}

func TestBreakCycles_EmptyGraph(t *testing.T) {
	g := dag.New(nil)

	reversed := BreakCycles(g)

	if reversed != 0 {
		t.Errorf("BreakCycles() reversed %d edges, want 0", reversed)
	}
}

func TestBreakCycles_SingleNode(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a"})

	reversed := BreakCycles(g)

	if reversed != 0 {
		t.Errorf("BreakCycles() reversed %d edges, want 0", reversed)
	}
}
