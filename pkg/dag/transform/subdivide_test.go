package transform

import (
	"testing"

	"github.com/matzehuels/sugiyama/pkg/dag"
)

func countSubdividers(g *dag.DAG) int {
	n := 0
	for _, node := range g.Nodes() {
		if node.IsSubdivider() {
			n++
		}
	}
	return n
}

func TestSubdivideEdges_LongEdgeInsertsDummies(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "app", Row: 0})
	g.AddNode(dag.Node{ID: "deep", Row: 3})
	g.AddEdge(dag.Edge{From: "app", To: "deep"})

	SubdivideEdges(g)

	if got, want := countSubdividers(g), 2; got != want {
		t.Errorf("subdividers = %d, want %d", got, want)
	}
	for _, n := range g.Nodes() {
		if !n.IsSubdivider() {
			continue
		}
		if g.OutDegree(n.ID) != 1 {
			t.Errorf("subdivider %s has out-degree %d, want 1", n.ID, g.OutDegree(n.ID))
		}
		if len(g.Parents(n.ID)) != 1 {
			t.Errorf("subdivider %s has %d parents, want 1", n.ID, len(g.Parents(n.ID)))
		}
	}
}

// TestSubdivideEdges_NoSinkExtension asserts that, unlike Subdivide,
// SubdivideEdges never pads a shallow sink down to the graph's deepest row:
// "b" (row 1, a sink) stays a leaf even though "d" (row 2) is deeper.
func TestSubdivideEdges_NoSinkExtension(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a", Row: 0})
	g.AddNode(dag.Node{ID: "b", Row: 1})
	g.AddNode(dag.Node{ID: "c", Row: 1})
	g.AddNode(dag.Node{ID: "d", Row: 2})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "c"})
	g.AddEdge(dag.Edge{From: "c", To: "d"})

	SubdivideEdges(g)

	if got, want := countSubdividers(g), 0; got != want {
		t.Errorf("subdividers = %d, want %d (no sink padding)", got, want)
	}
	if g.OutDegree("b") != 0 {
		t.Errorf("b out-degree = %d, want 0 (sink left alone)", g.OutDegree("b"))
	}
}

// TestSubdivide_StillExtendsSinks confirms the full Subdivide entry point
// (used by the tower renderer's Normalize) keeps its flat-bottom behavior.
func TestSubdivide_StillExtendsSinks(t *testing.T) {
	g := dag.New(nil)
	g.AddNode(dag.Node{ID: "a", Row: 0})
	g.AddNode(dag.Node{ID: "b", Row: 1})
	g.AddNode(dag.Node{ID: "c", Row: 1})
	g.AddNode(dag.Node{ID: "d", Row: 2})
	g.AddEdge(dag.Edge{From: "a", To: "b"})
	g.AddEdge(dag.Edge{From: "a", To: "c"})
	g.AddEdge(dag.Edge{From: "c", To: "d"})

	Subdivide(g)

	if g.OutDegree("b") == 0 {
		t.Error("b out-degree = 0, want sink extension to have padded it to the bottom row")
	}
}
