package dag_test

import (
	"testing"

	"github.com/matzehuels/sugiyama/pkg/dag"
)

func TestCheckAcyclicAcceptsDAG(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "a"})
	_ = g.AddNode(dag.Node{ID: "b"})
	_ = g.AddNode(dag.Node{ID: "c"})
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})
	_ = g.AddEdge(dag.Edge{From: "b", To: "c"})

	if err := g.CheckAcyclic(); err != nil {
		t.Errorf("CheckAcyclic() = %v, want nil", err)
	}
}

func TestCheckAcyclicRejectsCycle(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "a"})
	_ = g.AddNode(dag.Node{ID: "b"})
	_ = g.AddNode(dag.Node{ID: "c"})
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})
	_ = g.AddEdge(dag.Edge{From: "b", To: "c"})
	_ = g.AddEdge(dag.Edge{From: "c", To: "a"})

	if err := g.CheckAcyclic(); err != dag.ErrGraphHasCycle {
		t.Errorf("CheckAcyclic() = %v, want %v", err, dag.ErrGraphHasCycle)
	}
}

func TestCheckAcyclicIgnoresRowAssignment(t *testing.T) {
	// All rows default to 0, which Validate would reject as
	// non-consecutive; CheckAcyclic skips that check entirely.
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "a"})
	_ = g.AddNode(dag.Node{ID: "b"})
	_ = g.AddEdge(dag.Edge{From: "a", To: "b"})

	if err := g.CheckAcyclic(); err != nil {
		t.Errorf("CheckAcyclic() = %v, want nil", err)
	}
	if err := g.Validate(); err == nil {
		t.Error("Validate() = nil, want ErrNonConsecutiveRows (sanity check that these differ)")
	}
}
