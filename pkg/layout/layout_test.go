package layout

import (
	"context"
	"testing"

	"github.com/matzehuels/sugiyama/pkg/graph"
)

func compute(t *testing.T, b *graph.Builder[string], opts Options) Result[string] {
	t.Helper()
	res, err := Compute[string](context.Background(), b, opts)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return res
}

func TestComputeEmptyGraph(t *testing.T) {
	res := compute(t, graph.NewBuilder[string](), DefaultOptions())

	if len(res.Positions) != 0 {
		t.Errorf("Positions = %v, want empty", res.Positions)
	}
	if len(res.Layers) != 0 {
		t.Errorf("Layers = %v, want empty", res.Layers)
	}
	if res.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0", res.Crossings)
	}
}

func TestComputeSingleNode(t *testing.T) {
	b := graph.NewBuilder[string]().AddNode("a")
	res := compute(t, b, DefaultOptions())

	if p := res.Positions["a"]; p != (Point{0, 0}) {
		t.Errorf("Positions[a] = %v, want {0 0}", p)
	}
	if len(res.Layers) != 1 || len(res.Layers[0]) != 1 || res.Layers[0][0] != "a" {
		t.Errorf("Layers = %v, want [[a]]", res.Layers)
	}
	if res.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0", res.Crossings)
	}
}

func TestComputeChain(t *testing.T) {
	b := graph.NewBuilder[string]().AddEdge("a", "b").AddEdge("b", "c").AddEdge("c", "d")
	res := compute(t, b, DefaultOptions())

	wantLayers := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}
	if len(res.Layers) != len(wantLayers) {
		t.Fatalf("Layers = %v, want %v", res.Layers, wantLayers)
	}
	for i, layer := range wantLayers {
		if len(res.Layers[i]) != 1 || res.Layers[i][0] != layer[0] {
			t.Errorf("Layers[%d] = %v, want %v", i, res.Layers[i], layer)
		}
	}
	if res.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0", res.Crossings)
	}

	tolerance := DefaultOptions().NodeSeparation / 10
	xa := res.Positions["a"].X
	for _, id := range []string{"b", "c", "d"} {
		if diff := res.Positions[id].X - xa; diff > tolerance || diff < -tolerance {
			t.Errorf("Positions[%s].X = %v, want within %v of %v", id, res.Positions[id].X, tolerance, xa)
		}
	}
}

func TestComputeDiamond(t *testing.T) {
	b := graph.NewBuilder[string]().
		AddEdge("a", "b").AddEdge("a", "c").
		AddEdge("b", "d").AddEdge("c", "d")
	res := compute(t, b, DefaultOptions())

	if len(res.Layers) != 3 {
		t.Fatalf("Layers = %v, want 3 ranks", res.Layers)
	}
	if len(res.Layers[1]) != 2 {
		t.Fatalf("Layers[1] = %v, want 2 vertices", res.Layers[1])
	}
	if res.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0", res.Crossings)
	}

	xb, xc := res.Positions["b"].X, res.Positions["c"].X
	lo, hi := xb, xc
	if hi < lo {
		lo, hi = hi, lo
	}
	for _, id := range []string{"a", "d"} {
		x := res.Positions[id].X
		if x < lo || x > hi {
			t.Errorf("Positions[%s].X = %v, want between %v and %v", id, x, lo, hi)
		}
	}
}

func TestComputeForcedCrossing(t *testing.T) {
	b := graph.NewBuilder[string]().
		AddEdge("a", "x").AddEdge("a", "y").
		AddEdge("b", "x").AddEdge("b", "y")
	res := compute(t, b, DefaultOptions())

	if res.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0 (achievable by matching orders)", res.Crossings)
	}
}

func TestComputeCycle(t *testing.T) {
	b := graph.NewBuilder[string]().AddEdge("a", "b").AddEdge("b", "c").AddEdge("c", "a")
	res := compute(t, b, DefaultOptions())

	rankOf := make(map[string]int)
	for r, layer := range res.Layers {
		for _, id := range layer {
			rankOf[id] = r
		}
	}

	var feedback []Polyline[string]
	for _, e := range res.Edges {
		if rankOf[e.To] < rankOf[e.From] {
			feedback = append(feedback, e)
		}
	}
	if len(feedback) != 1 {
		t.Fatalf("found %d feedback edges among %v, want exactly 1", len(feedback), res.Edges)
	}

	fb := feedback[0]
	first := fb.Points[0]
	if first != res.Positions[fb.From] {
		t.Errorf("feedback polyline starts at %v, want source position %v", first, res.Positions[fb.From])
	}
}

func TestComputeDeterministic(t *testing.T) {
	b := graph.NewBuilder[string]().
		AddEdge("a", "b").AddEdge("a", "c").AddEdge("b", "d").AddEdge("c", "d").
		AddEdge("d", "e").AddEdge("a", "e")

	r1 := compute(t, b, DefaultOptions())
	r2 := compute(t, b, DefaultOptions())

	for id, p1 := range r1.Positions {
		if p2 := r2.Positions[id]; p1 != p2 {
			t.Errorf("Positions[%s] = %v on run 1, %v on run 2", id, p1, p2)
		}
	}
	if r1.Crossings != r2.Crossings {
		t.Errorf("Crossings = %d on run 1, %d on run 2", r1.Crossings, r2.Crossings)
	}
}

func TestComputeParallelEdgesEachGetPolyline(t *testing.T) {
	b := graph.NewBuilder[string]().AddEdge("a", "b").AddEdge("a", "b")
	res := compute(t, b, DefaultOptions())

	if len(res.Edges) != 2 {
		t.Fatalf("Edges = %v, want 2 polylines for 2 parallel input edges", res.Edges)
	}
	if res.Edges[0].Points[len(res.Edges[0].Points)-1] != res.Edges[1].Points[len(res.Edges[1].Points)-1] {
		t.Errorf("parallel edges should share destination geometry")
	}
}

func TestComputeSelfLoopEmitsPolylineNotDropped(t *testing.T) {
	b := graph.NewBuilder[string]().AddEdge("a", "a").AddEdge("a", "b")
	res := compute(t, b, DefaultOptions())

	if len(res.Edges) != 2 {
		t.Fatalf("Edges = %v, want 2 (one per input edge, including the self-loop)", res.Edges)
	}
	var loop Polyline[string]
	found := false
	for _, e := range res.Edges {
		if e.From == "a" && e.To == "a" {
			loop = e
			found = true
		}
	}
	if !found {
		t.Fatal("self-loop edge not found in Result.Edges")
	}
	if len(loop.Points) < 2 {
		t.Errorf("self-loop polyline has %d points, want at least 2", len(loop.Points))
	}
	if _, ok := res.Positions["a"]; !ok {
		t.Error("self-loop vertex missing from Positions")
	}
}

func TestComputeMonotonicSpacingWithinRank(t *testing.T) {
	b := graph.NewBuilder[string]().
		AddEdge("a", "x").AddEdge("b", "x").AddEdge("c", "x").
		AddNode("d")
	opts := DefaultOptions()
	res := compute(t, b, opts)

	var row0 []string
	for _, layer := range res.Layers {
		if len(layer) > 1 {
			row0 = layer
		}
	}
	for i := 1; i < len(row0); i++ {
		prev, curr := res.Positions[row0[i-1]].X, res.Positions[row0[i]].X
		if curr < prev+opts.NodeSeparation-1e-9 {
			t.Errorf("rank order %v not spaced by NodeSeparation: x[%d]=%v, x[%d]=%v", row0, i-1, prev, i, curr)
		}
	}
}

func TestComputeLeftToRightSwapsAxes(t *testing.T) {
	b := graph.NewBuilder[string]().AddEdge("a", "b")
	opts := DefaultOptions()
	opts.Direction = LeftToRight
	res := compute(t, b, opts)

	if res.Positions["a"].X != 0 {
		t.Errorf("under LeftToRight, rank 0 should sit at x=0: got %v", res.Positions["a"])
	}
	if res.Positions["b"].X != opts.RankSeparation {
		t.Errorf("Positions[b].X = %v, want RankSeparation %v", res.Positions["b"].X, opts.RankSeparation)
	}
}
