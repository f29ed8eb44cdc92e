package transform

import "github.com/matzehuels/sugiyama/pkg/dag"

// BreakCycles detects feedback edges via a DFS-based minimum feedback arc
// set heuristic and reverses them in place so the graph becomes acyclic.
//
// Unlike an earlier revision of this function, feedback edges are never
// deleted: reversing (rather than dropping) them is what lets the emitter
// restore the caller's original edge direction later, and it keeps every
// input edge represented in the output - no edge is ever silently lost.
//
// A self-loop (From == To) is classified as a feedback edge and reversed
// trivially - it remains a self-loop, just flagged via [dag.Edge.Reversed]
// so downstream rendering treats it as a loop rather than a normal edge.
//
// Returns the number of edges reversed.
func BreakCycles(g *dag.DAG) int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int)
	var backEdges [][2]string

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range g.Children(node) {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				backEdges = append(backEdges, [2]string{node, child})
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, e := range backEdges {
		reverseEdge(g, e[0], e[1])
	}
	return len(backEdges)
}

// reverseEdge removes the from->to edge and re-adds it flipped, with
// Reversed set, preserving its metadata. A self-loop is re-added unchanged
// (from == to), only the flag differs.
func reverseEdge(g *dag.DAG, from, to string) {
	var meta dag.Metadata
	for _, e := range g.Edges() {
		if e.From == from && e.To == to {
			meta = e.Meta
			break
		}
	}
	g.RemoveEdge(from, to)

	newFrom, newTo := to, from
	if from == to {
		newFrom, newTo = from, to
	}
	if err := g.AddEdge(dag.Edge{From: newFrom, To: newTo, Meta: meta, Reversed: true}); err != nil {
		panic(err)
	}
}
