package transform

import "github.com/matzehuels/sugiyama/pkg/dag"

// Normalize applies transitive reduction, layer assignment, edge
// subdivision, and span-overlap resolution in one call. It is a
// convenience composition for callers who want a visually clean DAG and
// are fine with redundant edges being dropped; [pkg/layout] does not use
// it, since the layout engine's contract preserves every input edge.
func Normalize(g *dag.DAG) *dag.DAG {
	TransitiveReduction(g)
	AssignLayers(g)
	Subdivide(g)
	ResolveSpanOverlaps(g)
	return g
}
