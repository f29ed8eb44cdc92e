package graph

import "github.com/matzehuels/sugiyama/pkg/dag"

// FromDAG builds a Graph[string] view over an already-loaded [dag.DAG], for
// callers that read a graph through pkg/io (JSON import) and want to feed it
// into the layout engine without re-parsing. Only original vertices are
// included - synthetic nodes a prior layout pass may have left on the DAG
// (subdividers, auxiliaries) are not part of the caller's input graph and
// are filtered out, along with any edge touching one.
func FromDAG(d *dag.DAG) *Builder[string] {
	b := NewBuilder[string]()
	for _, n := range d.Nodes() {
		if n.IsSynthetic() {
			continue
		}
		b.AddNode(n.ID)
	}
	for _, e := range d.Edges() {
		src, srcOK := d.Node(e.From)
		dst, dstOK := d.Node(e.To)
		if !srcOK || !dstOK || src.IsSynthetic() || dst.IsSynthetic() {
			continue
		}
		b.AddEdge(e.From, e.To)
	}
	return b
}
