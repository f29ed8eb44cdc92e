package transform

import (
	"fmt"

	"github.com/matzehuels/sugiyama/pkg/dag"
)

// Subdivide breaks edges that span multiple rows into sequences of single-row
// edges connected by synthetic subdivider nodes, then extends every sink to
// the bottom row so the graph has a flat foundation. This is the tower
// renderer's normalization step ([Normalize]): a tower block cannot rest on
// something two floors down, so every column needs to reach the ground.
//
// Subdivide ensures every edge in the graph connects nodes in consecutive rows
// (parent.Row + 1 == child.Row). Any edge spanning multiple rows is replaced
// by a chain of [dag.NodeKindSubdivider] nodes. For example:
//
//	Before: app (row 0) → core (row 3)  [spans 3 rows]
//	After:  app → app_sub_1 → app_sub_2 → core  [3 single-row edges]
//
// Each subdivider maintains a MasterID field linking back to the original
// source node, allowing renderers to visually merge subdividers into
// continuous vertical blocks.
//
// # Sink Extension
//
// Subdivide also extends all sink nodes (nodes with out-degree 0) to the
// bottom row of the graph by appending subdivider chains. This gives every
// tower a flat bottom row. The chain's terminal node has no successor, so
// callers that measure crossings or route edges over the result (rather than
// just rendering physical blocks) want [SubdivideEdges] instead, which skips
// this pass. pkg/layout's Compute is one such caller.
//
// # Node IDs
//
// Subdivider nodes are assigned unique IDs of the form "master_sub_row" (e.g.,
// "app_sub_1"). If a collision occurs, a numeric suffix is appended
// ("app_sub_1__1", then "__2", ...). All generated IDs are tracked to guarantee uniqueness.
//
// # Edge Metadata
//
// Subdivide preserves edge metadata only on the final edge in each subdivided
// chain (the edge entering the original target). Intermediate subdivider edges
// have no metadata.
//
// # Nil Handling
//
// Subdivide panics if g is nil. If g is empty (zero nodes), the function
// returns immediately.
//
// # Performance
//
// Time complexity is O(V·D) where V is nodes and D is the maximum depth (row
// count), as each node may spawn subdividers equal to the depth. Space
// complexity is O(V) for tracking used IDs.
func Subdivide(g *dag.DAG) {
	gen := newIDGen(g.Nodes())
	subdivideLongEdges(g, gen)
	extendSinksToBottom(g, gen)
}

// SubdivideEdges is the edge-subdivision half of [Subdivide] without the
// sink-extension pass: it breaks multi-row edges into chains of
// single-row dummies but never appends a dummy chain past a sink's own
// row. Every dummy it creates has exactly one predecessor and one
// successor, so callers that walk or count edges over the result -
// crossing reduction, chain reconstruction - see only real routing, never
// a synthetic dead end.
//
// If g is nil, SubdivideEdges panics, matching [Subdivide].
func SubdivideEdges(g *dag.DAG) {
	subdivideLongEdges(g, newIDGen(g.Nodes()))
}

func subdivideLongEdges(g *dag.DAG, gen *idGen) {
	var toRemove []dag.Edge
	for _, e := range g.Edges() {
		src, srcOK := g.Node(e.From)
		dst, dstOK := g.Node(e.To)
		if !srcOK || !dstOK || dst.Row <= src.Row+1 {
			continue
		}

		toRemove = append(toRemove, e)
		prevID := src.ID
		for row := src.Row + 1; row < dst.Row; row++ {
			prevID = addSubdivider(g, gen, prevID, src.ID, row)
		}
		if err := g.AddEdge(dag.Edge{From: prevID, To: dst.ID, Meta: e.Meta}); err != nil {
			panic(err)
		}
	}

	for _, e := range toRemove {
		g.RemoveEdge(e.From, e.To)
	}
}

func addSubdivider(g *dag.DAG, gen *idGen, from, master string, row int) string {
	id := gen.next(master, row)
	if err := g.AddNode(dag.Node{
		ID:       id,
		Row:      row,
		Kind:     dag.NodeKindSubdivider,
		MasterID: master,
	}); err != nil {
		panic(err)
	}
	if err := g.AddEdge(dag.Edge{From: from, To: id}); err != nil {
		panic(err)
	}
	return id
}

func extendSinksToBottom(g *dag.DAG, gen *idGen) {
	maxRow := g.MaxRow()
	for _, n := range g.Nodes() {
		if g.OutDegree(n.ID) > 0 || n.Row >= maxRow {
			continue
		}
		prevID := n.ID
		for row := n.Row + 1; row <= maxRow; row++ {
			prevID = addSubdivider(g, gen, prevID, n.EffectiveID(), row)
		}
	}
}

type idGen struct {
	used map[string]struct{}
}

func newIDGen(nodes []*dag.Node) *idGen {
	m := make(map[string]struct{}, len(nodes)*2)
	for _, n := range nodes {
		m[n.ID] = struct{}{}
	}
	return &idGen{used: m}
}

func (gen *idGen) next(base string, row int) string {
	prefix := fmt.Sprintf("%s_sub_%d", base, row)
	id := prefix
	for i := 1; ; i++ {
		if _, exists := gen.used[id]; !exists {
			gen.used[id] = struct{}{}
			return id
		}
		id = fmt.Sprintf("%s__%d", prefix, i)
	}
}
