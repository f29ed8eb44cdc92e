package layout

import (
	"strconv"

	"github.com/matzehuels/sugiyama/pkg/dag"
	"github.com/matzehuels/sugiyama/pkg/graph"
)

// loEdgeKey is the dag.Metadata key tagging an internal edge with the
// canonical index assigned by build, so the emitter can find the chain
// belonging to a given input edge after subdivision collapses intermediate
// metadata.
const loEdgeKey = "loEdge"

// built holds everything the pipeline stages after acyclic need to recover
// the caller's original graph shape from the internal, string-keyed DAG.
type built[N comparable] struct {
	d *dag.DAG

	// idOf/nodeOf form the bijection between caller NodeIds and internal
	// dense string ids ("0", "1", ...).
	idOf   map[N]string
	nodeOf map[string]N

	// canonical[i] is the (from, to) internal id pair for canonical edge i,
	// in the caller's original direction (before any acyclic reversal).
	canonical [][2]string
	// inputEdgeKey[i] is the canonical edge index that input edge i maps
	// to, or -1 if input edge i is a self-loop (handled separately).
	inputEdgeKey []int
	// reversedOf[i] records whether canonical edge i was flipped by the
	// acyclifier, captured immediately after BreakCycles runs (subdivision
	// does not preserve the Reversed flag on reconstructed chain edges).
	reversedOf []bool
}

// build converts g into the internal working DAG, deduplicating parallel
// edges into a single canonical edge (the DuplicateEdge ingest policy,
// spec.md §7) and setting aside self-loops, which never participate in
// layering (see [collectSelfLoops]).
func build[N comparable](g graph.Graph[N]) *built[N] {
	nodes := g.Nodes()

	b := &built[N]{
		d:      dag.New(nil),
		idOf:   make(map[N]string, len(nodes)),
		nodeOf: make(map[string]N, len(nodes)),
	}

	for i, n := range nodes {
		id := strconv.Itoa(i)
		b.idOf[n] = id
		b.nodeOf[id] = n
		if err := b.d.AddNode(dag.Node{ID: id}); err != nil {
			panic(err) // ids are freshly generated and unique by construction
		}
	}

	canonicalKey := make(map[[2]string]int)
	edges := g.Edges()
	b.inputEdgeKey = make([]int, len(edges))

	for i, e := range edges {
		from, to := b.idOf[e.From], b.idOf[e.To]
		if from == to {
			b.inputEdgeKey[i] = -1
			continue
		}
		pair := [2]string{from, to}
		key, seen := canonicalKey[pair]
		if !seen {
			key = len(b.canonical)
			canonicalKey[pair] = key
			b.canonical = append(b.canonical, pair)
			if err := b.d.AddEdge(dag.Edge{
				From: from,
				To:   to,
				Meta: dag.Metadata{loEdgeKey: key},
			}); err != nil {
				panic(err) // endpoints were just added above
			}
		}
		b.inputEdgeKey[i] = key
	}

	b.reversedOf = make([]bool, len(b.canonical))
	return b
}

// selfLoopNodes returns, for every input edge that is a self-loop, the
// caller NodeId it loops on, in input edge order.
func selfLoopNodes[N comparable](g graph.Graph[N], b *built[N]) []N {
	var loops []N
	for i, e := range g.Edges() {
		if b.inputEdgeKey[i] == -1 {
			loops = append(loops, e.From)
		}
	}
	return loops
}

// captureReversed records, for every canonical edge, whether the
// acyclifier flipped it. Must run immediately after [transform.BreakCycles]
// and before subdivision.
func (b *built[N]) captureReversed() {
	for _, e := range b.d.Edges() {
		key, ok := e.Meta[loEdgeKey].(int)
		if !ok {
			continue
		}
		b.reversedOf[key] = e.Reversed
	}
}
