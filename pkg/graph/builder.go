package graph

import "slices"

// Builder is an in-memory [Graph] implementation that callers assemble
// incrementally with [Builder.AddNode] and [Builder.AddEdge]. The zero value
// is ready to use.
//
// Builder preserves insertion order for both nodes and edges, which keeps
// output deterministic for callers that care about stable iteration (tests,
// golden files) even though [Graph] itself makes no ordering guarantee.
type Builder[N comparable] struct {
	nodes []N
	seen  map[N]struct{}
	edges []Edge[N]
}

// NewBuilder returns an empty Builder ready to accept nodes and edges.
func NewBuilder[N comparable]() *Builder[N] {
	return &Builder[N]{seen: make(map[N]struct{})}
}

// AddNode inserts n if it is not already present. Adding a node that already
// exists is a no-op, not an error - callers frequently discover the same
// vertex from multiple edges and should not need to track what they have
// already added.
func (b *Builder[N]) AddNode(n N) *Builder[N] {
	if b.seen == nil {
		b.seen = make(map[N]struct{})
	}
	if _, ok := b.seen[n]; ok {
		return b
	}
	b.seen[n] = struct{}{}
	b.nodes = append(b.nodes, n)
	return b
}

// AddEdge records a directed edge from -> to, implicitly adding either
// endpoint that has not already been added via [Builder.AddNode] or a prior
// [Builder.AddEdge].
func (b *Builder[N]) AddEdge(from, to N) *Builder[N] {
	b.AddNode(from)
	b.AddNode(to)
	b.edges = append(b.edges, Edge[N]{From: from, To: to})
	return b
}

// Nodes implements [Graph].
func (b *Builder[N]) Nodes() []N {
	return slices.Clone(b.nodes)
}

// Edges implements [Graph].
func (b *Builder[N]) Edges() []Edge[N] {
	return slices.Clone(b.edges)
}

// FromNodesEdges builds a [Builder] from flat slices, for callers that
// already have node and edge lists (for example, after decoding a JSON
// document with pkg/io). Edge endpoints not present in nodes are still added
// as vertices, matching [Builder.AddEdge]'s implicit-node behavior.
func FromNodesEdges[N comparable](nodes []N, edges []Edge[N]) *Builder[N] {
	b := NewBuilder[N]()
	for _, n := range nodes {
		b.AddNode(n)
	}
	for _, e := range edges {
		b.AddEdge(e.From, e.To)
	}
	return b
}
