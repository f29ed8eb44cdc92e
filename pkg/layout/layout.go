// Package layout implements Sugiyama-style hierarchical graph layout: a
// four-stage pipeline (acyclify, rank, order, position) plus an emitter
// that routes edges through the assigned coordinates.
package layout

import (
	"context"

	"github.com/matzehuels/sugiyama/pkg/dag/transform"
	"github.com/matzehuels/sugiyama/pkg/graph"
)

// Compute lays out g, returning final coordinates for every vertex, a
// routed polyline for every edge, and the rank-ordered layering.
//
// An empty graph (zero vertices) is not an error - it returns a
// zero-valued but well-formed Result. Parallel edges between the same pair
// of vertices are merged into one internal edge but each still receives its
// own Polyline in the returned Result, sharing geometry. Both are silent
// ingest policies, not errors (spec.md §7).
//
// ctx is checked only between pipeline stages, never mid-stage: a
// cancelled context can abort before a slow stage starts but never
// corrupts one in flight.
func Compute[N comparable](ctx context.Context, g graph.Graph[N], opts Options) (Result[N], error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	if len(g.Nodes()) == 0 {
		logger.Debug("empty graph, returning zero-valued result")
		return Result[N]{}, nil
	}

	b := build(g)
	logger.Debug("built internal graph", "nodes", b.d.NodeCount(), "canonical_edges", len(b.canonical))

	if err := ctx.Err(); err != nil {
		return Result[N]{}, err
	}
	acyclify(b)
	logger.Debug("acyclified", "reversed_edges", countReversed(b.reversedOf))

	if err := ctx.Err(); err != nil {
		return Result[N]{}, err
	}
	if err := rankify(b.d); err != nil {
		return Result[N]{}, err
	}
	logger.Debug("ranked graph", "max_rank", b.d.MaxRow())

	if err := ctx.Err(); err != nil {
		return Result[N]{}, err
	}
	// SubdivideEdges only, not the full transform.Subdivide: this pipeline
	// measures crossings and reconstructs edge chains over the result, and
	// the sink-extension half of Subdivide appends dummy chains with no
	// successor purely for the tower renderer's flat-foundation look, which
	// would give every such chain's tail node no successor and let phantom
	// edges skew Result.Crossings.
	transform.SubdivideEdges(b.d)
	logger.Debug("subdivided", "total_vertices", b.d.NodeCount())

	if err := ctx.Err(); err != nil {
		return Result[N]{}, err
	}
	crossings, err := order(b.d, opts)
	if err != nil {
		return Result[N]{}, err
	}
	logger.Debug("ordered rows", "crossings", crossings)

	if err := ctx.Err(); err != nil {
		return Result[N]{}, err
	}
	points := assignPositions(b.d, opts)
	logger.Debug("positioned vertices")

	return emit(g, b, points, crossings, opts), nil
}

func countReversed(reversedOf []bool) int {
	n := 0
	for _, r := range reversedOf {
		if r {
			n++
		}
	}
	return n
}
