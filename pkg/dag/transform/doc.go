// Package transform provides graph transformations that prepare a DAG for
// tower rendering.
//
// # Overview
//
// Real-world dependency graphs rarely arrive in a form suitable for direct
// tower visualization. This package provides a normalization pipeline that
// transforms arbitrary DAGs into a canonical form where:
//
//   - Edges connect only consecutive rows (no long-spanning edges)
//   - Redundant transitive edges are removed
//   - Impossible crossing patterns are resolved with separator beams
//   - Nodes are assigned to rows based on their depth from roots
//
// The [Normalize] function applies the complete pipeline in the correct order.
//
// # Transitive Reduction
//
// [TransitiveReduction] removes redundant edges that can be inferred through
// other paths. If A→B and B→C exist, then A→C is redundant and removed.
//
// This is critical for tower layouts because transitive edges create
// impossible geometry—a block cannot simultaneously rest on something two
// floors down while also having direct contact.
//
// # Edge Subdivision
//
// [Subdivide] breaks long edges (spanning multiple rows) into chains of
// single-row hops by inserting subdivider nodes. For example:
//
//	Before: app (row 0) → core (row 3)
//	After:  app → app_sub_1 → app_sub_2 → core
//
// Subdivider nodes maintain a MasterID linking back to their origin, allowing
// them to be visually merged into continuous vertical blocks during rendering.
//
// This also extends all sink nodes (leaves) to the bottom row, ensuring the
// tower has a flat foundation.
//
// # Span Overlap Resolution
//
// [ResolveSpanOverlaps] handles "tangle motifs"—graph patterns that guarantee
// edge crossings regardless of ordering. The classic example is a complete
// bipartite subgraph where multiple parents share multiple children.
//
// Rather than accepting unavoidable crossings, this function inserts auxiliary
// "separator beam" nodes that group the edges through a shared intermediate:
//
//	Before: auth→logging, auth→metrics, api→logging, api→metrics (guaranteed crossing)
//	After:  auth→sep, api→sep, sep→logging, sep→metrics (no crossing possible)
//
// # Layer Assignment
//
// [AssignLayers] computes the row (layer) for each node based on its depth
// from source nodes (those with no incoming edges). This uses a topological
// traversal to ensure parents are always in rows above their children.
//
// # Cycle Breaking
//
// [BreakCycles] detects edges that create cycles and reverses them in place
// using a DFS-based feedback arc set heuristic. Reversed edges are flagged
// via [dag.Edge.Reversed] rather than dropped, so every input edge still
// appears somewhere in the graph after normalization.
//
// # Usage
//
// For most use cases, call [Normalize] which applies all transformations:
//
//	transform.Normalize(g) // Modifies g in place
//
// For fine-grained control, apply transformations individually:
//
//	transform.BreakCycles(g)
//	transform.TransitiveReduction(g)
//	transform.AssignLayers(g)
//	transform.Subdivide(g)
//	transform.ResolveSpanOverlaps(g)
package transform
