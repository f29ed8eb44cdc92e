// Package pkg holds the libraries of a Sugiyama-style hierarchical graph
// layout engine and the components built around it.
//
// # Overview
//
// The engine takes any directed graph, removes cycles by reversing feedback
// edges, assigns ranks, subdivides long edges with dummy vertices, reduces
// edge crossings with alternating sweeps, and assigns coordinates. Its
// result gives a position for every vertex and a routed polyline for every
// edge.
//
// # Packages
//
//   - pkg/graph: the generic input contract (Graph, Edge) and a Builder.
//   - pkg/layout: the engine; Compute runs the whole pipeline and returns
//     a Result.
//   - pkg/dag: a string-keyed DAG whose nodes sit on rows, with crossing
//     counters. pkg/dag/transform holds cycle breaking, layering,
//     subdivision, transitive reduction and span-overlap resolution;
//     pkg/dag/perm holds permutation generation and PQ-trees.
//   - pkg/render/tower/ordering: row-ordering algorithms (Barycentric,
//     OptimalSearch).
//   - pkg/render: an SVG writer for computed layouts.
//   - pkg/io: JSON import and export of dag.DAG values.
//   - pkg/pipeline: the parse -> layout -> render pipeline and its Runner,
//     with result caching.
//   - pkg/server: an HTTP endpoint (POST /layout) around the pipeline.
//   - pkg/cache, pkg/history, pkg/observability, pkg/errors, pkg/buildinfo:
//     cache backends, stored layout-run history, pipeline hooks, the shared
//     error type, and build metadata.
package pkg
