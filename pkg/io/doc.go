// Package io provides JSON import and export for directed acyclic graphs (DAGs).
//
// # Overview
//
// This package enables serialization of graphs to and from a simple JSON
// format. The format is designed for:
//
//   - Describing any directed graph as plain data, independent of any
//     particular source (a parsed manifest, a hand-written fixture, a
//     server request body)
//   - Integration with external tools that produce or consume graph data
//   - Round-trip preservation: import, transform, export, and re-import
//     identically
//
// # JSON Format
//
// The format has two required top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "app"},
//	    {"id": "lib-a"},
//	    {"id": "lib-b"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib-a"},
//	    {"from": "lib-a", "to": "lib-b"}
//	  ]
//	}
//
// # Node Fields
//
// Required:
//   - id: Unique string identifier (also used as the display label)
//
// Optional:
//   - row: Pre-assigned layer (computed automatically if omitted)
//   - kind: Internal node type ("subdivider" or "auxiliary")
//   - meta: Freeform object for caller-defined metadata
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the JSON structure and DAG constraints (no cycles,
// no duplicate node IDs). Errors are wrapped with context about which node or
// edge caused the problem. This package's DAG constraint makes it unsuitable
// for decoding input that may contain cycles (the layout engine's own
// acyclifier is meant to handle those) - pkg/pipeline's parse stage decodes
// the same JSON shape directly into a graph.Builder instead, bypassing this
// package's cycle check, for exactly that reason.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to any
// io.Writer:
//
//	err := io.ExportJSON(g, "output.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export includes all node and edge data, including synthetic nodes
// (subdividers, auxiliaries) and their metadata. Row assignments, node kinds,
// and all metadata are preserved. This enables full round-trip fidelity:
// import a graph, transform it, export the result, and re-import identically.
//
// # Concurrency
//
// All functions in this package are safe to call concurrently with other
// readers of the same DAG, but not with concurrent modifications to the DAG.
// The [ReadJSON] and [ImportJSON] functions create independent DAG instances
// that can be used and modified freely after import.
//
// # Layout Export
//
// This package exports the logical graph structure only (nodes, edges,
// metadata). For a computed layout - final coordinates, routed edges, and
// layering - see [layout.Result], which [render.SVG] and a plain JSON
// encoding both consume directly.
//
// [layout.Result]: github.com/matzehuels/sugiyama/pkg/layout
// [render.SVG]: github.com/matzehuels/sugiyama/pkg/render
package io
