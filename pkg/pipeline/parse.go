package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	sugerrors "github.com/matzehuels/sugiyama/pkg/errors"
	"github.com/matzehuels/sugiyama/pkg/graph"
)

// jsonGraph is the on-disk and over-the-wire shape Parse decodes: flat node
// and edge lists. Unlike pkg/io's format, this one tolerates cycles and
// duplicate edges - the layout engine's acyclifier and ingest-merge policy
// handle both, so Parse does no DAG validation of its own.
type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID string `json:"id"`
}

type jsonEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Parse resolves a graph from the configured source: a JSON file path
// (Options.Source) or an already-decoded [GraphInput] (Options.Graph).
func Parse(ctx context.Context, opts Options) (*graph.Builder[string], error) {
	if opts.Graph != nil {
		return graphFromInput(opts.Graph)
	}
	if opts.Source == "" {
		return nil, fmt.Errorf("source or graph is required")
	}
	return ParseFile(opts.Source)
}

// ParseFile reads a JSON graph document from path.
func ParseFile(path string) (*graph.Builder[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader decodes a JSON graph document from r:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Edge endpoints that do not appear in "nodes" are still added as vertices,
// matching [graph.Builder.AddEdge]'s implicit-node behavior.
func ParseReader(r io.Reader) (*graph.Builder[string], error) {
	var data jsonGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := graph.NewBuilder[string]()
	for _, n := range data.Nodes {
		if err := sugerrors.ValidateNodeLabel(n.ID); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		b.AddNode(n.ID)
	}
	for _, e := range data.Edges {
		b.AddEdge(e.From, e.To)
	}
	return b, nil
}

// graphFromInput converts a [GraphInput] (already decoded, e.g. from a
// server request body) into a [graph.Builder]. Node labels are validated the
// same way [ParseReader] validates them, since a request body is just as
// untrusted as a JSON file.
func graphFromInput(in *GraphInput) (*graph.Builder[string], error) {
	b := graph.NewBuilder[string]()
	for _, n := range in.Nodes {
		if err := sugerrors.ValidateNodeLabel(n); err != nil {
			return nil, fmt.Errorf("node %q: %w", n, err)
		}
		b.AddNode(n)
	}
	for _, e := range in.Edges {
		b.AddEdge(e.From, e.To)
	}
	return b, nil
}

// MarshalGraph serializes g to the same jsonGraph shape [ParseReader]
// reads, preserving insertion order so identical graphs hash identically.
func MarshalGraph(g *graph.Builder[string]) ([]byte, error) {
	data := jsonGraph{}
	for _, n := range g.Nodes() {
		data.Nodes = append(data.Nodes, jsonNode{ID: n})
	}
	for _, e := range g.Edges() {
		data.Edges = append(data.Edges, jsonEdge{From: e.From, To: e.To})
	}
	return json.Marshal(data)
}
