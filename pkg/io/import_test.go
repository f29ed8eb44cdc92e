package io_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sugiyama/pkg/dag"
	sugio "github.com/matzehuels/sugiyama/pkg/io"
)

func TestReadJSONDecodesNodesAndEdges(t *testing.T) {
	r := strings.NewReader(`{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"}]}`)

	g, err := sugio.ReadJSON(r)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestReadJSONPreservesRowKindAndMeta(t *testing.T) {
	r := strings.NewReader(`{
		"nodes": [{"id": "a", "row": 2, "kind": "subdivider", "meta": {"label": "A"}}],
		"edges": []
	}`)

	g, err := sugio.ReadJSON(r)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	n, ok := g.Node("a")
	if !ok {
		t.Fatal("node a not found")
	}
	if n.Row != 2 {
		t.Errorf("Row = %d, want 2", n.Row)
	}
	if n.Kind != dag.NodeKindSubdivider {
		t.Errorf("Kind = %v, want NodeKindSubdivider", n.Kind)
	}
	if n.Meta["label"] != "A" {
		t.Errorf("Meta[label] = %v, want A", n.Meta["label"])
	}
}

func TestReadJSONRejectsCycle(t *testing.T) {
	r := strings.NewReader(`{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"},{"from":"b","to":"a"}]}`)

	if _, err := sugio.ReadJSON(r); err == nil {
		t.Error("ReadJSON() error = nil, want cycle error")
	}
}

func TestReadJSONRejectsDuplicateID(t *testing.T) {
	r := strings.NewReader(`{"nodes":[{"id":"a"},{"id":"a"}],"edges":[]}`)

	if _, err := sugio.ReadJSON(r); err == nil {
		t.Error("ReadJSON() error = nil, want duplicate id error")
	}
}

func TestReadJSONRejectsUnknownEdgeEndpoint(t *testing.T) {
	r := strings.NewReader(`{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"missing"}]}`)

	if _, err := sugio.ReadJSON(r); err == nil {
		t.Error("ReadJSON() error = nil, want unknown node error")
	}
}

func TestReadJSONRejectsMalformedJSON(t *testing.T) {
	r := strings.NewReader(`{not json`)

	if _, err := sugio.ReadJSON(r); err == nil {
		t.Error("ReadJSON() error = nil, want decode error")
	}
}

func TestImportJSONReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(path, []byte(`{"nodes":[{"id":"a"}],"edges":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := sugio.ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := sugio.ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON() error = nil, want file-not-found error")
	}
}
