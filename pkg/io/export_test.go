package io_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/sugiyama/pkg/dag"
	sugio "github.com/matzehuels/sugiyama/pkg/io"
)

func TestWriteJSONRoundTrips(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "a", Row: 0})
	_ = g.AddNode(dag.Node{ID: "a_sub_1", Row: 1, Kind: dag.NodeKindSubdivider, Meta: dag.Metadata{"masterID": "a"}})
	_ = g.AddEdge(dag.Edge{From: "a", To: "a_sub_1"})

	var buf bytes.Buffer
	if err := sugio.WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := sugio.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if got.NodeCount() != g.NodeCount() {
		t.Errorf("NodeCount() = %d, want %d", got.NodeCount(), g.NodeCount())
	}
	n, ok := got.Node("a_sub_1")
	if !ok {
		t.Fatal("node a_sub_1 not found after round trip")
	}
	if n.Row != 1 {
		t.Errorf("Row = %d, want 1", n.Row)
	}
	if n.Kind != dag.NodeKindSubdivider {
		t.Errorf("Kind = %v, want NodeKindSubdivider", n.Kind)
	}
}

func TestExportJSONWritesFile(t *testing.T) {
	g := dag.New(nil)
	_ = g.AddNode(dag.Node{ID: "a"})

	path := filepath.Join(t.TempDir(), "out.json")
	if err := sugio.ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if len(data) == 0 {
		t.Error("exported file is empty")
	}
}

func TestExportJSONInvalidPath(t *testing.T) {
	g := dag.New(nil)
	if err := sugio.ExportJSON(g, filepath.Join(t.TempDir(), "missing-dir", "out.json")); err == nil {
		t.Error("ExportJSON() error = nil, want error for missing parent directory")
	}
}
