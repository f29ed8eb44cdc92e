package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRunParse(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(input, []byte(`{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"}]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New(os.Stderr, LogInfo)
	if err := c.runParse(context.Background(), input, "", false); err != nil {
		t.Fatalf("runParse() error: %v", err)
	}
}

func TestRunParseWritesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	output := filepath.Join(dir, "out.json")
	if err := os.WriteFile(input, []byte(`{"nodes":[{"id":"a"}],"edges":[]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New(os.Stderr, LogInfo)
	if err := c.runParse(context.Background(), input, output, false); err != nil {
		t.Fatalf("runParse() error: %v", err)
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestRunParseMissingFile(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	if err := c.runParse(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "", false); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunParseStrictRejectsCycle(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	// a->b->a is fine for the tolerant pipeline parser (the layout
	// pipeline's acyclifier breaks the cycle) but --strict rejects it.
	if err := os.WriteFile(input, []byte(`{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"},{"from":"b","to":"a"}]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New(os.Stderr, LogInfo)
	if err := c.runParse(context.Background(), input, "", false); err != nil {
		t.Fatalf("runParse() without --strict should tolerate cycles, got: %v", err)
	}
	if err := c.runParse(context.Background(), input, "", true); err == nil {
		t.Error("runParse() with --strict should reject a cycle")
	}
}

func TestRunParseStrictAcceptsDAG(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(input, []byte(`{"nodes":[{"id":"a"},{"id":"b"}],"edges":[{"from":"a","to":"b"}]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New(os.Stderr, LogInfo)
	if err := c.runParse(context.Background(), input, "", true); err != nil {
		t.Fatalf("runParse(strict) on a valid DAG should succeed, got: %v", err)
	}
}
