package cli

import (
	"testing"

	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output, strips input extension", "", "graph.json", "graph"},
		{"output with known format extension stripped", "out.svg", "graph.json", "out"},
		{"output without known extension kept as-is", "out", "graph.json", "out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatsDefault(t *testing.T) {
	got := parseFormats("")
	if len(got) != 1 || got[0] != pipeline.FormatSVG {
		t.Errorf("parseFormats(\"\") = %v, want [svg]", got)
	}
}

func TestParseFormatsMultiple(t *testing.T) {
	got := parseFormats("svg,json")
	want := []string{"svg", "json"}
	if len(got) != len(want) {
		t.Fatalf("parseFormats() length = %d, want %d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("parseFormats()[%d] = %q, want %q", i, got[i], v)
		}
	}
}

func TestValidFormatsMap(t *testing.T) {
	if !pipeline.ValidFormats["svg"] || !pipeline.ValidFormats["json"] {
		t.Error("svg and json should be valid formats")
	}
	if pipeline.ValidFormats["pdf"] {
		t.Error("pdf should no longer be a valid format")
	}
}
