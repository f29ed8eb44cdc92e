// Package pipeline provides the core parse -> layout -> render pipeline for
// this engine's command-line and server front ends.
//
// This package implements the complete parse -> layout -> render pipeline
// that is used by the CLI and the HTTP server. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: decode a graph (nodes and edges) from JSON
//  2. Layout: compute Sugiyama-style positions for the graph
//  3. Render: generate output in various formats (SVG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "graph.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	g, err := runner.Parse(ctx, parseOpts)
//
//	// Layout with existing graph
//	res, err := runner.GenerateLayout(ctx, g, layoutOpts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, res, renderOpts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sugiyama/pkg/cache"
	sugerrors "github.com/matzehuels/sugiyama/pkg/errors"
	"github.com/matzehuels/sugiyama/pkg/graph"
	"github.com/matzehuels/sugiyama/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and server
// =============================================================================

const (
	// DefaultNodeSeparation matches layout.DefaultOptions.
	DefaultNodeSeparation = 50.0
	// DefaultRankSeparation matches layout.DefaultOptions.
	DefaultRankSeparation = 80.0
	// DefaultMaxSweeps matches layout.DefaultOptions.
	DefaultMaxSweeps = 24
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline. This struct
// supports JSON serialization for server requests.
type Options struct {
	// Parse options. Source is a file path; Graph is used instead when the
	// caller already holds decoded nodes and edges (for example, a server
	// request body).
	Source string      `json:"source,omitempty"`
	Graph  *GraphInput `json:"graph,omitempty"`

	// Layout options.
	Direction         string  `json:"direction,omitempty"` // "top-to-bottom" or "left-to-right"
	NodeSeparation    float64 `json:"node_separation,omitempty"`
	RankSeparation    float64 `json:"rank_separation,omitempty"`
	MaxSweeps         int     `json:"max_sweeps,omitempty"`
	CrossingHeuristic string  `json:"crossing_heuristic,omitempty"` // "median" or "barycenter"
	ExhaustiveBelow   int     `json:"exhaustive_below,omitempty"`

	// Render options.
	Formats    []string `json:"formats,omitempty"`
	NodeRadius float64  `json:"node_radius,omitempty"`
	Margin     float64  `json:"margin,omitempty"`
	ShowLabels bool     `json:"show_labels,omitempty"`

	// Refresh bypasses the cache for every stage when true.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// GraphInput is the JSON-serializable node/edge pair accepted directly by
// server requests, mirroring the on-disk format [Parse] reads.
type GraphInput struct {
	Nodes []string    `json:"nodes"`
	Edges []EdgeInput `json:"edges"`
}

// EdgeInput is one directed edge in a [GraphInput].
type EdgeInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed input graph.
	Graph *graph.Builder[string]

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Layout contains the computed positions, routed edges, and layering.
	Layout layout.Result[string]

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Crossings  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return sugerrors.ValidateFormat(format, FormatSVG, FormatJSON)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Source == "" && o.Graph == nil {
		return fmt.Errorf("source or graph is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.NodeSeparation == 0 {
		o.NodeSeparation = DefaultNodeSeparation
	}
	if o.RankSeparation == 0 {
		o.RankSeparation = DefaultRankSeparation
	}
	if o.MaxSweeps == 0 {
		o.MaxSweeps = DefaultMaxSweeps
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutOptions converts the pipeline's serializable fields into
// [layout.Options].
func (o *Options) LayoutOptions() layout.Options {
	opts := layout.Options{
		NodeSeparation:  o.NodeSeparation,
		RankSeparation:  o.RankSeparation,
		MaxSweeps:       o.MaxSweeps,
		ExhaustiveBelow: o.ExhaustiveBelow,
		Logger:          o.Logger,
	}
	if o.Direction == "left-to-right" {
		opts.Direction = layout.LeftToRight
	}
	if o.CrossingHeuristic == "barycenter" {
		opts.CrossingHeuristic = layout.Barycenter
	}
	return opts
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	opts := o.LayoutOptions()
	return cache.LayoutKeyOpts{
		Direction:         int(opts.Direction),
		NodeSeparation:    opts.NodeSeparation,
		RankSeparation:    opts.RankSeparation,
		MaxSweeps:         opts.MaxSweeps,
		CrossingHeuristic: int(opts.CrossingHeuristic),
		ExhaustiveBelow:   opts.ExhaustiveBelow,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	style := "default"
	if o.ShowLabels {
		style = "labeled"
	}
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  style,
	}
}
