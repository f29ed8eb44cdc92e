package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

// layoutCommand creates the layout command for computing a graph layout.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute a Sugiyama-style layout for a graph",
		Long: `Compute a Sugiyama-style layout for a graph.

The layout command takes a graph.json file (produced by 'parse') and computes
node positions, edge routes, and layer assignments. The output is a
layout.json file that can be rendered to SVG using the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVar(&opts.Direction, "direction", opts.Direction, "layout direction: top-to-bottom (default), left-to-right")
	cmd.Flags().Float64Var(&opts.NodeSeparation, "node-separation", opts.NodeSeparation, "minimum spacing between nodes in the same layer")
	cmd.Flags().Float64Var(&opts.RankSeparation, "rank-separation", opts.RankSeparation, "spacing between layers")
	cmd.Flags().IntVar(&opts.MaxSweeps, "max-sweeps", opts.MaxSweeps, "maximum crossing-reduction sweeps")
	cmd.Flags().StringVar(&opts.CrossingHeuristic, "ordering", opts.CrossingHeuristic, "crossing-reduction heuristic: median (default), barycenter")
	cmd.Flags().IntVar(&opts.ExhaustiveBelow, "exhaustive-below", opts.ExhaustiveBelow, "brute-force order ranks with at most this many nodes")

	return cmd
}

// runLayout parses the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	opts.Source = input
	opts.Logger = c.Logger

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	g, err := runner.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	res, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	data, err := pipeline.Render(res, pipeline.Options{Formats: []string{pipeline.FormatJSON}})
	if err != nil {
		return fmt.Errorf("serialize layout: %w", err)
	}
	if err := writeFile(data[pipeline.FormatJSON], outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(g.Nodes()), len(g.Edges()), cacheHit)
	printNewline()
	printNextStep("Render", "layoutctl visualize "+outputPath)

	return nil
}
