package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sugiyama/pkg/cache"
	"github.com/matzehuels/sugiyama/pkg/history"
	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

// benchCommand creates the bench command: compute a layout, record it
// against the graph's history in Mongo, and report whether the crossing
// count regressed relative to the previous recorded run.
func (c *CLI) benchCommand() *cobra.Command {
	var (
		mongoURI   string
		database   string
		collection string
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "bench [graph.json]",
		Short: "Compute a layout and track its crossing count over time",
		Long: `Compute a layout for graph.json and record its crossing count,
node/edge counts, and timing in a Mongo-backed history collection,
then report the change in crossing count since the last recorded run
for the same graph.

Requires --mongo-uri (or MONGODB_URI in the environment).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mongoURI == "" {
				mongoURI = os.Getenv("MONGODB_URI")
			}
			if mongoURI == "" {
				if cfg, err := loadConfig(); err == nil {
					mongoURI = cfg.MongoURI
				}
			}
			if mongoURI == "" {
				return fmt.Errorf("--mongo-uri is required (or set MONGODB_URI, or configure mongo_uri in config.toml)")
			}
			return c.runBench(cmd.Context(), args[0], opts, mongoURI, database, collection)
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "Mongo connection URI")
	cmd.Flags().StringVar(&database, "mongo-database", history.DefaultDatabase, "Mongo database name")
	cmd.Flags().StringVar(&collection, "mongo-collection", history.DefaultCollection, "Mongo collection name")
	cmd.Flags().StringVar(&opts.Direction, "direction", opts.Direction, "layout direction: top-to-bottom (default), left-to-right")
	cmd.Flags().StringVar(&opts.CrossingHeuristic, "ordering", opts.CrossingHeuristic, "crossing-reduction heuristic: median (default), barycenter")

	return cmd
}

func (c *CLI) runBench(ctx context.Context, input string, opts pipeline.Options, mongoURI, database, collection string) error {
	opts.Source = input
	opts.Logger = c.Logger

	store, closeStore, err := history.Connect(ctx, mongoURI, database, collection)
	if err != nil {
		return fmt.Errorf("connect to history store: %w", err)
	}
	defer closeStore(ctx)

	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	g, err := runner.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	res, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	graphData, err := pipeline.MarshalGraph(g)
	if err != nil {
		return fmt.Errorf("hash graph: %w", err)
	}
	// The history key folds in direction and heuristic: a regression
	// comparison is only meaningful between runs computed the same way.
	graphHash := cache.Hash(graphData) + "-" + opts.Direction + "-" + opts.CrossingHeuristic

	run := history.Run{
		ID:                uuid.NewString(),
		GraphHash:         graphHash,
		NodeCount:         len(g.Nodes()),
		EdgeCount:         len(g.Edges()),
		Crossings:         res.Crossings,
		Direction:         opts.Direction,
		CrossingHeuristic: opts.CrossingHeuristic,
	}

	if err := store.Record(ctx, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	printSuccess("Recorded run %s", run.ID)
	printStats(run.NodeCount, run.EdgeCount, cacheHit)
	printKeyValue("Crossings", fmt.Sprintf("%d", run.Crossings))

	delta, ok, err := store.Regression(ctx, run.GraphHash)
	if err != nil {
		return fmt.Errorf("check regression: %w", err)
	}
	if !ok {
		printInfo("No prior run recorded for this graph; nothing to compare against")
		return nil
	}
	switch {
	case delta > 0:
		printWarning("Crossings increased by %d since the last run", delta)
	case delta < 0:
		printSuccess("Crossings decreased by %d since the last run", -delta)
	default:
		printInfo("Crossings unchanged since the last run")
	}

	return nil
}
