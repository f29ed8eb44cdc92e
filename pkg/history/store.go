// Package history persists layout runs so a caller can track how a graph's
// crossing count and timing drift over time (the 'bench' subcommand's
// regression view) rather than only ever seeing the latest run.
//
// Persistence is optional: every component that writes to or reads from a
// Store takes it as a parameter, never a global, so Store is exercised for
// regression tracking and trivially absent everywhere else.
package history

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Run records one completed layout computation, suitable for comparing
// against prior runs of the same graph.
type Run struct {
	ID                string    `bson:"_id" json:"id"`
	GraphHash         string    `bson:"graph_hash" json:"graph_hash"`
	NodeCount         int       `bson:"node_count" json:"node_count"`
	EdgeCount         int       `bson:"edge_count" json:"edge_count"`
	Crossings         int       `bson:"crossings" json:"crossings"`
	Direction         string    `bson:"direction" json:"direction"`
	CrossingHeuristic string    `bson:"crossing_heuristic" json:"crossing_heuristic"`
	LayoutTimeMs      int64     `bson:"layout_time_ms" json:"layout_time_ms"`
	RecordedAt        time.Time `bson:"recorded_at" json:"recorded_at"`
}

// Store persists and queries [Run] documents in a single Mongo collection,
// one document per layout run, keyed by a caller-supplied id (typically the
// request id from pkg/server or a uuid minted by the bench subcommand).
type Store struct {
	collection *mongo.Collection
}

// NewStore wraps an existing, already-connected collection. Callers own the
// *mongo.Client's lifecycle (Connect/Disconnect); Store never dials itself.
func NewStore(collection *mongo.Collection) *Store {
	return &Store{collection: collection}
}

// Record inserts run, overwriting any existing document with the same ID.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.RecordedAt.IsZero() {
		run.RecordedAt = time.Now().UTC()
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": run.ID}, run, opts)
	return err
}

// History returns the most recent runs for graphHash, newest first, capped
// at limit (a non-positive limit returns every stored run).
func (s *Store) History(ctx context.Context, graphHash string, limit int) ([]Run, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}})
	if limit > 0 {
		findOpts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, bson.M{"graph_hash": graphHash}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var runs []Run
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// Regression compares the most recent run for graphHash against the one
// before it, reporting the change in crossing count. ok is false when fewer
// than two runs are on record, in which case delta is meaningless.
func (s *Store) Regression(ctx context.Context, graphHash string) (delta int, ok bool, err error) {
	runs, err := s.History(ctx, graphHash, 2)
	if err != nil {
		return 0, false, err
	}
	delta, ok = regressionDelta(runs)
	return delta, ok, nil
}

// regressionDelta is the pure comparison [Store.Regression] wraps, split out
// so the bench subcommand's regression math is testable without a live
// Mongo connection. runs must be newest-first, as [Store.History] returns
// them.
func regressionDelta(runs []Run) (delta int, ok bool) {
	if len(runs) < 2 {
		return 0, false
	}
	return runs[0].Crossings - runs[1].Crossings, true
}
