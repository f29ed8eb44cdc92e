package history

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultDatabase and DefaultCollection name the database/collection the
// bench subcommand uses when the caller doesn't override them.
const (
	DefaultDatabase   = "layoutctl"
	DefaultCollection = "layout_runs"
)

// Connect dials uri and returns a Store backed by database.collection,
// defaulting both to DefaultDatabase/DefaultCollection when empty. The
// returned close func disconnects the underlying client; callers must call
// it (typically via defer) once the Store is no longer needed.
func Connect(ctx context.Context, uri, database, collection string) (store *Store, close func(context.Context) error, err error) {
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping %s: %w", uri, err)
	}

	coll := client.Database(database).Collection(collection)
	return NewStore(coll), client.Disconnect, nil
}
