package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second

	// Catalog browsing fans out many short queries per page view. The
	// pool is capped explicitly so a traffic burst queues in the driver
	// instead of piling connections onto the database.
	defaultMaxPoolSize = 64
)

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI         string
	Database    string
	Timeout     time.Duration
	MaxPoolSize uint64
}

// clientOptions translates Config into driver options. Reads may fall back
// to a secondary because catalog traffic is read-heavy; order writes and the
// event pipeline still go through the primary.
func clientOptions(cfg Config) *options.ClientOptions {
	pool := cfg.MaxPoolSize
	if pool == 0 {
		pool = defaultMaxPoolSize
	}
	return options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(pool).
		SetReadPreference(readpref.PrimaryPreferred())
}

// Connect establishes a MongoDB client, verifies that the primary is
// reachable with a ping, and returns both the client and the selected
// database. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
