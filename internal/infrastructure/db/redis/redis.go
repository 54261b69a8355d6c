package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second

	// The dedup checker issues one short SET NX round trip per order
	// event, from every dispatcher worker at once. The pool matches that
	// burst profile rather than the client default.
	defaultPoolSize = 32
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr     string
	DB       int
	Timeout  time.Duration
	PoolSize int
}

// clientOptions translates Config into client options. The dial, read,
// and write timeouts all share cfg.Timeout: dedup sits on the event
// ingestion path and a slow Redis must surface as an error, not a stall.
func clientOptions(cfg Config) *redis.Options {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pool := cfg.PoolSize
	if pool <= 0 {
		pool = defaultPoolSize
	}
	return &redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		PoolSize:     pool,
	}
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	opts := clientOptions(cfg)
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
