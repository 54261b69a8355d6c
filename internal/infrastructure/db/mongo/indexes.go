package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every collection index the repositories rely on.
// Called once at startup, before the server accepts traffic.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}

	for name, repo := range map[string]indexed{
		"users":      NewUserRepository(db),
		"categories": NewCategoryRepository(db),
		"products":   NewProductRepository(db),
		"carts":      NewCartRepository(db),
		"orders":     NewOrderRepository(db),
		"reviews":    NewReviewRepository(db),
	} {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}
