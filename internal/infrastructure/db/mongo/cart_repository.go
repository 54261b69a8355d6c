package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webeco/storefront-system/internal/core/domain"
)

const (
	collectionCarts     = "carts"
	collectionWishlists = "wishlists"
)

// CartRepository implements ports.CartRepository using MongoDB. Each user
// owns at most one cart document, keyed by user_id.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

// FindByUser returns the user's cart, or an empty cart when none exists.
func (r *CartRepository) FindByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cart domain.Cart
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.Cart{UserID: userID}, nil
		}
		return nil, err
	}
	return &cart, nil
}

// UpsertItem adds quantity to an existing line, or appends a new line.
func (r *CartRepository) UpsertItem(ctx context.Context, userID string, item domain.CartItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()

	// Try to merge into an existing line first.
	res, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.product_id": item.ProductID},
		bson.M{
			"$inc": bson.M{"items.$.quantity": item.Quantity},
			"$set": bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	_, err = r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$push": bson.M{"items": item},
			"$set":  bson.M{"updated_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID, "items.product_id": productID},
		bson.M{
			"$set": bson.M{
				"items.$.quantity": quantity,
				"updated_at":       time.Now().UTC(),
			},
		},
	)
	return err
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product_id": productID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$set": bson.M{
				"items":      []domain.CartItem{},
				"updated_at": time.Now().UTC(),
			},
		},
	)
	return err
}

// EnsureIndexes creates necessary indexes on the carts collection.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// WishlistRepository implements ports.WishlistRepository using MongoDB.
// Product ids are kept as a set via $addToSet / $pull.
type WishlistRepository struct {
	col *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{col: db.Collection(collectionWishlists)}
}

func (r *WishlistRepository) FindByUser(ctx context.Context, userID string) (*domain.Wishlist, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Wishlist
	err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&w)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.Wishlist{UserID: userID}, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$addToSet": bson.M{"product_ids": productID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"product_ids": productID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	return err
}
