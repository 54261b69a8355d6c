package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webeco/storefront-system/internal/core/domain"
)

const collectionReviews = "reviews"

// ReviewRepository implements ports.ReviewRepository using MongoDB.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

type mongoReview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product_id"`
	UserID    string             `bson:"user_id"`
	UserName  string             `bson:"user_name"`
	Stars     int                `bson:"stars"`
	Comment   string             `bson:"comment,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoReview{
		ProductID: review.ProductID,
		UserID:    review.UserID,
		UserName:  review.UserName,
		Stars:     review.Stars,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrReviewExists
		}
		return nil, err
	}

	created := *review
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReviewRepository) ExistsForUser(ctx context.Context, productID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"product_id": productID, "user_id": userID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByProduct returns a page of reviews, newest first, and the total count.
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string, page, limit int) ([]*domain.Review, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"product_id": productID}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var out []*domain.Review
	for cursor.Next(ctx) {
		var doc mongoReview
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		out = append(out, &domain.Review{
			ID:        doc.ID.Hex(),
			ProductID: doc.ProductID,
			UserID:    doc.UserID,
			UserName:  doc.UserName,
			Stars:     doc.Stars,
			Comment:   doc.Comment,
			CreatedAt: doc.CreatedAt.UTC(),
		})
	}
	return out, total, cursor.Err()
}

// EnsureIndexes enforces one review per user per product.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "product_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
