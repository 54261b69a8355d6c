package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

const (
	collectionOrders      = "orders"
	collectionOrderEvents = "order_events"
)

// OrderRepository implements ports.OrderRepository using MongoDB.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order document.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, o)
	return err
}

// FindByNumber retrieves an order by order number.
// When userID is non-empty, an additional filter by user_id is applied.
func (r *OrderRepository) FindByNumber(ctx context.Context, orderNumber, userID string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"order_number": orderNumber}
	if userID != "" {
		filter["user_id"] = userID
	}

	var o domain.Order
	err := r.col.FindOne(ctx, filter).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// List returns a page of orders matching filter and the total count.
func (r *OrderRepository) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var out []*domain.Order
	for cursor.Next(ctx) {
		var o domain.Order
		if err := cursor.Decode(&o); err != nil {
			return nil, 0, err
		}
		out = append(out, &o)
	}
	return out, total, cursor.Err()
}

// EnsureIndexes creates necessary indexes on the orders collection.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// OrderEventRepository implements ports.OrderEventRepository using MongoDB.
type OrderEventRepository struct {
	db *mongo.Database
}

func NewOrderEventRepository(db *mongo.Database) ports.OrderEventRepository {
	return &OrderEventRepository{db: db}
}

// UpdateOrderStatus atomically sets the order status and appends a history entry.
func (r *OrderEventRepository) UpdateOrderStatus(
	ctx context.Context,
	orderNumber string,
	status domain.OrderStatus,
	ts time.Time,
	notes string,
) error {
	historyEntry := bson.M{
		"status":    string(status),
		"timestamp": ts.UTC(),
		"notes":     notes,
	}

	filter := bson.M{"order_number": orderNumber}
	update := bson.M{
		"$set":  bson.M{"status": string(status)},
		"$push": bson.M{"status_history": historyEntry},
	}

	_, err := r.db.Collection(collectionOrders).UpdateOne(ctx, filter, update)
	return err
}

// InsertEvent persists an order event to the order_events audit collection.
func (r *OrderEventRepository) InsertEvent(ctx context.Context, event *domain.OrderEvent) error {
	doc := bson.M{
		"order_number": event.OrderNumber,
		"status":       string(event.Status),
		"timestamp":    event.Timestamp.UTC(),
		"source":       event.Source,
		"processed_at": time.Now().UTC(),
	}
	if event.Notes != "" {
		doc["notes"] = event.Notes
	}

	_, err := r.db.Collection(collectionOrderEvents).InsertOne(ctx, doc)
	return err
}
