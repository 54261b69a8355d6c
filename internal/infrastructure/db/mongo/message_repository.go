package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/webeco/storefront-system/internal/core/domain"
)

const collectionMessages = "messages"

// MessageRepository implements ports.MessageRepository using MongoDB.
type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(collectionMessages)}
}

type mongoMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	UserName  string             `bson:"user_name"`
	Subject   string             `bson:"subject"`
	Body      string             `bson:"body"`
	Reply     string             `bson:"reply,omitempty"`
	RepliedAt time.Time          `bson:"replied_at,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d mongoMessage) toDomain() *domain.Message {
	return &domain.Message{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		UserName:  d.UserName,
		Subject:   d.Subject,
		Body:      d.Body,
		Reply:     d.Reply,
		RepliedAt: d.RepliedAt,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMessage{
		UserID:    m.UserID,
		UserName:  m.UserName,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoMessage
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *MessageRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Message, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MessageRepository) ListAll(ctx context.Context) ([]*domain.Message, error) {
	return r.list(ctx, bson.M{})
}

func (r *MessageRepository) list(ctx context.Context, query bson.M) ([]*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*domain.Message
	for cursor.Next(ctx) {
		var doc mongoMessage
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *MessageRepository) SetReply(ctx context.Context, id, reply string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"reply":      reply,
		"replied_at": time.Now().UTC(),
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
