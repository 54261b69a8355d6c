package ports

import (
	"context"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// MessageRepository defines persistence operations for customer messages.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Message, error)
	ListAll(ctx context.Context) ([]*domain.Message, error)
	SetReply(ctx context.Context, id, reply string) error
}

// SendMessageInput carries one customer message.
type SendMessageInput struct {
	UserID   string
	UserName string
	Subject  string
	Body     string
}

// MessageService defines customer messaging use cases.
type MessageService interface {
	Send(ctx context.Context, in SendMessageInput) (*domain.Message, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Message, error)
	ListAll(ctx context.Context) ([]*domain.Message, error)
	Reply(ctx context.Context, messageID, reply string) error
}
