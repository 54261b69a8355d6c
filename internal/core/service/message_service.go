package service

import (
	"context"
	"errors"
	"time"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

var ErrEmptyMessage = errors.New("message subject and body are required")

// MessageService implements customer-to-store messaging.
type MessageService struct {
	repo ports.MessageRepository
}

func NewMessageService(repo ports.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) Send(ctx context.Context, in ports.SendMessageInput) (*domain.Message, error) {
	if in.Subject == "" || in.Body == "" {
		return nil, ErrEmptyMessage
	}

	return s.repo.Create(ctx, &domain.Message{
		UserID:    in.UserID,
		UserName:  in.UserName,
		Subject:   in.Subject,
		Body:      in.Body,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *MessageService) ListForUser(ctx context.Context, userID string) ([]*domain.Message, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *MessageService) ListAll(ctx context.Context) ([]*domain.Message, error) {
	return s.repo.ListAll(ctx)
}

func (s *MessageService) Reply(ctx context.Context, messageID, reply string) error {
	if reply == "" {
		return ErrEmptyMessage
	}
	if _, err := s.repo.FindByID(ctx, messageID); err != nil {
		return err
	}
	return s.repo.SetReply(ctx, messageID, reply)
}
