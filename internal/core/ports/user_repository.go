package ports

import (
	"context"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// UserRepository defines the interface for identity persistence.
// FindByEmail and FindByPhone back the unique secondary keys enforced at
// registration time; FindByID backs session resolution.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
}
