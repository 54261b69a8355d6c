package ports

import (
	"context"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// RegisterInput carries the data needed to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthService verifies credentials. Session issuance is a separate
// concern handled by the session layer, so Login returns the user only.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
