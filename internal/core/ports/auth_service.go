package ports

import (
	"context"

	"github.com/userhive/accounts-api/internal/core/domain"
)

// RegisterInput carries a validated signup payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements account registration and sign-in. Both return the
// created/authenticated user alongside a freshly issued bearer token.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
