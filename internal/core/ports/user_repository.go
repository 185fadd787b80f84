package ports

import (
	"context"

	"github.com/userhive/accounts-api/internal/core/domain"
)

// UserPatch carries the fields of a partial update. Empty strings mean
// "leave unchanged"; the password arrives here already hashed.
type UserPatch struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

// UserRepository defines the persistence interface for user accounts.
// Implementations map storage failures to domain errors: duplicate email
// to ErrUserExists, missing rows to ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) (*domain.User, error)
}
