package ports

import (
	"context"

	"github.com/userhive/accounts-api/internal/core/domain"
)

// UpdateUserInput carries a partial update plus the identity of the caller.
// The route middleware already guarantees the caller is the target user or
// an admin; the service still needs the actor to gate role changes.
type UpdateUserInput struct {
	ID       string
	Actor    domain.Identity
	Name     string
	Email    string
	Password string
	Role     string
}

// DeleteUserInput identifies the account to remove and who asked for it.
type DeleteUserInput struct {
	ID    string
	Actor domain.Identity
}

// UserService implements the user resource operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, in DeleteUserInput) (*domain.User, error)
}
