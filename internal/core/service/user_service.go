package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhive/accounts-api/internal/core/domain"
	"github.com/userhive/accounts-api/internal/core/ports"
)

// UserService implements the user resource operations. Ownership checks run
// in the route middleware; this layer enforces the rules that depend on the
// payload, not just the path.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update applies a partial update. Changing the role requires an admin
// caller even on a self-update; name/email/password changes follow the
// self-or-admin rule already enforced by the middleware.
func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	if in.Role != "" && !in.Actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	patch := ports.UserPatch{
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, in.ID, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", in.ID).Str("actor_id", in.Actor.ID).Msg("user updated")
	return updated, nil
}

// Delete removes an account. An admin deleting their own account is
// permitted but logged at WARN for operator visibility.
func (s *UserService) Delete(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error) {
	if in.Actor.IsAdmin() && in.Actor.ID == in.ID {
		s.log.Warn().Str("user_id", in.ID).Msg("admin deleting their own account")
	}

	deleted, err := s.repo.Delete(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", in.ID).Str("actor_id", in.Actor.ID).Msg("user deleted")
	return deleted, nil
}
