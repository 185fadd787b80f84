package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/userhive/accounts-api/internal/api/metrics"
	"github.com/userhive/accounts-api/internal/core/domain"
	"github.com/userhive/accounts-api/internal/core/ports"
)

// AuthService implements signup and sign-in.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates an account and issues its first token. The role defaults
// to "user" when the payload omits it.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(identityOf(created))
	if err != nil {
		return nil, "", err
	}

	metrics.SignupsTotal.Inc()
	return created, token, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password both return ErrInvalidCredentials so the response never leaks
// which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SigninsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.SigninsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return nil, "", err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return user, token, nil
}

func identityOf(u *domain.User) domain.Identity {
	return domain.Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}
