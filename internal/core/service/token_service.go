package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhive/accounts-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// accountClaims is the wire shape of the token payload. The user id travels
// in the registered "sub" claim; email and role are private claims.
type accountClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 JWTs carrying an Identity.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token for identity, expiring ttl from now.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := accountClaims{
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates token, returning the embedded identity.
// Malformed tokens, bad signatures, and expired tokens all collapse to
// ErrInvalidToken; callers never learn which check failed.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := &accountClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
