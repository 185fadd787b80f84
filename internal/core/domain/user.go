package domain

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user with this email already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the persisted account entity. PasswordHash is never serialized;
// every response body carries the sanitized projection of this struct.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the claim set carried by a bearer token. It is the sole
// authorization source for the lifetime of the token: a role change takes
// effect on the next issuance, not retroactively.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
