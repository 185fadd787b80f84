package handler

import "github.com/userhive/accounts-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses: a short error code plus a human-readable message. Internal
// details never reach the client.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is a partial update; every field is optional but the
// body must set at least one of them.
type updateUserRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=255"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

func (r updateUserRequest) empty() bool {
	return r.Name == "" && r.Email == "" && r.Password == "" && r.Role == ""
}

// --- Response types ---

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type usersResponse struct {
	Message string        `json:"message"`
	Users   []domain.User `json:"users"`
	Count   int           `json:"count"`
}
