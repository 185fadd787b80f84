package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhive/accounts-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": ..., "message": ...}.
//
// Handlers map the domain errors they expect inline; this handler is the
// safety net for middleware errors, bind failures, and anything unrecognized.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors: middleware rejections, bind failures, router 404s.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{
			Error:   http.StatusText(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Known domain errors escaping a handler's inline mapping.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "Not Found", Message: "User not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "Email already exists", Message: "a user with this email already exists"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "Invalid credentials", Message: "email or password is incorrect"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "Forbidden", Message: "access forbidden"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, errorResponse{Error: "Forbidden", Message: "invalid or expired token"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("path", c.Request().URL.Path).
		Str("method", c.Request().Method).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Error:   "Internal Server Error",
		Message: "something went wrong",
	}
}
