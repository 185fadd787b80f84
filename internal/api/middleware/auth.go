package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhive/accounts-api/internal/api/metrics"
	"github.com/userhive/accounts-api/internal/api/session"
	"github.com/userhive/accounts-api/internal/core/ports"
)

// Context keys the Auth middleware populates for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth resolves the bearer token (header first, cookie fallback), verifies
// it, and injects the identity claims into context. A missing token is 401;
// a token that fails verification for any reason is 403.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := session.Read(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token is required")
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxUserID, identity.ID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
