package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhive/accounts-api/internal/api/metrics"
	"github.com/userhive/accounts-api/internal/core/domain"
)

// RequireAdmin gates a route to identities holding the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role != domain.RoleAdmin {
				metrics.AuthzDenialsTotal.WithLabelValues("not_admin").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin permits the request when the authenticated identity is
// the resource subject (its id equals the named path param) or an admin.
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			role, _ := c.Get(CtxRole).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if role == domain.RoleAdmin || userID == c.Param(param) {
				return next(c)
			}

			metrics.AuthzDenialsTotal.WithLabelValues("not_owner").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "you can only access your own resources")
		}
	}
}
