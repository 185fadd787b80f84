package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/userhive/accounts-api/internal/api/middleware"
	"github.com/userhive/accounts-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get(appmiddleware.CtxUserID).(string)
	if id == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(appmiddleware.CtxEmail).(string)
	role, _ := c.Get(appmiddleware.CtxRole).(string)

	return domain.Identity{ID: id, Email: email, Role: role}, nil
}
