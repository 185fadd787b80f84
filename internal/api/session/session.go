// Package session moves the bearer token between the server and the client.
// The token rides either the Authorization header or an httpOnly cookie;
// sign-out only discards the client-held copy — any other holder of the same
// bearer token stays valid until natural expiry.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieName is the cookie the token is stored under.
const CookieName = "token"

// Set attaches the token as an httpOnly cookie expiring alongside the token
// itself. Secure must be true in production-like deployments.
func Set(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read resolves the request token: Authorization "Bearer <token>" header
// first, cookie fallback. Returns "" when neither source carries one.
func Read(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && parts[1] != "" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Clear removes the cookie by overwriting it with an already-expired one.
func Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}
