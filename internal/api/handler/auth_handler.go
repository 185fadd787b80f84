package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhive/accounts-api/internal/api/session"
	"github.com/userhive/accounts-api/internal/core/domain"
	"github.com/userhive/accounts-api/internal/core/ports"
)

// AuthHandler handles the public signup/signin/signout endpoints.
type AuthHandler struct {
	authService  ports.AuthService
	tokenTTL     time.Duration
	secureCookie bool
	log          zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenTTL:     tokenTTL,
		secureCookie: secureCookie,
		log:          log,
	}
}

// Signup creates a new user account and signs the caller in.
//
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: "invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: err.Error()})
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "Email already exists", Message: "a user with this email already exists"})
		}
		return err
	}

	session.Set(c, token, h.tokenTTL, h.secureCookie)

	h.log.Info().Str("email", user.Email).Msg("user registered")
	return c.JSON(http.StatusCreated, userResponse{Message: "User registered", User: user})
}

// Signin authenticates an existing account and sets the token cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: "invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid credentials", Message: "email or password is incorrect"})
		}
		return err
	}

	session.Set(c, token, h.tokenTTL, h.secureCookie)

	h.log.Info().Str("email", user.Email).Msg("user signed in")
	return c.JSON(http.StatusOK, userResponse{Message: "User signed in successfully", User: user})
}

// Signout discards the client-held credential. The bearer token itself stays
// valid until expiry; there is no server-side revocation.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	session.Clear(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "User signed out successfully"})
}
