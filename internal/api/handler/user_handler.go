package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhive/accounts-api/internal/core/domain"
	"github.com/userhive/accounts-api/internal/core/ports"
)

// UserHandler handles the protected user resource endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersResponse{
		Message: "Successfully retrieved users",
		Users:   users,
		Count:   len(users),
	})
}

// Get returns a single user by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not Found", Message: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "Successfully retrieved user", User: user})
}

// Update applies a partial update to a user. The route is gated to
// self-or-admin; changing the role additionally requires an admin caller.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: "invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: err.Error()})
	}
	if req.empty() {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Validation Error", Message: "at least one field must be provided"})
	}

	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       c.Param("id"),
		Actor:    actor,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not Found", Message: "User not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, errorResponse{Error: "Forbidden", Message: "only admins can change user roles"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "Email already exists", Message: "a user with this email already exists"})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "Successfully updated user", User: user})
}

// Delete removes a user. The route is gated to self-or-admin.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Delete(c.Request().Context(), ports.DeleteUserInput{
		ID:    c.Param("id"),
		Actor: actor,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Not Found", Message: "User not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Message: "Successfully deleted user", User: user})
}
