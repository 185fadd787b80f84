package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/userhive/accounts-api/internal/api/middleware"
	"github.com/userhive/accounts-api/internal/core/domain"
	"github.com/userhive/accounts-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	updateFn func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, in)
}

func (s *stubUserService) Delete(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error) {
	return s.deleteFn(ctx, in)
}

func newUserTestContext(t *testing.T, method, path, body string, identity domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity.ID != "" {
		c.Set(appmiddleware.CtxUserID, identity.ID)
		c.Set(appmiddleware.CtxEmail, identity.Email)
		c.Set(appmiddleware.CtxRole, identity.Role)
	}
	return c, rec
}

func TestUserHandler_List(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: "user_1", Name: "A", Email: "a@x.com", Role: domain.RoleUser},
				{ID: "user_2", Name: "B", Email: "b@x.com", Role: domain.RoleAdmin},
			}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodGet, "/users", "", domain.Identity{ID: "user_1", Role: domain.RoleUser})
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodGet, "/users/missing", "", domain.Identity{ID: "user_1", Role: domain.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Not Found" {
		t.Fatalf("unexpected error code: %v", resp["error"])
	}
}

func TestUserHandler_Update_Success(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			if in.ID != "user_1" || in.Actor.ID != "user_1" || in.Name != "New Name" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: in.ID, Name: in.Name, Email: "a@x.com", Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodPut, "/users/user_1", `{"name":"New Name"}`,
		domain.Identity{ID: "user_1", Role: domain.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_RoleChangeForbidden(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodPut, "/users/user_1", `{"role":"admin"}`,
		domain.Identity{ID: "user_1", Role: domain.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("user_1")
	_ = handler.Update(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestUserHandler_Update_EmptyBody(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodPut, "/users/user_1", `{}`,
		domain.Identity{ID: "user_1", Role: domain.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("user_1")
	_ = handler.Update(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodPut, "/users/missing", `{"name":"Ghost"}`,
		domain.Identity{ID: "admin_1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error) {
			if in.ID != "user_1" || in.Actor.Role != domain.RoleAdmin {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: in.ID, Name: "A", Email: "a@x.com", Role: domain.RoleUser}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodDelete, "/users/user_1", "",
		domain.Identity{ID: "admin_1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodDelete, "/users/missing", "",
		domain.Identity{ID: "admin_1", Role: domain.RoleAdmin})
	c.SetParamNames("id")
	c.SetParamValues("missing")
	_ = handler.Delete(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Not Found" {
		t.Fatalf("unexpected error code: %v", resp["error"])
	}
}

func TestUserHandler_Update_MissingIdentity(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := newUserTestContext(t, http.MethodPut, "/users/user_1", `{"name":"X Y"}`, domain.Identity{})
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := handler.Update(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
