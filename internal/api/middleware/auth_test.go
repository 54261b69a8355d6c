package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/core/domain"
)

type stubValidator struct {
	status domain.AuthStatus
}

func (s *stubValidator) GetAuthStatus(_ context.Context, _ *http.Request) domain.AuthStatus {
	return s.status
}

func TestAuthMiddleware_ValidSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	user := &domain.User{ID: "user_1", Name: "Alice", Role: domain.RoleUser}
	mw := Auth(&stubValidator{status: domain.AuthStatus{Authenticated: true, User: user}})

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		got, _ := c.Get("user").(*domain.User)
		if got == nil || got.ID != "user_1" {
			t.Fatalf("user not set: %+v", got)
		}
		if c.Get("role") != domain.RoleUser {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RejectedSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubValidator{})
	handler := mw(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
