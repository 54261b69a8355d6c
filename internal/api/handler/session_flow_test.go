package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/api/middleware"
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
	"github.com/webeco/storefront-system/internal/core/service"
)

// memUserRepo is a tiny in-memory user store for the full login flow.
type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.nextID++
	cp := *u
	cp.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// TestSessionFlow_EndToEnd walks the whole cookie lifecycle through real
// HTTP plumbing: login sets the cookie, the gate admits the cookie, and
// deleting the account locks the still-valid cookie out.
func TestSessionFlow_EndToEnd(t *testing.T) {
	repo := &memUserRepo{users: make(map[string]*domain.User)}
	codec := service.NewTokenCodec("e2e-secret", time.Hour)
	sessions := service.NewSessionService(codec, repo, service.CookiePolicy{}, zerolog.Nop())
	authSvc := service.NewAuthService(repo)

	if _, err := authSvc.Register(context.Background(), validE2ERegister()); err != nil {
		t.Fatalf("register: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(authSvc, sessions)
	e.POST("/v1/auth/login", h.Login)
	e.GET("/v1/me", h.Me, middleware.Auth(sessions))

	// 1. Login sets the session cookie.
	loginReq := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"correct-horse"}`))
	loginReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	loginRec := httptest.NewRecorder()
	e.ServeHTTP(loginRec, loginReq)

	if loginRec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", loginRec.Code, loginRec.Body.String())
	}
	cookies := loginRec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != service.DefaultCookieName {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}

	// 2. The cookie passes the gate.
	meReq := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	meReq.AddCookie(cookies[0])
	meRec := httptest.NewRecorder()
	e.ServeHTTP(meRec, meReq)

	if meRec.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", meRec.Code, meRec.Body.String())
	}

	// 3. Without the cookie the gate rejects.
	anonRec := httptest.NewRecorder()
	e.ServeHTTP(anonRec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
	if anonRec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", anonRec.Code)
	}

	// 4. Deleting the account locks out the still-valid cookie.
	for id := range repo.users {
		delete(repo.users, id)
	}
	deletedReq := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	deletedReq.AddCookie(cookies[0])
	deletedRec := httptest.NewRecorder()
	e.ServeHTTP(deletedRec, deletedReq)

	if deletedRec.Code != http.StatusUnauthorized {
		t.Fatalf("deleted account: expected 401, got %d", deletedRec.Code)
	}
}

func validE2ERegister() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "+5215512345678",
		Password: "correct-horse",
	}
}
