package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newSessionSvc(secret string, repo *stubUserRepo) (*SessionService, *TokenCodec) {
	codec := NewTokenCodec(secret, time.Hour)
	svc := NewSessionService(codec, repo, CookiePolicy{}, zerolog.Nop())
	return svc, codec
}

func seedUser(repo *stubUserRepo, role string) *domain.User {
	u, err := repo.Create(context.Background(), &domain.User{
		Name:         "Alice",
		Email:        "alice@example.com",
		Phone:        "+5215512345678",
		PasswordHash: "$2a$10$fakehash",
		Role:         role,
	})
	if err != nil {
		panic(err)
	}
	return u
}

// sessionCookie extracts the session cookie set on a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == DefaultCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

// requestWith returns a GET request carrying the given cookie.
func requestWith(cookie *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

// ---------------------------------------------------------------------------
// Issuance
// ---------------------------------------------------------------------------

func TestSessionService_IssueSession_CookieAttributes(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("secret", repo)

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}

	c := sessionCookie(t, rec)
	if c.Value == "" {
		t.Error("expected non-empty cookie value")
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie must be Secure by default")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("expected SameSite=None by default, got %v", c.SameSite)
	}
	if c.Path != "/" {
		t.Errorf("expected path /, got %q", c.Path)
	}
	if c.MaxAge <= 0 {
		t.Errorf("expected positive MaxAge, got %d", c.MaxAge)
	}
}

func TestSessionService_IssueSession_InsecureOptOut(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	codec := NewTokenCodec("secret", time.Hour)
	svc := NewSessionService(codec, repo, CookiePolicy{Insecure: true}, zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}

	if sessionCookie(t, rec).Secure {
		t.Error("expected Secure off when explicitly opted out")
	}
}

func TestSessionService_IssueSession_MissingSecret(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("", repo)

	rec := httptest.NewRecorder()
	err := svc.IssueSession(rec, user.ID)
	if !errors.Is(err, domain.ErrNoSigningSecret) {
		t.Fatalf("expected ErrNoSigningSecret, got: %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie may be set without a signing secret")
	}
}

func TestSessionService_ClearSession(t *testing.T) {
	svc, _ := newSessionSvc("secret", newStubUserRepo())

	rec := httptest.NewRecorder()
	svc.ClearSession(rec)

	c := sessionCookie(t, rec)
	if c.Value != "" {
		t.Errorf("expected empty value, got %q", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("expected negative MaxAge, got %d", c.MaxAge)
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestSessionService_GetAuthStatus_NoCookie(t *testing.T) {
	svc, _ := newSessionSvc("secret", newStubUserRepo())

	status := svc.GetAuthStatus(context.Background(), requestWith(nil))
	if status.Authenticated {
		t.Error("expected unauthenticated without a cookie")
	}
	if status.User != nil {
		t.Error("expected nil user")
	}
}

func TestSessionService_GetAuthStatus_ValidSession(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("secret", repo)

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}

	status := svc.GetAuthStatus(context.Background(), requestWith(sessionCookie(t, rec)))
	if !status.Authenticated {
		t.Fatal("expected authenticated")
	}
	if status.User.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, status.User.ID)
	}
	if status.User.PasswordHash != "" {
		t.Error("password hash must not cross the session boundary")
	}
}

func TestSessionService_GetAuthStatus_TamperedCookie(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("secret", repo)

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}

	c := sessionCookie(t, rec)
	c.Value = c.Value[:len(c.Value)-2] + "xx"

	status := svc.GetAuthStatus(context.Background(), requestWith(c))
	if status.Authenticated {
		t.Error("expected tampered cookie to be rejected")
	}
}

func TestSessionService_GetAuthStatus_ExpiredSession(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, codec := newSessionSvc("secret", repo)

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issuedAt }

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	cookie := sessionCookie(t, rec)

	codec.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	status := svc.GetAuthStatus(context.Background(), requestWith(cookie))
	if status.Authenticated {
		t.Error("expected expired session to be rejected")
	}
}

func TestSessionService_GetAuthStatus_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("secret", repo)

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	cookie := sessionCookie(t, rec)

	// Account removed while the cookie is still live.
	delete(repo.byID, user.ID)

	status := svc.GetAuthStatus(context.Background(), requestWith(cookie))
	if status.Authenticated {
		t.Error("expected session for deleted user to be rejected")
	}
}

func TestSessionService_GetAuthStatus_StoreFailureFailsClosed(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("secret", repo)

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	cookie := sessionCookie(t, rec)

	repo.findErr = errors.New("mongo unavailable")

	status := svc.GetAuthStatus(context.Background(), requestWith(cookie))
	if status.Authenticated {
		t.Error("expected store failure to fail closed")
	}
}

func TestSessionService_GetAuthStatus_RoleFreshness(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	svc, _ := newSessionSvc("secret", repo)

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}
	cookie := sessionCookie(t, rec)

	// Promote after the cookie was issued. The token carries no role, so
	// the very next request must see the new one.
	repo.byID[user.ID].Role = domain.RoleAdmin

	status := svc.GetAuthStatus(context.Background(), requestWith(cookie))
	if !status.Authenticated {
		t.Fatal("expected authenticated")
	}
	if status.User.Role != domain.RoleAdmin {
		t.Errorf("expected fresh role admin, got %q", status.User.Role)
	}
}

func TestSessionService_GetAuthStatus_CustomCookieName(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(repo, domain.RoleUser)
	codec := NewTokenCodec("secret", time.Hour)
	svc := NewSessionService(codec, repo, CookiePolicy{Name: "sid"}, zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := svc.IssueSession(rec, user.ID); err != nil {
		t.Fatalf("issue session: %v", err)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sid" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected cookie named sid")
	}

	status := svc.GetAuthStatus(context.Background(), requestWith(cookie))
	if !status.Authenticated {
		t.Error("expected authenticated with custom cookie name")
	}
}
