package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// DefaultCookieName is the session cookie set on successful login.
const DefaultCookieName = "webEcotoken"

// CookiePolicy controls the attributes of the session cookie. SameSite
// is configurable because SameSite=None has CSRF implications that
// deployments may want to tighten. Secure is on unless explicitly opted
// out, so a zero policy still yields a production-safe cookie.
type CookiePolicy struct {
	Name     string
	MaxAge   time.Duration
	Insecure bool // opt out of the Secure attribute (local development only)
	SameSite http.SameSite
}

// SessionService issues and validates cookie-bound sessions. Validation
// is read-only and fail-closed: any failure, from a malformed token to
// an unreachable user store, yields "not authenticated" with no detail.
type SessionService struct {
	codec  *TokenCodec
	users  ports.UserRepository
	cookie CookiePolicy
	log    zerolog.Logger
}

func NewSessionService(codec *TokenCodec, users ports.UserRepository, cookie CookiePolicy, log zerolog.Logger) *SessionService {
	if cookie.Name == "" {
		cookie.Name = DefaultCookieName
	}
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = defaultSessionTTL
	}
	if cookie.SameSite == 0 {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return &SessionService{codec: codec, users: users, cookie: cookie, log: log}
}

// IssueSession signs a token for subjectID and attaches it to the
// response. With no signing secret configured the response is left
// untouched and domain.ErrNoSigningSecret is returned so the login
// boundary can report the misconfiguration instead of silently logging
// nobody in.
func (s *SessionService) IssueSession(w http.ResponseWriter, subjectID string) error {
	token, err := s.codec.Issue(subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSigningSecret) {
			s.log.Error().Msg("session not issued: signing secret missing")
		}
		return err
	}

	http.SetCookie(w, s.newCookie(token, int(s.cookie.MaxAge.Seconds())))
	return nil
}

// ClearSession expires the session cookie on the client.
func (s *SessionService) ClearSession(w http.ResponseWriter) {
	c := s.newCookie("", -1)
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// GetAuthStatus resolves the request's session into an AuthStatus. It is
// idempotent and side-effect-free; callers may invoke it multiple times
// per request. All failure reasons collapse to an unauthenticated result.
func (s *SessionService) GetAuthStatus(ctx context.Context, r *http.Request) domain.AuthStatus {
	user, err := s.resolve(ctx, r)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSession) &&
			!errors.Is(err, domain.ErrInvalidToken) &&
			!errors.Is(err, domain.ErrUserNotFound) {
			// Store failures and missing secrets still fail closed, but
			// are operational problems worth a log line.
			s.log.Warn().Err(err).Msg("session resolution failed closed")
		}
		return domain.AuthStatus{}
	}
	return domain.AuthStatus{Authenticated: true, User: user}
}

// resolve keeps the specific failure reason so tests can assert on it.
// The reason never crosses the public boundary.
func (s *SessionService) resolve(ctx context.Context, r *http.Request) (*domain.User, error) {
	cookie, err := r.Cookie(s.cookie.Name)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrNoSession
	}

	subject, err := s.codec.Verify(cookie.Value)
	if err != nil {
		return nil, err
	}

	// Role comes from the store on every request, never from the token,
	// so promotions and demotions apply to the next request immediately.
	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *SessionService) newCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   !s.cookie.Insecure,
		SameSite: s.cookie.SameSite,
	}
}
