package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// defaultSessionTTL is the validity window for a session token.
const defaultSessionTTL = 15 * 24 * time.Hour

// TokenCodec signs and verifies session tokens. The token binds a user
// identifier only; roles and permissions are never embedded and are
// always re-resolved from the user store at request time.
type TokenCodec struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &TokenCodec{secret: secret, ttl: ttl, now: time.Now}
}

// Issue produces a signed token for subjectID, expiring ttl from now.
// Returns domain.ErrNoSigningSecret when the process has no secret. A
// blank subject is refused outright; Verify would reject it anyway, so
// issuing one could only mint a cookie that never authenticates.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	if c.secret == "" {
		return "", domain.ErrNoSigningSecret
	}
	if subjectID == "" {
		return "", domain.ErrEmptySubject
	}

	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(c.secret))
}

// Verify checks the signature and expiry and returns the embedded
// subject. Every verification failure collapses to domain.ErrInvalidToken.
func (c *TokenCodec) Verify(token string) (string, error) {
	if c.secret == "" {
		return "", domain.ErrNoSigningSecret
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(c.secret), nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}
