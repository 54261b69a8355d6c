package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/api/metrics"
	"github.com/webeco/storefront-system/internal/core/domain"
)

// SessionValidator resolves the request's session cookie into an
// authentication result. Implemented by service.SessionService.
type SessionValidator interface {
	GetAuthStatus(ctx context.Context, r *http.Request) domain.AuthStatus
}

// Auth requires a valid session and injects the resolved user into the
// echo context. Every rejection is a 401 with no detail about why.
func Auth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			status := sessions.GetAuthStatus(c.Request().Context(), c.Request())
			if !status.Authenticated {
				metrics.SessionsRejectedTotal.Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set("user", status.User)
			c.Set("role", status.User.Role)

			return next(c)
		}
	}
}
