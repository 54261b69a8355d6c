package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware and performs
// a fast-fail check before any service call: a missing user means the
// route is misconfigured (handler mounted without the middleware).
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
