package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webeco/storefront-system/internal/api/metrics"
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/ports"
)

// SessionManager issues and clears session cookies on responses.
// Implemented by service.SessionService.
type SessionManager interface {
	IssueSession(w http.ResponseWriter, subjectID string) error
	ClearSession(w http.ResponseWriter)
}

type AuthHandler struct {
	authService ports.AuthService
	sessions    SessionManager
}

func NewAuthHandler(authService ports.AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User *domain.User `json:"user,omitempty"`
}

// Register creates a new customer account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid registration details")
		}
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			// Unknown account and wrong password answer identically.
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := h.sessions.IssueSession(c.Response(), user.ID); err != nil {
		// A login that cannot produce a session must not look successful.
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	user.PasswordHash = ""
	return c.JSON(http.StatusOK, authResponse{User: user})
}

// Logout clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      204  "session cleared"
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.ClearSession(c.Response())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user})
}
