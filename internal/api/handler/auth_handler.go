package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/api/metrics"
	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/ports"
)

type AuthHandler struct {
	service   ports.AuthService
	validator *RequestValidator
}

func NewAuthHandler(service ports.AuthService, validator *RequestValidator) *AuthHandler {
	return &AuthHandler{service: service, validator: validator}
}

// Login authenticates with email and password and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := h.validator.BindBody(c, &req); err != nil {
		return err
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case "INVALID_CREDENTIALS":
				metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			case "TOO_MANY_ATTEMPTS":
				metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			}
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respondSuccess(c, http.StatusOK,
		loginResponse{Token: token, User: user}, "Authenticated successfully")
}

// Profile returns the identity encoded in the presented access token.
//
// @Summary      Authenticated user profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]any
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	identity, err := authUser(c)
	if err != nil {
		return err
	}
	return respondSuccess(c, http.StatusOK, profileResponse{User: identity}, "")
}
