package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/api/middleware"
	"github.com/dicri/evidencetrack/internal/core/domain"
)

// authUser returns the identity attached by the Auth middleware. Handlers
// behind the authentication gate call this before any service call; a
// missing identity means the gate did not run and is rejected outright.
func authUser(c echo.Context) (*domain.Identity, error) {
	identity, ok := middleware.AuthUser(c)
	if !ok {
		return nil, domain.Unauthorized("User is not authenticated", "MISSING_AUTH_USER")
	}
	return identity, nil
}
