package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
	"github.com/dicri/evidencetrack/internal/core/security"
)

// authUserKey is the per-request context key the verified identity is
// stored under. Access goes through SetAuthUser/AuthUser only.
const authUserKey = "auth_user"

// SetAuthUser attaches the verified identity to the request context.
func SetAuthUser(c echo.Context, identity *domain.Identity) {
	c.Set(authUserKey, identity)
}

// AuthUser returns the identity attached by the Auth middleware, or false
// when authentication has not run (or failed) on this request.
func AuthUser(c echo.Context) (*domain.Identity, bool) {
	identity, ok := c.Get(authUserKey).(*domain.Identity)
	return identity, ok && identity != nil
}

// Auth verifies the bearer token and injects the caller's identity into the
// request context. The header must be exactly "Bearer <token>": one space,
// two parts, case-sensitive scheme. Verification failures collapse to a
// single INVALID_TOKEN response so callers cannot tell an expired token
// from a tampered one.
func Auth(tokens *security.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.Unauthorized("Missing Authorization header", "MISSING_AUTH_HEADER")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return domain.Unauthorized("Invalid Authorization header format", "INVALID_AUTH_FORMAT")
			}

			accessToken := parts[1]
			if accessToken == "" {
				return domain.Unauthorized("Missing access token", "MISSING_ACCESS_TOKEN")
			}

			identity, err := tokens.Verify(accessToken)
			if err != nil {
				return domain.Unauthorized("Invalid or expired access token", "INVALID_TOKEN")
			}

			SetAuthUser(c, identity)
			return next(c)
		}
	}
}
