package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

// RequireRoles enforces a per-route role allow-list. The list is plain data
// fixed at route registration; the gate itself performs no I/O.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := AuthUser(c)
			if !ok {
				return domain.Unauthorized("User is not authenticated", "MISSING_AUTH_USER")
			}

			if _, ok := allowed[identity.RoleName]; !ok {
				return domain.Forbidden(
					"User does not have permission to perform this action",
					"INSUFFICIENT_ROLE",
				)
			}

			return next(c)
		}
	}
}
