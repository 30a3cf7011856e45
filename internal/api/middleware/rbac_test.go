package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

func newRBACContext(t *testing.T, roleName string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if roleName != "" {
		SetAuthUser(c, &domain.Identity{UserID: 1, RoleName: roleName})
	}
	return c
}

func TestRequireRoles_Allowed(t *testing.T) {
	called := false
	handler := RequireRoles(domain.RoleTechnician, domain.RoleCoordinator)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(newRBACContext(t, domain.RoleCoordinator)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestRequireRoles_Forbidden(t *testing.T) {
	handler := RequireRoles(domain.RoleCoordinator)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newRBACContext(t, domain.RoleTechnician))

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", apiErr.Status)
	}
	if apiErr.Code != "INSUFFICIENT_ROLE" {
		t.Fatalf("expected INSUFFICIENT_ROLE, got %s", apiErr.Code)
	}
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	handler := RequireRoles(domain.RoleCoordinator)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(newRBACContext(t, ""))

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.Status)
	}
	if apiErr.Code != "MISSING_AUTH_USER" {
		t.Fatalf("expected MISSING_AUTH_USER, got %s", apiErr.Code)
	}
}
