package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vetcare/clinic-api/internal/core/domain"
)

func runRBAC(t *testing.T, mw echo.MiddlewareFunc, actor *domain.Actor) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set(ActorKey, *actor)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRBAC_AllowsListedRoles(t *testing.T) {
	mw := RBAC(domain.RoleAdmin, domain.RoleVeterinarian)

	for _, role := range []string{domain.RoleAdmin, domain.RoleVeterinarian} {
		if err := runRBAC(t, mw, &domain.Actor{ID: 1, Role: role}); err != nil {
			t.Fatalf("role %q should pass, got %v", role, err)
		}
	}
}

func TestRBAC_RejectsOtherRoles(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)

	err := runRBAC(t, mw, &domain.Actor{ID: 1, Role: domain.RoleUser})
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRBAC_RequiresAuthFirst(t *testing.T) {
	mw := RBAC(domain.RoleAdmin)

	err := runRBAC(t, mw, nil)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without an authenticated actor, got %v", err)
	}
}
