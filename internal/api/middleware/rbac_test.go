package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
)

func TestRBAC_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(IdentityKey, &domain.User{ID: "u1", Role: domain.RoleInvestor})

	called := false
	handler := RBAC(domain.RoleInvestor, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRBAC_Forbids(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(IdentityKey, &domain.User{ID: "u1", Role: domain.RoleFounder})

	handler := RBAC(domain.RoleInvestor)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	authAssertStatus(t, handler(c), http.StatusForbidden)
}

func TestRBAC_MissingIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RBAC(domain.RoleInvestor)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	authAssertStatus(t, handler(c), http.StatusUnauthorized)
}
