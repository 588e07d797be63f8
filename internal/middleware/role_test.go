package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRequireRole(role interface{}, allowed ...string) *httptest.ResponseRecorder {
	e := echo.New()
	seed := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role != nil {
				c.Set("role", role)
			}
			return next(c)
		}
	}
	e.GET("/x", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, seed, RequireRole(allowed...))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	if rec := runRequireRole("main", "main", "sub"); rec.Code != http.StatusOK {
		t.Errorf("main against (main,sub): status = %d, want 200", rec.Code)
	}
	if rec := runRequireRole("sub", "main", "sub"); rec.Code != http.StatusOK {
		t.Errorf("sub against (main,sub): status = %d, want 200", rec.Code)
	}
}

func TestRequireRoleDenies(t *testing.T) {
	// Sub-admins never reach main-only routes.
	if rec := runRequireRole("sub", "main"); rec.Code != http.StatusForbidden {
		t.Errorf("sub against (main): status = %d, want 403", rec.Code)
	}
	// No role in context at all (middleware misordering) is also denied.
	if rec := runRequireRole(nil, "main"); rec.Code != http.StatusForbidden {
		t.Errorf("missing role: status = %d, want 403", rec.Code)
	}
	// Non-string role claim from a tampered token.
	if rec := runRequireRole(42, "main"); rec.Code != http.StatusForbidden {
		t.Errorf("non-string role: status = %d, want 403", rec.Code)
	}
}
