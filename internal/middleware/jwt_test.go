package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func runJWTAuth(authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"email": c.Get("email"),
			"role":  c.Get("role"),
		})
	}, JWTAuth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec := runJWTAuth("")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	rec := runJWTAuth("Bearer not.a.jwt")
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := signToken(t, testSecret, jwt.MapClaims{
		"email": "a@b.com", "role": "main",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	rec := runJWTAuth("Bearer " + expired)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	forged := signToken(t, "other-secret", jwt.MapClaims{
		"email": "a@b.com", "role": "main",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec := runJWTAuth("Bearer " + forged)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	valid := signToken(t, testSecret, jwt.MapClaims{
		"email": "sub@example.com", "role": "sub",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	rec := runJWTAuth("Bearer " + valid)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	for _, want := range []string{"sub@example.com", `"role":"sub"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}
