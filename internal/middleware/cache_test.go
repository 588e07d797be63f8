package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bizpeer/cdg-beauty/internal/config"
)

func TestPublicCacheDisabledPassesThrough(t *testing.T) {
	calls := 0
	e := echo.New()
	e.GET("/api/products", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"n": calls})
	}, PublicCache(config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache", MaxBodyBytes: 1 << 20}, nil))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if rec.Header().Get("X-Cache") != "" {
			t.Error("pass-through middleware set X-Cache")
		}
	}
	// Without Redis every request reaches the handler.
	if calls != 2 {
		t.Errorf("handler calls = %d, want 2", calls)
	}
}

func TestInquiryRateLimitDisabledPassesThrough(t *testing.T) {
	e := echo.New()
	e.POST("/api/inquiry", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, InquiryRateLimit(config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute, Prefix: "rl"}, nil))

	// Well past the configured limit; with rdb==nil nothing is throttled.
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/inquiry", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}

// Keys must come from the concrete request path, not the registered route
// pattern, or every product id would replay the first cached one.
func TestRequestKeyDistinguishesPathParams(t *testing.T) {
	e := echo.New()
	keys := map[string]string{}
	e.GET("/api/products/:id", func(c echo.Context) error {
		keys[c.Param("id")] = requestKey("storefront", c)
		return c.NoContent(http.StatusOK)
	})

	for _, id := range []string{"1", "2"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/"+id, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("id %s: status = %d", id, rec.Code)
		}
	}
	if keys["1"] == keys["2"] {
		t.Errorf("ids 1 and 2 share cache key %s", keys["1"])
	}
}

// A sub-second window must not reach the bucket division as a zero divisor.
func TestInquiryRateLimitSubSecondWindow(t *testing.T) {
	// Non-nil but unreachable client: the limiter computes the bucket, then
	// fails open on the Redis error.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer rdb.Close()

	e := echo.New()
	e.POST("/api/inquiry", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, InquiryRateLimit(config.RateLimitConfig{
		Enabled: true, Limit: 5, Window: 500 * time.Millisecond, Prefix: "rl",
	}, rdb))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/inquiry", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRateLimitConfigClampsWindow(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "500ms")
	if cfg := config.LoadRateLimitConfig(); cfg.Window < time.Second {
		t.Errorf("window = %v, want >= 1s", cfg.Window)
	}
}

func TestCacheKeyStable(t *testing.T) {
	a := cacheKey("cache", "/api/products", "limit=5")
	b := cacheKey("cache", "/api/products", "limit=5")
	if a != b {
		t.Errorf("same input produced different keys: %s vs %s", a, b)
	}
	if c := cacheKey("cache", "/api/products", "limit=6"); c == a {
		t.Error("different query produced the same key")
	}
}
