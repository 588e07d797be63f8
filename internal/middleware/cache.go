package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bizpeer/cdg-beauty/internal/config"
)

// bodyCapture buffers the response body up to a limit while still streaming
// it to the client. Oversized bodies poison the buffer so they are never
// cached.
type bodyCapture struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	overflow bool
	limit    int
}

func (bc *bodyCapture) WriteHeader(code int) {
	bc.status = code
	bc.ResponseWriter.WriteHeader(code)
}

func (bc *bodyCapture) Write(b []byte) (int, error) {
	if !bc.overflow {
		if bc.buf.Len()+len(b) > bc.limit {
			bc.overflow = true
		} else {
			bc.buf.Write(b)
		}
	}
	return bc.ResponseWriter.Write(b)
}

// PublicCache returns an Echo middleware that caches successful GET
// responses in Redis. It is applied only to the unauthenticated storefront
// reads (products, media, showcase, contact), which all serve JSON, so only
// the body is cached and replayed with a JSON content type. Writes go
// through the admin API on separate routes; entries simply age out after the
// configured TTL.
//
// When cfg.Enabled is false or rdb is nil the middleware is a pass-through.
func PublicCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := requestKey(cfg.Prefix, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			bc := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = bc
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only successful, bounded responses are cached. A failed SET is
			// ignored; the next request just misses again.
			if bc.status == http.StatusOK && !bc.overflow && bc.buf.Len() > 0 {
				_ = rdb.Set(ctx, key, bc.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}

// requestKey derives the cache key for a request. The concrete URL path is
// used, not the registered route pattern: /api/products/1 and
// /api/products/2 share a route but must cache separately.
func requestKey(prefix string, c echo.Context) string {
	u := c.Request().URL
	return cacheKey(prefix, u.Path, u.RawQuery)
}

// cacheKey hashes path+query under the configured prefix so keys stay short
// and uniform regardless of query length.
func cacheKey(prefix, path, query string) string {
	sum := sha1.Sum([]byte(strings.Join([]string{path, query}, "?")))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
