package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bizpeer/cdg-beauty/internal/config"
)

// InquiryRateLimit returns an Echo middleware applying a fixed-window
// counter per client IP, backed by Redis so the limit holds across service
// instances. It guards the unauthenticated contact form; exceeding the
// limit yields 429 with a Retry-After hint.
//
// When cfg.Enabled is false or rdb is nil the middleware is a pass-through.
// Redis errors fail open: a broken cache must not take the contact form
// down with it.
func InquiryRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	// The window math works in whole seconds; anything shorter would
	// truncate to a zero divisor.
	if cfg.Window < time.Second {
		cfg.Window = time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			window := time.Now().Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), window)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				// First hit in this window owns the expiry.
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(cfg.Window.Seconds())))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
