package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLog logs every request with its method, path, response status and
// duration. Health checks are skipped to keep the log readable.
func RequestLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == "/healthz" {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			log.Printf("%s %s -> %d (%v)", c.Request().Method, c.Request().URL.Path, status, time.Since(start))
			return err
		}
	}
}
