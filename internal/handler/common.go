package handler // handler implements the HTTP endpoints of the admin API and storefront

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getEmail returns the authenticated admin's email stored in the context by
// the JWT middleware.
func getEmail(c echo.Context) (string, error) {
	if v, ok := c.Get("email").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("no authenticated email in context")
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
