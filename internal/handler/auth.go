package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/config"
	"github.com/bizpeer/cdg-beauty/internal/repository"
	"github.com/bizpeer/cdg-beauty/internal/store"
	"github.com/bizpeer/cdg-beauty/internal/utils"
)

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg    config.Config
	Admins store.AdminStore
}

func NewAuthHandler(cfg config.Config, admins store.AdminStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: admins}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// Login verifies credentials and issues a 24-hour session token. Unknown
// emails and wrong passwords produce the identical 400 response so the
// endpoint cannot be used to probe which admin accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, a.Email, a.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{Token: tok.Token, Role: a.Role, Email: a.Email})
}
