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
)

// AdminHandler implements the main-only account management endpoints. The
// main-role requirement itself is enforced by the RequireRole middleware on
// the route group, not re-checked per handler.
type AdminHandler struct {
	Cfg    config.Config
	Admins store.AdminStore
}

func NewAdminHandler(cfg config.Config, admins store.AdminStore) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Admins: admins}
}

type createAdminReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminResp struct {
	ID                uint64    `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	ReceivesInquiries bool      `json:"receives_inquiries"`
	CreatedAt         time.Time `json:"created_at"`
}

// List handles GET /api/admins and returns all sub-admin accounts. Password
// hashes never leave the repository layer's model, and the response type
// has no field for them at all.
func (h *AdminHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admins, err := h.Admins.ListSubAdmins(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]adminResp, 0, len(admins))
	for _, a := range admins {
		out = append(out, adminResp{
			ID: a.ID, Email: a.Email, Role: a.Role,
			ReceivesInquiries: a.ReceivesInquiries, CreatedAt: a.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /api/admins and adds a sub-admin account.
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Admins.Create(ctx, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "admin already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create admin failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "message": "sub-admin created"})
}

// Delete handles DELETE /api/admins/:id and hard-deletes a sub-admin. The
// query is scoped to role=sub so the seeded main account cannot be removed
// through the API.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Admins.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

type receiverReq struct {
	Email string `json:"email"`
}

// SetInquiryReceiver handles POST /api/config/inquiry-receiver and
// designates the single admin that receives inquiry notifications.
func (h *AdminHandler) SetInquiryReceiver(c echo.Context) error {
	var req receiverReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Admins.SetInquiryReceiver(ctx, req.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "admin not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "inquiry receiver updated"})
}
