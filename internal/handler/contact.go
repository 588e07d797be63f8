package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/repository"
	"github.com/bizpeer/cdg-beauty/internal/store"
)

// ContactHandler serves the singleton contact block: read public, write
// admin with create-if-absent semantics.
type ContactHandler struct {
	Contact store.ContactStore
}

func NewContactHandler(contact store.ContactStore) *ContactHandler {
	return &ContactHandler{Contact: contact}
}

// Get handles GET /api/contact. An unsaved contact block is a 404, which
// the storefront treats as "render nothing".
func (h *ContactHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info, err := h.Contact.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "contact info not set"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, info)
}

type contactReq struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Save handles PUT /api/contact (admin). The row is created on first save
// and overwritten afterwards; updated_at is server-assigned.
func (h *ContactHandler) Save(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info := model.ContactInfo{Address: req.Address, Phone: req.Phone, Email: req.Email}
	if err := h.Contact.Save(ctx, &info); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.JSON(http.StatusOK, info)
}
