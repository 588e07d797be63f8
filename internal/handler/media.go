package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/repository"
	"github.com/bizpeer/cdg-beauty/internal/store"
)

// MediaHandler manages media lab entries: list is public, writes are admin.
type MediaHandler struct {
	Media store.MediaStore
}

func NewMediaHandler(media store.MediaStore) *MediaHandler {
	return &MediaHandler{Media: media}
}

type mediaReq struct {
	Title         string `json:"title"`
	SubTitle      string `json:"sub_title"`
	Type          string `json:"type"`
	FilePath      string `json:"file_path"`
	ThumbnailPath string `json:"thumbnail_path"`
	OrderIndex    int    `json:"order_index"`
}

func (r *mediaReq) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "title is required"
	}
	switch r.Type {
	case model.MediaVideo, model.MediaPDF, model.MediaArchive:
	default:
		return "type must be video, pdf or archive"
	}
	if strings.TrimSpace(r.FilePath) == "" {
		return "file_path is required"
	}
	return ""
}

// List handles GET /api/media, ordered by order_index.
func (h *MediaHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Media.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if items == nil {
		items = []model.MediaAsset{}
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/media (admin).
func (h *MediaHandler) Create(c echo.Context) error {
	var req mediaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.MediaAsset{
		Title: req.Title, SubTitle: req.SubTitle, Type: req.Type,
		FilePath: req.FilePath, ThumbnailPath: req.ThumbnailPath, OrderIndex: req.OrderIndex,
	}
	if err := h.Media.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/media/:id (admin).
func (h *MediaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req mediaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := model.MediaAsset{
		ID: id, Title: req.Title, SubTitle: req.SubTitle, Type: req.Type,
		FilePath: req.FilePath, ThumbnailPath: req.ThumbnailPath, OrderIndex: req.OrderIndex,
	}
	if err := h.Media.Update(ctx, &m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/media/:id (admin); idempotent.
func (h *MediaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Media.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
