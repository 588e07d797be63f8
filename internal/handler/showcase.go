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

// ShowcaseHandler manages collection showcase slides: list is public,
// writes are admin. The layout field is a strict enum; there is no
// title-match or first-slide fallback anywhere in the pipeline.
type ShowcaseHandler struct {
	Showcase store.ShowcaseStore
}

func NewShowcaseHandler(showcase store.ShowcaseStore) *ShowcaseHandler {
	return &ShowcaseHandler{Showcase: showcase}
}

type showcaseReq struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ImageURL    string `json:"image_url"`
	BgColor     string `json:"bg_color"`
	Layout      string `json:"layout"`
	Description string `json:"description"`
	Features    string `json:"features"`
	OrderIndex  int    `json:"order_index"`
}

func (r *showcaseReq) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "title is required"
	}
	if r.Layout == "" {
		r.Layout = model.LayoutStandard
	}
	if r.Layout != model.LayoutStandard && r.Layout != model.LayoutStatement {
		return "layout must be standard or statement"
	}
	if r.BgColor == "" {
		r.BgColor = "#F3F3F3"
	}
	return ""
}

// List handles GET /api/showcase, ordered by order_index.
func (h *ShowcaseHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Showcase.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if items == nil {
		items = []model.ShowcaseSlide{}
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /api/showcase (admin).
func (h *ShowcaseHandler) Create(c echo.Context) error {
	var req showcaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := model.ShowcaseSlide{
		Title: req.Title, Subtitle: req.Subtitle, ImageURL: req.ImageURL,
		BgColor: req.BgColor, Layout: req.Layout, Description: req.Description,
		Features: req.Features, OrderIndex: req.OrderIndex,
	}
	if err := h.Showcase.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, s)
}

// Update handles PUT /api/showcase/:id (admin).
func (h *ShowcaseHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req showcaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := model.ShowcaseSlide{
		ID: id, Title: req.Title, Subtitle: req.Subtitle, ImageURL: req.ImageURL,
		BgColor: req.BgColor, Layout: req.Layout, Description: req.Description,
		Features: req.Features, OrderIndex: req.OrderIndex,
	}
	if err := h.Showcase.Update(ctx, &s); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "slide not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /api/showcase/:id (admin); idempotent.
func (h *ShowcaseHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Showcase.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
