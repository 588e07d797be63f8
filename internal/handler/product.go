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

// ProductHandler serves the catalog. Reads are public (the storefront
// fetches them without auth); updates require an authenticated admin. There
// is no create or delete: the catalog is fixed at seed time.
type ProductHandler struct {
	Products store.ProductStore
}

func NewProductHandler(products store.ProductStore) *ProductHandler {
	return &ProductHandler{Products: products}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Products.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if items == nil {
		items = []model.Product{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

type productReq struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Category  string `json:"category"`
	Img       string `json:"img"`
	ColorCode string `json:"color_code"`
	Texture   string `json:"texture"`
}

// Update handles PUT /api/products/:id (admin). All fields are overwritten;
// the img path is stored exactly as submitted.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req productReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if req.Category != model.CategorySkin && req.Category != model.CategoryColor {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "category must be skin or color"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := model.Product{
		ID: id, Name: req.Name, Tagline: req.Tagline, Category: req.Category,
		Img: req.Img, ColorCode: req.ColorCode, Texture: req.Texture,
	}
	if err := h.Products.Update(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}
