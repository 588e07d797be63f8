package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/github"
)

// AssetHandler exposes the GitHub-backed image store to the dashboard.
type AssetHandler struct {
	Client *github.Client
	Dir    string // repository directory holding the site images
}

func NewAssetHandler(client *github.Client, dir string) *AssetHandler {
	return &AssetHandler{Client: client, Dir: dir}
}

// List handles GET /api/assets and returns the image files currently in the
// repository directory, each with the blob sha needed for a replace.
func (h *AssetHandler) List(c echo.Context) error {
	if !h.Client.Configured() {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "asset bridge not configured"})
	}
	files, err := h.Client.ListAssets(c.Request().Context(), h.Dir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error fetching assets"})
	}
	if files == nil {
		files = []github.Asset{}
	}
	return c.JSON(http.StatusOK, files)
}

type replaceAssetReq struct {
	Path    string `json:"path"`
	Content string `json:"content"` // base64, encoded client-side
	Sha     string `json:"sha"`
	Message string `json:"message"`
}

// Replace handles POST /api/assets/replace. The sha must come from the most
// recent listing; if another replace landed in between, GitHub rejects the
// commit and the client gets 409 and must re-list before retrying.
func (h *AssetHandler) Replace(c echo.Context) error {
	if !h.Client.Configured() {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "asset bridge not configured"})
	}
	var req replaceAssetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Path) == "" || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path and content are required"})
	}
	// Attribute the commit to the acting admin.
	if req.Message == "" {
		if email, err := getEmail(c); err == nil {
			req.Message = "Update " + req.Path + " via dashboard (" + email + ")"
		}
	}

	err := h.Client.ReplaceAsset(c.Request().Context(), req.Path, req.Content, req.Sha, req.Message)
	if err != nil {
		if errors.Is(err, github.ErrShaConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "asset sha conflict, refresh the listing"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "error updating asset"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "asset updated"})
}
