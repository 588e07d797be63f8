package handler

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/store"
)

//go:embed templates/home.html
var templateFS embed.FS

// SiteHandler renders the public marketing page server-side. Every content
// section degrades independently: if a store read fails the bundled default
// content is rendered instead, so a database outage never takes the
// marketing site down with it.
type SiteHandler struct {
	Products store.ProductStore
	Media    store.MediaStore
	Showcase store.ShowcaseStore
	Contact  store.ContactStore

	tmpl *template.Template
}

// NewSiteHandler parses the embedded page template. Parsing failures are
// programmer errors, so they panic at startup rather than at request time.
func NewSiteHandler(products store.ProductStore, media store.MediaStore, showcase store.ShowcaseStore, contact store.ContactStore) *SiteHandler {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/home.html"))
	return &SiteHandler{Products: products, Media: media, Showcase: showcase, Contact: contact, tmpl: tmpl}
}

// slideView is a ShowcaseSlide prepared for rendering: the Features text is
// split into title/detail pairs.
type slideView struct {
	model.ShowcaseSlide
	FeatureList []featureView
}

type featureView struct {
	Title  string
	Detail string
}

type homeView struct {
	Slides       []slideView
	SkinProducts []model.Product
	ColorLine    []model.Product
	Videos       []model.MediaAsset
	Documents    []model.MediaAsset
	Contact      model.ContactInfo
	HasContact   bool
}

// Home handles GET / and renders the storefront.
func (h *SiteHandler) Home(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	view := homeView{}

	slides, err := h.Showcase.List(ctx)
	if err != nil || len(slides) == 0 {
		if err != nil {
			log.Printf("storefront: showcase fetch failed, using defaults: %v", err)
		}
		slides = model.DefaultShowcase()
	}
	for _, s := range slides {
		view.Slides = append(view.Slides, slideView{ShowcaseSlide: s, FeatureList: parseFeatures(s.Features)})
	}

	products, err := h.Products.List(ctx)
	if err != nil || len(products) == 0 {
		if err != nil {
			log.Printf("storefront: product fetch failed, using defaults: %v", err)
		}
		products = model.DefaultProducts()
	}
	for _, p := range products {
		if p.Category == model.CategoryColor {
			view.ColorLine = append(view.ColorLine, p)
		} else {
			view.SkinProducts = append(view.SkinProducts, p)
		}
	}

	// Media and contact sections simply stay empty on failure.
	if media, err := h.Media.List(ctx); err == nil {
		for _, m := range media {
			if m.Type == model.MediaVideo {
				view.Videos = append(view.Videos, m)
			} else {
				view.Documents = append(view.Documents, m)
			}
		}
	} else {
		log.Printf("storefront: media fetch failed: %v", err)
	}
	if info, err := h.Contact.Get(ctx); err == nil {
		view.Contact = info
		view.HasContact = true
	}

	var buf strings.Builder
	if err := h.tmpl.Execute(&buf, view); err != nil {
		log.Printf("storefront: render failed: %v", err)
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.HTML(http.StatusOK, buf.String())
}

// parseFeatures splits the stored feature text, one "Title|Detail" pair per
// line. Malformed lines keep the whole line as the title.
func parseFeatures(raw string) []featureView {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []featureView
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		title, detail, _ := strings.Cut(line, "|")
		out = append(out, featureView{Title: strings.TrimSpace(title), Detail: strings.TrimSpace(detail)})
	}
	return out
}
