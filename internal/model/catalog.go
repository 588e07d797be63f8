package model

import "time"

// Product categories.
const (
	CategorySkin  = "skin"
	CategoryColor = "color"
)

// Product is a catalog entry shown on the storefront. The catalog is seeded
// at startup and only updated (never created or deleted) through the admin
// API.
type Product struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Category  string `json:"category"`
	Img       string `json:"img"`
	ColorCode string `json:"color_code,omitempty"` // only set for the color line
	Texture   string `json:"texture,omitempty"`    // texture swatch, skin line only
}

// Media asset types accepted by the admin dashboard.
const (
	MediaVideo   = "video"
	MediaPDF     = "pdf"
	MediaArchive = "archive"
)

// MediaAsset is a downloadable or embeddable item in the media lab section.
// OrderIndex controls display order and is not unique; ties keep insertion
// order.
type MediaAsset struct {
	ID            uint64 `json:"id"`
	Title         string `json:"title"`
	SubTitle      string `json:"sub_title"`
	Type          string `json:"type"`
	FilePath      string `json:"file_path"`
	ThumbnailPath string `json:"thumbnail_path"`
	OrderIndex    int    `json:"order_index"`
}

// Showcase slide layouts. The layout is an explicit, validated field; the
// renderer never infers it from titles or slide position.
const (
	LayoutStandard  = "standard"
	LayoutStatement = "statement"
)

// ShowcaseSlide is one slide of the collection showcase slider. Description
// and Features are only rendered by the statement layout; Features holds one
// "Title|Detail" pair per line.
type ShowcaseSlide struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ImageURL    string `json:"image_url"`
	BgColor     string `json:"bg_color"`
	Layout      string `json:"layout"`
	Description string `json:"description,omitempty"`
	Features    string `json:"features,omitempty"`
	OrderIndex  int    `json:"order_index"`
}

// ContactInfo is the singleton contact block rendered in the storefront
// footer. At most one row exists; saving creates it when absent.
type ContactInfo struct {
	ID        uint64    `json:"id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}
