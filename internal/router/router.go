package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/bizpeer/cdg-beauty/internal/config"
	"github.com/bizpeer/cdg-beauty/internal/handler"
	"github.com/bizpeer/cdg-beauty/internal/middleware"
	"github.com/bizpeer/cdg-beauty/internal/model"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Admin    *handler.AdminHandler
	Inquiry  *handler.InquiryHandler
	Asset    *handler.AssetHandler
	Product  *handler.ProductHandler
	Media    *handler.MediaHandler
	Showcase *handler.ShowcaseHandler
	Contact  *handler.ContactHandler
	Site     *handler.SiteHandler
}

// Register wires all routes onto the Echo instance. Three tiers exist:
// public storefront reads (cached, no auth), admin routes behind JWTAuth,
// and account-management routes additionally behind RequireRole(main).
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.Use(middleware.RequestLog())

	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Server-rendered marketing page.
	e.GET("/", h.Site.Home)

	// Public content reads feeding the storefront. These sit behind the
	// Redis response cache; writes go through the admin routes below and
	// entries age out after the configured TTL.
	pub := e.Group("/api", middleware.PublicCache(config.LoadCacheConfig(), rdb))
	pub.GET("/products", h.Product.List)
	pub.GET("/products/:id", h.Product.Get)
	pub.GET("/media", h.Media.List)
	pub.GET("/showcase", h.Showcase.List)
	pub.GET("/contact", h.Contact.Get)

	// Login and the public contact form. The form is rate limited per
	// client IP to keep it from being scripted.
	e.POST("/api/auth/login", h.Auth.Login)
	e.POST("/api/inquiry", h.Inquiry.Submit,
		middleware.InquiryRateLimit(config.LoadRateLimitConfig(), rdb))

	// Routes for any authenticated admin (main or sub).
	auth := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleMain, model.RoleSub))
	auth.GET("/inquiries", h.Inquiry.List)
	auth.DELETE("/inquiries/:id", h.Inquiry.Delete)
	auth.GET("/assets", h.Asset.List)
	auth.POST("/assets/replace", h.Asset.Replace)
	auth.PUT("/products/:id", h.Product.Update)
	auth.POST("/media", h.Media.Create)
	auth.PUT("/media/:id", h.Media.Update)
	auth.DELETE("/media/:id", h.Media.Delete)
	auth.POST("/showcase", h.Showcase.Create)
	auth.PUT("/showcase/:id", h.Showcase.Update)
	auth.DELETE("/showcase/:id", h.Showcase.Delete)
	auth.PUT("/contact", h.Contact.Save)

	// Account management is restricted to the main admin.
	main := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleMain))
	main.GET("/admins", h.Admin.List)
	main.POST("/admins", h.Admin.Create)
	main.DELETE("/admins/:id", h.Admin.Delete)
	main.POST("/config/inquiry-receiver", h.Admin.SetInquiryReceiver)
}
