package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bizpeer/cdg-beauty/internal/config"
	"github.com/bizpeer/cdg-beauty/internal/database"
	"github.com/bizpeer/cdg-beauty/internal/github"
	"github.com/bizpeer/cdg-beauty/internal/handler"
	"github.com/bizpeer/cdg-beauty/internal/mailer"
	"github.com/bizpeer/cdg-beauty/internal/model"
	"github.com/bizpeer/cdg-beauty/internal/queue"
	"github.com/bizpeer/cdg-beauty/internal/repository"
	"github.com/bizpeer/cdg-beauty/internal/router"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	// Schema and seed data. All steps are idempotent across restarts.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	admins := repository.NewAdminRepo(db)
	inquiries := repository.NewInquiryRepo(db)
	products := repository.NewProductRepo(db)
	media := repository.NewMediaRepo(db)
	showcase := repository.NewShowcaseRepo(db)
	contact := repository.NewContactRepo(db)

	if err := admins.EnsureMainAdmin(ctx, cfg.AdminEmail, cfg.AdminPass, cfg.BcryptCost); err != nil {
		log.Fatalf("seed main admin: %v", err)
	}
	if err := products.SeedDefaults(ctx, model.DefaultProducts()); err != nil {
		log.Fatalf("seed products: %v", err)
	}
	if err := showcase.SeedDefaults(ctx, model.DefaultShowcase()); err != nil {
		log.Fatalf("seed showcase: %v", err)
	}

	// Optional infrastructure: a nil Redis client disables caching and rate
	// limiting; the inquiry consumer reconnects on its own for the life of
	// the process.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}
	go queue.StartInquiryConsumer()

	gh := github.NewClient(cfg.GitHubToken, cfg.GitHubOwner, cfg.GitHubRepo)
	if !gh.Configured() {
		log.Println("github credentials missing, asset bridge disabled")
	}
	mail := mailer.New(cfg)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, admins),
		Admin:    handler.NewAdminHandler(cfg, admins),
		Inquiry:  handler.NewInquiryHandler(inquiries, admins, mail),
		Asset:    handler.NewAssetHandler(gh, cfg.GitHubAssetDir),
		Product:  handler.NewProductHandler(products),
		Media:    handler.NewMediaHandler(media),
		Showcase: handler.NewShowcaseHandler(showcase),
		Contact:  handler.NewContactHandler(contact),
		Site:     handler.NewSiteHandler(products, media, showcase, contact),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, h, rdb)

	addr := ":" + cfg.Port
	go func() {
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown: finish in-flight requests before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("received %v, shutting down", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
