package routes

import (
	"time"

	"github.com/creatorhub/creator-platform/internal/config"
	"github.com/creatorhub/creator-platform/internal/handlers"
	"github.com/creatorhub/creator-platform/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	contentHandler *handlers.ContentHandler,
	feedHandler *handlers.FeedHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	jwt := middleware.JWTProtected(cfg)
	adminOnly := middleware.AdminRequired(db, cfg)

	// Users
	users := api.Group("/users", jwt)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)
	users.Put("/:id/credits", userHandler.UpdateCredits)

	// Content — list and fetch are public; fetch increments views
	content := api.Group("/content")
	content.Get("/", contentHandler.List)
	content.Post("/", jwt, contentHandler.Create)
	content.Get("/:id", contentHandler.Get)
	content.Put("/:id", jwt, contentHandler.Update)
	content.Delete("/:id", jwt, contentHandler.Delete)
	content.Put("/:id/like", jwt, contentHandler.Like)

	// Feed — aggregation is public, save/report require a session
	feedGroup := api.Group("/feed")
	feedGroup.Get("/", feedHandler.Feed)
	feedGroup.Post("/save", jwt, feedHandler.Save)
	feedGroup.Get("/saved", jwt, feedHandler.ListSaved)
	feedGroup.Delete("/saved/:id", jwt, feedHandler.DeleteSaved)
	feedGroup.Post("/report", jwt, feedHandler.Report)

	// Reports — internal content reporting plus admin moderation
	reports := api.Group("/reports", jwt)
	reports.Post("/", reportHandler.ReportInternal)
	reports.Get("/", adminOnly, reportHandler.List)
	reports.Put("/:id", adminOnly, reportHandler.UpdateStatus)

	// Admin panel
	admin := api.Group("/admin", jwt, adminOnly)
	admin.Get("/users", userHandler.List)
	admin.Put("/users/:id", userHandler.AdminUpdate)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Get("/reported-content", reportHandler.List)
	admin.Put("/reported-content/:id", reportHandler.UpdateStatus)
}
