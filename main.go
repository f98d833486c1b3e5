package main

import (
	"log"
	"time"

	"devotional/config"
	"devotional/database"
	"devotional/handlers"
	"devotional/logger"
	"devotional/middleware"
	"devotional/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	logger.Log.Info("✅ PostgreSQL database connected successfully")

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Stores are built once and injected; no package-level DB handle.
	devotionals := store.NewDevotionalStore(db)
	users := store.NewUserStore(db)

	devotionalHandler := handlers.NewDevotionalHandler(devotionals)
	authHandler := handlers.NewAuthHandler(users, cfg.JWTSecret)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	app := newApp(cfg, devotionalHandler, authHandler, rateLimiter)

	logger.Log.Info("🚀 HTTP server starting",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.AppEnv),
	)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Failed to start HTTP server", zap.Error(err))
	}
}

// newApp builds the Fiber app with all middleware and routes registered.
func newApp(cfg *config.Config, devotionalHandler *handlers.DevotionalHandler, authHandler *handlers.AuthHandler, rateLimiter *middleware.RateLimiter) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(cfg),
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))
	app.Use(middleware.RateLimit(rateLimiter))

	// API Routes
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", middleware.Auth(cfg.JWTSecret), authHandler.Me)

	// Devotional routes (public, no auth enforcement)
	devotionalGroup := api.Group("/devotionals")
	devotionalGroup.Get("/", devotionalHandler.List)
	devotionalGroup.Post("/", devotionalHandler.Create)
	devotionalGroup.Get("/:id", devotionalHandler.Get)
	devotionalGroup.Patch("/:id", devotionalHandler.Update)
	devotionalGroup.Delete("/:id", devotionalHandler.Delete)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	return app
}

func errorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		// Don't expose internal errors in production
		if cfg.AppEnv == "production" && code == 500 {
			message = "An error occurred. Please try again later."
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   message,
		})
	}
}
