package internal

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/middleware"
	"github.com/lk16/stacker/internal/repository"
	"github.com/lk16/stacker/internal/routes"
	"github.com/lk16/stacker/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
	schemaTimeout       = 10 * time.Second
)

// BuildApp creates the score server for the given configuration and connections.
func BuildApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		return c.Next()
	})

	app.Use(middleware.Logging())

	routes.SetupRoutes(app)

	return app
}

// SetupApp loads the configuration from the environment and connects to postgres and Redis.
func SetupApp() (*fiber.App, *config.ServerConfig) {
	config.SetLogLevel()

	cfg := config.LoadServerConfig()

	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	if err = repository.NewScoreRepositoryFromServices(services).EnsureSchema(ctx); err != nil {
		slog.Error("Failed to create schema", "error", err)
		os.Exit(1)
	}

	return BuildApp(cfg, services), cfg
}
