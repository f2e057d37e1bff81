package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/stacker/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Reading the leaderboard is public, only submitting requires credentials.
	apiGroup.Get("/scores/top", GetTopScores)
	apiGroup.Post("/scores", middleware.AuthOrToken(), SubmitScore)
}
