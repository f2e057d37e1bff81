package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/stacker/internal/routes/api"
	"github.com/lk16/stacker/internal/routes/version"
	"github.com/lk16/stacker/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/api/scores/top")
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve leaderboard updates
	ws.SetupRoutes(app)

	// Serve version info
	version.SetupRoutes(app)

	app.Get("/", rootHandler)
}
