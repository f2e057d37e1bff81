package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/stacker/internal/config"
	"github.com/lk16/stacker/internal/models"
	"github.com/lk16/stacker/internal/repository"
)

// SubmitScore handles submission of a finished game.
func SubmitScore(c *fiber.Ctx) error {
	var payload models.ScoreSubmission
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewScoreRepository(c)
	entry, err := repo.SubmitScore(c.Context(), payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetTopScores returns the best scores, best first.
func GetTopScores(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", config.TopScoresLimit)
	if limit < 1 || limit > config.MaxTopScoresLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("limit must be between 1 and %d", config.MaxTopScoresLimit),
		})
	}

	repo := repository.NewScoreRepository(c)
	scores, err := repo.TopScores(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.TopScoresResponse{Scores: scores})
}
