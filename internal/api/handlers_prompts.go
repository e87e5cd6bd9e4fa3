package api

import (
	"github.com/ChrisAdy1/cringeshield/internal/catalog"
	"github.com/ChrisAdy1/cringeshield/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetDailyPrompts(c *fiber.Ctx) error {
	return c.JSON(catalog.DailyPrompts())
}

func (handler *Handler) GetDailyPrompt(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day number")
	}

	prompt, found := catalog.DailyPromptForDay(day)
	if !found {
		return apiError(c, fiber.StatusNotFound, "unknown day")
	}
	return c.JSON(prompt)
}

func (handler *Handler) GetWeeklyPrompts(c *fiber.Ctx) error {
	tier := c.Query("tier")
	if !models.IsWeeklyTier(tier) {
		return apiError(c, fiber.StatusBadRequest, "unknown tier")
	}
	return c.JSON(catalog.WeeklyPromptsForTier(tier))
}
