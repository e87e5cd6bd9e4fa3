package api

import (
	"errors"

	"github.com/ChrisAdy1/cringeshield/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service sentinels onto the HTTP error
// taxonomy: validation and state errors are 400, unknown resources 404,
// already-done conflicts 409. Ineligible awards carry the progress gap
// so the client can render "5 of 7".
func respondServiceError(c *fiber.Ctx, err error) error {
	if ineligible, ok := services.AsIneligible(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "not eligible",
			"completed": ineligible.Completed,
			"required":  ineligible.Required,
		})
	}

	switch {
	case errors.Is(err, services.ErrInvalidDayNumber),
		errors.Is(err, services.ErrInvalidMilestone),
		errors.Is(err, services.ErrInvalidTier),
		errors.Is(err, services.ErrInvalidWeekNumber),
		errors.Is(err, services.ErrInvalidSessionInput),
		errors.Is(err, services.ErrInvalidConfidenceRating),
		errors.Is(err, services.ErrWeeklyNotStarted):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPromptNotFound),
		errors.Is(err, services.ErrSessionNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrWeeklyAlreadyStarted),
		errors.Is(err, services.ErrBadgeAlreadyAwarded),
		errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}
