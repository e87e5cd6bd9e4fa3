package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetChallengeProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	days, err := handler.repositories.Challenge.ListDays(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load progress")
	}
	return c.JSON(days)
}

// CompleteChallengeDay answers 201 for a fresh completion and 200 with
// the existing record when the day was already done.
func (handler *Handler) CompleteChallengeDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := challengeDayPayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	record, created, err := handler.completionService.CompleteChallengeDay(user.ID, payload.DayNumber, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(record)
}

func (handler *Handler) GetChallengeDay(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dayNumber, err := c.ParamsInt("dayNumber")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid day number")
	}

	completed, err := handler.completionService.ChallengeDayCompleted(user.ID, dayNumber)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"isCompleted": completed})
}

func (handler *Handler) GetChallengeSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.progressService.BuildChallengeSummary(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load summary")
	}
	return c.JSON(summary)
}
