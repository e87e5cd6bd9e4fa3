package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetWeeklyChallenge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.progressService.BuildWeeklyStatus(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weekly challenge")
	}
	return c.JSON(status)
}

// StartWeeklyChallenge enrolls the user in a tier. Enrollment is
// one-shot: a second attempt answers 409 regardless of tier.
func (handler *Handler) StartWeeklyChallenge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := weeklyEnrollPayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	progress, err := handler.completionService.StartWeeklyChallenge(user.ID, payload.Tier, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(progress)
}

func (handler *Handler) CompleteWeeklyPrompt(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := weeklyCompletePayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	progress, err := handler.completionService.CompleteWeeklyPrompt(user.ID, payload.PromptID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(progress)
}
