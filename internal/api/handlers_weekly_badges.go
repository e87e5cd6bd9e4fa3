package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetWeeklyBadges(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	badges, err := handler.badgeService.ListWeeklyBadges(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load badges")
	}
	return c.JSON(badges)
}

func (handler *Handler) AwardWeeklyBadge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := weeklyBadgePayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	badge, err := handler.badgeService.AwardWeeklyBadge(user.ID, payload.Tier, payload.WeekNumber, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(badge)
}

func (handler *Handler) CheckAndAwardWeeklyBadge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := weeklyBadgePayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	badge, newlyAwarded, err := handler.badgeService.CheckAndAwardWeeklyBadge(user.ID, payload.Tier, payload.WeekNumber, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}

	status := fiber.StatusOK
	if newlyAwarded {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"badge":        badge,
		"newlyAwarded": newlyAwarded,
	})
}
