package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetChallengeBadges(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	badges, err := handler.badgeService.ListChallengeBadges(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load badges")
	}
	return c.JSON(badges)
}

// AwardChallengeBadge is the strict award: an already-earned milestone
// is a conflict.
func (handler *Handler) AwardChallengeBadge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := milestonePayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	badge, err := handler.badgeService.AwardChallengeBadge(user.ID, payload.Milestone, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(badge)
}

// CheckAndAwardChallengeBadge is idempotent: 201 when the badge was
// just earned, 200 with the existing badge on repeat calls.
func (handler *Handler) CheckAndAwardChallengeBadge(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := milestonePayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	badge, newlyAwarded, err := handler.badgeService.CheckAndAwardChallengeBadge(user.ID, payload.Milestone, time.Now().In(handler.location))
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
