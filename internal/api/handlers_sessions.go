package api

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := sessionPayload{}
	if err := handler.parsePayload(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	session, err := handler.sessionService.RecordSession(user.ID, services.PracticeSessionInput{
		PromptCategory:  payload.PromptCategory,
		PromptText:      payload.PromptText,
		DurationSeconds: payload.DurationSeconds,
		Confidence:      payload.Confidence,
		Reflection:      payload.Reflection,
	}, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (handler *Handler) GetSessions(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sessions, err := handler.sessionService.ListSessions(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sessions")
	}
	return c.JSON(sessions)
}

func (handler *Handler) DeleteSession(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.sessionService.DeleteSession(user.ID, c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
