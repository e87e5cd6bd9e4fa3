package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AdminOverview(c *fiber.Ctx) error {
	overview, err := handler.adminService.BuildOverview()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load overview")
	}
	return c.JSON(overview)
}

func (handler *Handler) AdminUsers(c *fiber.Ctx) error {
	summaries, err := handler.adminService.ListUserSummaries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(summaries)
}
