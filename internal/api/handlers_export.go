package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	data, err := handler.exportService.BuildExport(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, exportAttachment("json", data.ExportedAt))
	return c.JSON(data)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	data, err := handler.exportService.BuildExport(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	output, err := handler.exportService.BuildCSV(data)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment("csv", data.ExportedAt))
	return c.Send(output)
}

func exportAttachment(extension string, exportedAt time.Time) string {
	return fmt.Sprintf("attachment; filename=cringeshield-export-%s.%s", exportedAt.Format("2006-01-02"), extension)
}
