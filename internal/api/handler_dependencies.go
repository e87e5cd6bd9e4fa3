package api

import (
	"github.com/ChrisAdy1/cringeshield/internal/db"
	"github.com/ChrisAdy1/cringeshield/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.completionService = services.NewCompletionService(handler.repositories.Challenge, handler.repositories.Weekly, db.IsUniqueViolation)
	handler.badgeService = services.NewBadgeService(handler.repositories.Challenge, handler.repositories.Weekly, handler.repositories.Challenge, handler.repositories.Weekly)
	handler.progressService = services.NewProgressService(handler.repositories.Challenge, handler.repositories.Weekly, handler.repositories.Challenge, handler.repositories.Weekly, handler.accelerated)
	handler.sessionService = services.NewSessionService(handler.repositories.Sessions)
	handler.exportService = services.NewExportService(handler.repositories.Users, handler.repositories.Sessions, handler.repositories.Challenge, handler.repositories.Challenge, handler.repositories.Weekly, handler.repositories.Weekly)
	handler.adminService = services.NewAdminService(handler.repositories.Users, handler.repositories.Challenge, handler.repositories.Weekly, handler.repositories.Sessions)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.withDependencies(handler.db)
	}
}
