package api

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/db"
	"github.com/ChrisAdy1/cringeshield/internal/services"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	accelerated  bool
	adminEmail   string
	validate     *validator.Validate
	loginLimiter *loginLimiter

	repositories      *db.Repositories
	authService       *services.AuthService
	completionService *services.CompletionService
	badgeService      *services.BadgeService
	progressService   *services.ProgressService
	sessionService    *services.SessionService
	exportService     *services.ExportService
	adminService      *services.AdminService
}

const authTokenTTL = 7 * 24 * time.Hour

// NewHandler wires the HTTP layer. accelerated switches the weekly
// unlock policy into completion-based pacing; adminEmail promotes the
// matching account to admin on registration.
func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, accelerated bool, adminEmail string) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		accelerated:  accelerated,
		adminEmail:   services.NormalizeEmail(adminEmail),
		validate:     validator.New(),
		loginLimiter: newLoginLimiter(),
	}
	return handler.withDependencies(database)
}
