package api

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
	"github.com/ChrisAdy1/cringeshield/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if credentials.ConfirmPassword != "" && credentials.Password != credentials.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}
	if err := validatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	handler.ensureDependencies()
	exists, err := handler.authService.EmailExists(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:             credentials.Email,
		PasswordHash:      string(passwordHash),
		PracticeReminders: true,
		MilestoneEmails:   true,
		CreatedAt:         time.Now().In(handler.location),
	}
	if handler.adminEmail != "" && services.NormalizeEmail(credentials.Email) == handler.adminEmail {
		user.IsAdmin = true
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	if !handler.loginLimiter.allow(c.IP()) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if credentials.Email == "" || credentials.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if user.MustChangePassword {
		if err := handler.setAuthCookie(c, &user); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create session")
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "password change required",
		})
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
