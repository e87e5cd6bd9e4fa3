package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var errWeakPassword = errors.New("weak password")

func (handler *Handler) parsePayload(c *fiber.Ctx, payload interface{}) error {
	if err := c.BodyParser(payload); err != nil {
		return err
	}
	return handler.validate.Struct(payload)
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = strings.TrimSpace(credentials.Email)
	credentials.Password = strings.TrimSpace(credentials.Password)
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)
	return credentials, nil
}

func validatePasswordStrength(password string) error {
	if !passwordLengthRegex.MatchString(password) {
		return errWeakPassword
	}
	if !passwordLetterRegex.MatchString(password) {
		return errWeakPassword
	}
	if !passwordDigitRegex.MatchString(password) {
		return errWeakPassword
	}
	return nil
}
