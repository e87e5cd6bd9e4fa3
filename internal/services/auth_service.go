package services

import (
	"errors"
	"strings"

	"github.com/ChrisAdy1/cringeshield/internal/models"
)

var ErrEmailTaken = errors.New("email already exists")

type UserStore interface {
	CountUsers() (int64, error)
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	UpdateNotificationPreferences(userID uint, practiceReminders bool, milestoneEmails bool) error
	DeleteAccountAndRelatedData(userID uint) error
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// NormalizeEmail is the canonical email form used for lookups and the
// uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *AuthService) EmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(NormalizeEmail(email))
}

func (service *AuthService) CreateUser(user *models.User) error {
	user.Email = NormalizeEmail(user.Email)
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(NormalizeEmail(email))
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return service.users.UpdatePassword(userID, passwordHash, mustChangePassword)
}

func (service *AuthService) UpdateNotificationPreferences(userID uint, practiceReminders bool, milestoneEmails bool) error {
	return service.users.UpdateNotificationPreferences(userID, practiceReminders, milestoneEmails)
}

func (service *AuthService) DeleteAccount(userID uint) error {
	return service.users.DeleteAccountAndRelatedData(userID)
}
