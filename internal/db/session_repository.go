package db

import (
	"errors"

	"github.com/ChrisAdy1/cringeshield/internal/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	database *gorm.DB
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{database: database}
}

func (repo *SessionRepository) Create(session *models.PracticeSession) error {
	return repo.database.Create(session).Error
}

func (repo *SessionRepository) ListByUser(userID uint) ([]models.PracticeSession, error) {
	sessions := make([]models.PracticeSession, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *SessionRepository) FindByPublicID(userID uint, publicID string) (models.PracticeSession, bool, error) {
	var session models.PracticeSession
	err := repo.database.
		Where("user_id = ? AND public_id = ?", userID, publicID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PracticeSession{}, false, nil
	}
	if err != nil {
		return models.PracticeSession{}, false, err
	}
	return session, true, nil
}

func (repo *SessionRepository) DeleteByPublicID(userID uint, publicID string) (bool, error) {
	result := repo.database.
		Where("user_id = ? AND public_id = ?", userID, publicID).
		Delete(&models.PracticeSession{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *SessionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PracticeSession{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *SessionRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.PracticeSession{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
