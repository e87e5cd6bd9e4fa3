package db

import (
	"errors"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	database *gorm.DB
}

func NewChallengeRepository(database *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{database: database}
}

func (repo *ChallengeRepository) ListDays(userID uint) ([]models.ChallengeDayProgress, error) {
	days := make([]models.ChallengeDayProgress, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("day_number ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *ChallengeRepository) CountDays(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ChallengeDayProgress{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ChallengeRepository) FindDay(userID uint, dayNumber int) (models.ChallengeDayProgress, bool, error) {
	var day models.ChallengeDayProgress
	err := repo.database.
		Where("user_id = ? AND day_number = ?", userID, dayNumber).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ChallengeDayProgress{}, false, nil
	}
	if err != nil {
		return models.ChallengeDayProgress{}, false, err
	}
	return day, true, nil
}

// InsertDay records a day completion. A duplicate insert is absorbed by
// returning the pre-existing row with created=false, so a racing
// double-submit can never produce two rows for the same day.
func (repo *ChallengeRepository) InsertDay(userID uint, dayNumber int, completedAt time.Time) (models.ChallengeDayProgress, bool, error) {
	day := models.ChallengeDayProgress{
		UserID:      userID,
		DayNumber:   dayNumber,
		CompletedAt: completedAt,
	}
	err := repo.database.Create(&day).Error
	if err == nil {
		return day, true, nil
	}
	if !IsUniqueViolation(err) {
		return models.ChallengeDayProgress{}, false, err
	}

	existing, found, findErr := repo.FindDay(userID, dayNumber)
	if findErr != nil {
		return models.ChallengeDayProgress{}, false, findErr
	}
	if !found {
		return models.ChallengeDayProgress{}, false, err
	}
	return existing, false, nil
}

func (repo *ChallengeRepository) ListBadges(userID uint) ([]models.ChallengeBadge, error) {
	badges := make([]models.ChallengeBadge, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("milestone ASC").
		Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (repo *ChallengeRepository) FindBadge(userID uint, milestone int) (models.ChallengeBadge, bool, error) {
	var badge models.ChallengeBadge
	err := repo.database.
		Where("user_id = ? AND milestone = ?", userID, milestone).
		First(&badge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ChallengeBadge{}, false, nil
	}
	if err != nil {
		return models.ChallengeBadge{}, false, err
	}
	return badge, true, nil
}

// InsertBadge has the same insert-or-return-existing contract as
// InsertDay, keyed on (user, milestone).
func (repo *ChallengeRepository) InsertBadge(userID uint, milestone int, earnedAt time.Time) (models.ChallengeBadge, bool, error) {
	badge := models.ChallengeBadge{
		UserID:    userID,
		Milestone: milestone,
		EarnedAt:  earnedAt,
	}
	err := repo.database.Create(&badge).Error
	if err == nil {
		return badge, true, nil
	}
	if !IsUniqueViolation(err) {
		return models.ChallengeBadge{}, false, err
	}

	existing, found, findErr := repo.FindBadge(userID, milestone)
	if findErr != nil {
		return models.ChallengeBadge{}, false, findErr
	}
	if !found {
		return models.ChallengeBadge{}, false, err
	}
	return existing, false, nil
}

func (repo *ChallengeRepository) CountAllDays() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ChallengeDayProgress{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ChallengeRepository) CountAllBadges() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ChallengeBadge{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
