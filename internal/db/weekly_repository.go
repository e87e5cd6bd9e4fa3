package db

import (
	"errors"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeeklyRepository struct {
	database *gorm.DB
}

func NewWeeklyRepository(database *gorm.DB) *WeeklyRepository {
	return &WeeklyRepository{database: database}
}

func (repo *WeeklyRepository) FindProgressByUser(userID uint) (models.WeeklyProgress, bool, error) {
	var progress models.WeeklyProgress
	err := repo.database.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WeeklyProgress{}, false, nil
	}
	if err != nil {
		return models.WeeklyProgress{}, false, err
	}
	if progress.CompletedPrompts == nil {
		progress.CompletedPrompts = []string{}
	}
	return progress, true, nil
}

// CreateProgress enrolls the user. The unique index on user_id makes a
// second enrollment fail; callers translate that into a conflict.
func (repo *WeeklyRepository) CreateProgress(progress *models.WeeklyProgress) error {
	if progress.CompletedPrompts == nil {
		progress.CompletedPrompts = []string{}
	}
	return repo.database.Create(progress).Error
}

// AppendCompletedPrompt adds promptID to the user's completed set if
// absent. Returns found=false when the user has no enrollment. The
// read-modify-write runs in one transaction; on postgres the row is
// locked for the duration so concurrent completions of different
// prompts don't drop each other's ids (sqlite serializes writers and
// rejects FOR UPDATE syntax).
func (repo *WeeklyRepository) AppendCompletedPrompt(userID uint, promptID string) (models.WeeklyProgress, bool, error) {
	var updated models.WeeklyProgress
	found := false

	err := repo.database.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ?", userID)
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var progress models.WeeklyProgress
		err := query.First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		if progress.CompletedPrompts == nil {
			progress.CompletedPrompts = []string{}
		}

		if !progress.HasCompleted(promptID) {
			progress.CompletedPrompts = append(progress.CompletedPrompts, promptID)
			if err := tx.Save(&progress).Error; err != nil {
				return err
			}
		}
		updated = progress
		return nil
	})
	if err != nil {
		return models.WeeklyProgress{}, false, err
	}
	return updated, found, nil
}

func (repo *WeeklyRepository) ListBadges(userID uint) ([]models.WeeklyBadge, error) {
	badges := make([]models.WeeklyBadge, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("week_number ASC").
		Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (repo *WeeklyRepository) FindBadge(userID uint, tier string, weekNumber int) (models.WeeklyBadge, bool, error) {
	var badge models.WeeklyBadge
	err := repo.database.
		Where("user_id = ? AND tier = ? AND week_number = ?", userID, tier, weekNumber).
		First(&badge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WeeklyBadge{}, false, nil
	}
	if err != nil {
		return models.WeeklyBadge{}, false, err
	}
	return badge, true, nil
}

// InsertBadge inserts or returns the existing row for
// (user, tier, week), absorbing duplicate-insert races.
func (repo *WeeklyRepository) InsertBadge(userID uint, tier string, weekNumber int, earnedAt time.Time) (models.WeeklyBadge, bool, error) {
	badge := models.WeeklyBadge{
		UserID:     userID,
		Tier:       tier,
		WeekNumber: weekNumber,
		EarnedAt:   earnedAt,
	}
	err := repo.database.Create(&badge).Error
	if err == nil {
		return badge, true, nil
	}
	if !IsUniqueViolation(err) {
		return models.WeeklyBadge{}, false, err
	}

	existing, found, findErr := repo.FindBadge(userID, tier, weekNumber)
	if findErr != nil {
		return models.WeeklyBadge{}, false, findErr
	}
	if !found {
		return models.WeeklyBadge{}, false, err
	}
	return existing, false, nil
}

func (repo *WeeklyRepository) CountEnrollments() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WeeklyProgress{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *WeeklyRepository) CountAllBadges() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WeeklyBadge{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
