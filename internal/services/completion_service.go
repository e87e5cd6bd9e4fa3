package services

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/catalog"
	"github.com/ChrisAdy1/cringeshield/internal/models"
)

type ChallengeDayStore interface {
	ListDays(userID uint) ([]models.ChallengeDayProgress, error)
	CountDays(userID uint) (int64, error)
	FindDay(userID uint, dayNumber int) (models.ChallengeDayProgress, bool, error)
	InsertDay(userID uint, dayNumber int, completedAt time.Time) (models.ChallengeDayProgress, bool, error)
}

type WeeklyProgressStore interface {
	FindProgressByUser(userID uint) (models.WeeklyProgress, bool, error)
	CreateProgress(progress *models.WeeklyProgress) error
	AppendCompletedPrompt(userID uint, promptID string) (models.WeeklyProgress, bool, error)
}

// WeeklyConflictChecker lets the service distinguish an enrollment
// conflict from other insert failures.
type WeeklyConflictChecker func(err error) bool

// CompletionService records challenge completions. It never evaluates
// badges; award checks are a separate caller-triggered step so they can
// be retried independently.
type CompletionService struct {
	days       ChallengeDayStore
	weekly     WeeklyProgressStore
	isConflict WeeklyConflictChecker
}

func NewCompletionService(days ChallengeDayStore, weekly WeeklyProgressStore, isConflict WeeklyConflictChecker) *CompletionService {
	if isConflict == nil {
		isConflict = func(error) bool { return false }
	}
	return &CompletionService{
		days:       days,
		weekly:     weekly,
		isConflict: isConflict,
	}
}

// CompleteChallengeDay marks a thirty-day challenge day as done.
// Completing an already-completed day returns the existing record with
// created=false.
func (service *CompletionService) CompleteChallengeDay(userID uint, dayNumber int, now time.Time) (models.ChallengeDayProgress, bool, error) {
	if dayNumber < models.ChallengeDayMin || dayNumber > models.ChallengeDayMax {
		return models.ChallengeDayProgress{}, false, ErrInvalidDayNumber
	}
	return service.days.InsertDay(userID, dayNumber, now)
}

func (service *CompletionService) ChallengeDayCompleted(userID uint, dayNumber int) (bool, error) {
	if dayNumber < models.ChallengeDayMin || dayNumber > models.ChallengeDayMax {
		return false, ErrInvalidDayNumber
	}
	_, found, err := service.days.FindDay(userID, dayNumber)
	return found, err
}

// StartWeeklyChallenge enrolls the user in the fifteen-week challenge.
// A user holds at most one enrollment and the tier is immutable after
// this call.
func (service *CompletionService) StartWeeklyChallenge(userID uint, tier string, now time.Time) (models.WeeklyProgress, error) {
	if !models.IsWeeklyTier(tier) {
		return models.WeeklyProgress{}, ErrInvalidTier
	}

	if _, exists, err := service.weekly.FindProgressByUser(userID); err != nil {
		return models.WeeklyProgress{}, err
	} else if exists {
		return models.WeeklyProgress{}, ErrWeeklyAlreadyStarted
	}

	progress := models.WeeklyProgress{
		UserID:           userID,
		Tier:             tier,
		StartDate:        now,
		CompletedPrompts: []string{},
	}
	if err := service.weekly.CreateProgress(&progress); err != nil {
		if service.isConflict(err) {
			return models.WeeklyProgress{}, ErrWeeklyAlreadyStarted
		}
		return models.WeeklyProgress{}, err
	}
	return progress, nil
}

// CompleteWeeklyPrompt adds a prompt to the user's completed set.
// Re-completing is a harmless no-op that returns the current progress.
func (service *CompletionService) CompleteWeeklyPrompt(userID uint, promptID string) (models.WeeklyProgress, error) {
	if _, known := catalog.WeeklyPromptByID(promptID); !known {
		return models.WeeklyProgress{}, ErrPromptNotFound
	}

	progress, found, err := service.weekly.AppendCompletedPrompt(userID, promptID)
	if err != nil {
		return models.WeeklyProgress{}, err
	}
	if !found {
		return models.WeeklyProgress{}, ErrWeeklyNotStarted
	}
	return progress, nil
}
