package services

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/catalog"
	"github.com/ChrisAdy1/cringeshield/internal/models"
)

type ChallengeBadgeStore interface {
	ListBadges(userID uint) ([]models.ChallengeBadge, error)
	FindBadge(userID uint, milestone int) (models.ChallengeBadge, bool, error)
	InsertBadge(userID uint, milestone int, earnedAt time.Time) (models.ChallengeBadge, bool, error)
}

type WeeklyBadgeStore interface {
	ListBadges(userID uint) ([]models.WeeklyBadge, error)
	FindBadge(userID uint, tier string, weekNumber int) (models.WeeklyBadge, bool, error)
	InsertBadge(userID uint, tier string, weekNumber int, earnedAt time.Time) (models.WeeklyBadge, bool, error)
}

// BadgeService decides badge eligibility and persists awards with
// at-most-once semantics per milestone. The newlyAwarded result replaces
// any client-side "have I celebrated this yet" bookkeeping.
type BadgeService struct {
	challengeBadges ChallengeBadgeStore
	weeklyBadges    WeeklyBadgeStore
	days            ChallengeDayStore
	weekly          WeeklyProgressStore
}

func NewBadgeService(challengeBadges ChallengeBadgeStore, weeklyBadges WeeklyBadgeStore, days ChallengeDayStore, weekly WeeklyProgressStore) *BadgeService {
	return &BadgeService{
		challengeBadges: challengeBadges,
		weeklyBadges:    weeklyBadges,
		days:            days,
		weekly:          weekly,
	}
}

// CheckAndAwardChallengeBadge awards the milestone badge if the user
// has completed enough days. An already-awarded badge is returned
// unchanged with newlyAwarded=false, so clients may call this
// speculatively after every completion.
func (service *BadgeService) CheckAndAwardChallengeBadge(userID uint, milestone int, now time.Time) (models.ChallengeBadge, bool, error) {
	if !models.IsBadgeMilestone(milestone) {
		return models.ChallengeBadge{}, false, ErrInvalidMilestone
	}

	if existing, found, err := service.challengeBadges.FindBadge(userID, milestone); err != nil {
		return models.ChallengeBadge{}, false, err
	} else if found {
		return existing, false, nil
	}

	completed, err := service.days.CountDays(userID)
	if err != nil {
		return models.ChallengeBadge{}, false, err
	}
	if completed < int64(milestone) {
		return models.ChallengeBadge{}, false, &IneligibleError{
			Completed: int(completed),
			Required:  milestone,
		}
	}

	// A racing duplicate insert comes back as the pre-existing row with
	// created=false, which is exactly the idempotent answer.
	return service.challengeBadges.InsertBadge(userID, milestone, now)
}

// AwardChallengeBadge is the strict variant: an existing badge is a
// conflict instead of an idempotent success.
func (service *BadgeService) AwardChallengeBadge(userID uint, milestone int, now time.Time) (models.ChallengeBadge, error) {
	badge, newlyAwarded, err := service.CheckAndAwardChallengeBadge(userID, milestone, now)
	if err != nil {
		return models.ChallengeBadge{}, err
	}
	if !newlyAwarded {
		return models.ChallengeBadge{}, ErrBadgeAlreadyAwarded
	}
	return badge, nil
}

// CheckAndAwardWeeklyBadge awards the (tier, week) badge once every
// prompt of that week appears in the user's completed set.
func (service *BadgeService) CheckAndAwardWeeklyBadge(userID uint, tier string, weekNumber int, now time.Time) (models.WeeklyBadge, bool, error) {
	if !models.IsWeeklyTier(tier) {
		return models.WeeklyBadge{}, false, ErrInvalidTier
	}
	if weekNumber < models.WeeklyWeekMin || weekNumber > models.WeeklyWeekMax {
		return models.WeeklyBadge{}, false, ErrInvalidWeekNumber
	}

	if existing, found, err := service.weeklyBadges.FindBadge(userID, tier, weekNumber); err != nil {
		return models.WeeklyBadge{}, false, err
	} else if found {
		return existing, false, nil
	}

	progress, found, err := service.weekly.FindProgressByUser(userID)
	if err != nil {
		return models.WeeklyBadge{}, false, err
	}
	if !found {
		return models.WeeklyBadge{}, false, ErrWeeklyNotStarted
	}

	required := catalog.WeeklyPromptsForWeek(tier, weekNumber)
	completed := 0
	for _, prompt := range required {
		if progress.HasCompleted(prompt.ID) {
			completed++
		}
	}
	if completed < len(required) {
		return models.WeeklyBadge{}, false, &IneligibleError{
			Completed: completed,
			Required:  len(required),
		}
	}

	return service.weeklyBadges.InsertBadge(userID, tier, weekNumber, now)
}

// AwardWeeklyBadge is the strict variant of CheckAndAwardWeeklyBadge.
func (service *BadgeService) AwardWeeklyBadge(userID uint, tier string, weekNumber int, now time.Time) (models.WeeklyBadge, error) {
	badge, newlyAwarded, err := service.CheckAndAwardWeeklyBadge(userID, tier, weekNumber, now)
	if err != nil {
		return models.WeeklyBadge{}, err
	}
	if !newlyAwarded {
		return models.WeeklyBadge{}, ErrBadgeAlreadyAwarded
	}
	return badge, nil
}

func (service *BadgeService) ListChallengeBadges(userID uint) ([]models.ChallengeBadge, error) {
	return service.challengeBadges.ListBadges(userID)
}

func (service *BadgeService) ListWeeklyBadges(userID uint) ([]models.WeeklyBadge, error) {
	return service.weeklyBadges.ListBadges(userID)
}
