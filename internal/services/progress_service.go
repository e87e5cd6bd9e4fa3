package services

import (
	"math"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/catalog"
	"github.com/ChrisAdy1/cringeshield/internal/models"
)

// TierProgressPercent computes the displayed weekly-challenge
// percentage. The denominator is fixed at 45 regardless of tier; ids
// from other tiers never count toward the numerator.
func TierProgressPercent(tier string, completedPromptIDs []string) int {
	completed := 0
	for _, promptID := range completedPromptIDs {
		prompt, ok := catalog.WeeklyPromptByID(promptID)
		if ok && prompt.Tier == tier {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(catalog.WeeklyPromptsPerTier)))
}

// WeekCompletionCount counts how many of one week's prompts are done,
// for sidebar counters like "2/3".
func WeekCompletionCount(tier string, week int, completedPromptIDs []string) int {
	completed := 0
	for _, prompt := range catalog.WeeklyPromptsForWeek(tier, week) {
		for _, completedID := range completedPromptIDs {
			if completedID == prompt.ID {
				completed++
				break
			}
		}
	}
	return completed
}

const (
	WeeklyStatusNotStarted = "not_started"
	WeeklyStatusInProgress = "in_progress"
)

type WeekStatus struct {
	Week        int  `json:"week"`
	Unlocked    bool `json:"unlocked"`
	Completed   int  `json:"completed"`
	Total       int  `json:"total"`
	BadgeEarned bool `json:"badgeEarned"`
}

type WeeklyStatus struct {
	Status   string                 `json:"status"`
	Progress *models.WeeklyProgress `json:"progress,omitempty"`
	Percent  int                    `json:"percent"`
	Weeks    []WeekStatus           `json:"weeks,omitempty"`
}

type MilestoneStatus struct {
	Milestone int        `json:"milestone"`
	Earned    bool       `json:"earned"`
	EarnedAt  *time.Time `json:"earnedAt,omitempty"`
}

type ChallengeSummary struct {
	CompletedDays int               `json:"completedDays"`
	Percent       int               `json:"percent"`
	Milestones    []MilestoneStatus `json:"milestones"`
}

// ProgressService aggregates store state into UI-ready read models. It
// never mutates anything.
type ProgressService struct {
	days            ChallengeDayStore
	weekly          WeeklyProgressStore
	challengeBadges ChallengeBadgeStore
	weeklyBadges    WeeklyBadgeStore
	accelerated     bool
}

func NewProgressService(days ChallengeDayStore, weekly WeeklyProgressStore, challengeBadges ChallengeBadgeStore, weeklyBadges WeeklyBadgeStore, accelerated bool) *ProgressService {
	return &ProgressService{
		days:            days,
		weekly:          weekly,
		challengeBadges: challengeBadges,
		weeklyBadges:    weeklyBadges,
		accelerated:     accelerated,
	}
}

// BuildWeeklyStatus assembles enrollment state, unlock flags, per-week
// counters and the overall percentage for the weekly challenge page.
func (service *ProgressService) BuildWeeklyStatus(userID uint, now time.Time) (WeeklyStatus, error) {
	progress, found, err := service.weekly.FindProgressByUser(userID)
	if err != nil {
		return WeeklyStatus{}, err
	}
	if !found {
		return WeeklyStatus{Status: WeeklyStatusNotStarted}, nil
	}

	badges, err := service.weeklyBadges.ListBadges(userID)
	if err != nil {
		return WeeklyStatus{}, err
	}
	badgedWeeks := make(map[int]bool, len(badges))
	for _, badge := range badges {
		if badge.Tier == progress.Tier {
			badgedWeeks[badge.WeekNumber] = true
		}
	}

	weeks := make([]WeekStatus, 0, models.WeeklyWeekMax)
	for week := models.WeeklyWeekMin; week <= models.WeeklyWeekMax; week++ {
		weeks = append(weeks, WeekStatus{
			Week:        week,
			Unlocked:    WeekUnlocked(progress.StartDate, now, progress.Tier, week, progress.CompletedPrompts, service.accelerated),
			Completed:   WeekCompletionCount(progress.Tier, week, progress.CompletedPrompts),
			Total:       catalog.WeeklyPromptsPerWeek,
			BadgeEarned: badgedWeeks[week],
		})
	}

	return WeeklyStatus{
		Status:   WeeklyStatusInProgress,
		Progress: &progress,
		Percent:  TierProgressPercent(progress.Tier, progress.CompletedPrompts),
		Weeks:    weeks,
	}, nil
}

// BuildChallengeSummary reports thirty-day challenge standing:
// completed day count, percent of 30 and per-milestone badge state.
func (service *ProgressService) BuildChallengeSummary(userID uint) (ChallengeSummary, error) {
	completed, err := service.days.CountDays(userID)
	if err != nil {
		return ChallengeSummary{}, err
	}

	badges, err := service.challengeBadges.ListBadges(userID)
	if err != nil {
		return ChallengeSummary{}, err
	}
	earnedAt := make(map[int]time.Time, len(badges))
	for _, badge := range badges {
		earnedAt[badge.Milestone] = badge.EarnedAt
	}

	milestones := make([]MilestoneStatus, 0, len(models.BadgeMilestones))
	for _, milestone := range models.BadgeMilestones {
		status := MilestoneStatus{Milestone: milestone}
		if at, earned := earnedAt[milestone]; earned {
			status.Earned = true
			earnedCopy := at
			status.EarnedAt = &earnedCopy
		}
		milestones = append(milestones, status)
	}

	return ChallengeSummary{
		CompletedDays: int(completed),
		Percent:       int(math.Round(100 * float64(completed) / float64(models.ChallengeDayMax))),
		Milestones:    milestones,
	}, nil
}
