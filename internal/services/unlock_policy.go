package services

import (
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/catalog"
	"github.com/ChrisAdy1/cringeshield/internal/models"
)

const millisecondsPerDay = 86_400_000

// WholeDaysSince returns the number of whole days between start and now,
// as the floor of the millisecond difference. Negative when now precedes
// start.
func WholeDaysSince(start time.Time, now time.Time) int {
	diff := now.Sub(start).Milliseconds()
	if diff < 0 {
		// Go truncates integer division toward zero; floor instead.
		return int((diff - millisecondsPerDay + 1) / millisecondsPerDay)
	}
	return int(diff / millisecondsPerDay)
}

// WeekUnlockedByTime applies the pacing rule: week 1 is always open,
// week w opens once (w-1)*7 whole days have passed since enrollment.
func WeekUnlockedByTime(start time.Time, now time.Time, week int) bool {
	if week <= models.WeeklyWeekMin {
		return week == models.WeeklyWeekMin
	}
	if week > models.WeeklyWeekMax {
		return false
	}
	return WholeDaysSince(start, now) >= (week-1)*7
}

// WeekUnlockedByCompletion opens week w once every prompt of week w-1
// for the enrollment's tier has been completed.
func WeekUnlockedByCompletion(tier string, week int, completedPromptIDs []string) bool {
	if week <= models.WeeklyWeekMin {
		return week == models.WeeklyWeekMin
	}
	if week > models.WeeklyWeekMax {
		return false
	}

	previousWeek := catalog.WeeklyPromptsForWeek(tier, week-1)
	if len(previousWeek) == 0 {
		return false
	}

	completed := make(map[string]struct{}, len(completedPromptIDs))
	for _, promptID := range completedPromptIDs {
		completed[promptID] = struct{}{}
	}
	for _, prompt := range previousWeek {
		if _, ok := completed[prompt.ID]; !ok {
			return false
		}
	}
	return true
}

// WeekUnlocked is the authoritative unlock decision. The time rule
// always applies; the completion rule only widens access when
// accelerated pacing is enabled.
func WeekUnlocked(start time.Time, now time.Time, tier string, week int, completedPromptIDs []string, accelerated bool) bool {
	if WeekUnlockedByTime(start, now, week) {
		return true
	}
	if accelerated {
		return WeekUnlockedByCompletion(tier, week, completedPromptIDs)
	}
	return false
}
