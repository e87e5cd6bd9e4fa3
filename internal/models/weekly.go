package models

import "time"

const (
	TierShyStarter       = "shy_starter"
	TierGrowingSpeaker   = "growing_speaker"
	TierConfidentCreator = "confident_creator"
)

const (
	WeeklyWeekMin = 1
	WeeklyWeekMax = 15
)

func IsWeeklyTier(tier string) bool {
	switch tier {
	case TierShyStarter, TierGrowingSpeaker, TierConfidentCreator:
		return true
	}
	return false
}

// WeeklyProgress is a user's single enrollment in the fifteen-week
// challenge. The tier never changes after enrollment; CompletedPrompts
// has set semantics, so order carries no meaning.
type WeeklyProgress struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex" json:"userId"`
	Tier             string    `gorm:"not null" json:"tier"`
	StartDate        time.Time `gorm:"not null" json:"startDate"`
	CompletedPrompts []string  `gorm:"serializer:json" json:"completedPrompts"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// HasCompleted reports whether promptID is already in the completed set.
func (progress *WeeklyProgress) HasCompleted(promptID string) bool {
	for _, completed := range progress.CompletedPrompts {
		if completed == promptID {
			return true
		}
	}
	return false
}

type WeeklyBadge struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_weekly_badge" json:"userId"`
	Tier       string    `gorm:"not null;uniqueIndex:uidx_weekly_badge" json:"tier"`
	WeekNumber int       `gorm:"not null;uniqueIndex:uidx_weekly_badge" json:"weekNumber"`
	EarnedAt   time.Time `gorm:"not null" json:"earnedAt"`
}
